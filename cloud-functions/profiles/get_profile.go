package profiles

import (
	"context"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/TakeoffTech/go-telemetry/sdpropagation"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/profiles/models"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/identity"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/go-andiamo/urit"
	"go.opencensus.io/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"net/http"
)

// This file has the function and handler to get the profile of the requester
var getProfilePath = urit.MustCreateTemplate(common.ProfilePath)

func init() {
	functions.HTTP("GetProfile", getProfile)
}

func getProfile(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("get_profile.getProfile"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	getProfileHandler(responseWriter, requestWithContext, cloud.NewFirestoreRepository(requestWithContext.Context()))
}

func getProfileHandler(responseWriter http.ResponseWriter, request *http.Request, dbClient cloud.DB) {
	ctx, span := trace.StartSpan(request.Context(), utils.GetSpanName("get_profile.getProfileHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	_, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredHeaders: common.GetIdentityHeaders(),
		RequiredPath:    getProfilePath,
		RequestMethod:   http.MethodGet,
	})
	if validationResponse != nil {
		logger.Debugf("Request validation failed. validationResponse : %v", validationResponse)
		response.RespondWithResponseObject(responseWriter, validationResponse, response.GetCommonResponseHeaders(request))

		return
	}

	user := identity.FromRequest(request)
	profile, found, err := getStoredProfile(ctx, dbClient, user.Email)
	if err != nil {
		logger.Errorf("Error while fetching the profile from DB : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}
	if !found {
		// nothing saved yet, the identity provider is the source of the name
		profile = models.Profile{Email: user.Email, DisplayName: user.DisplayName}
	}

	etag, err := utils.GetETag(profile)
	if err != nil {
		logger.Errorf("Error while getting etag for profile struct object : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	response.Respond(responseWriter, http.StatusOK, profile,
		response.GetCommonResponseHeaders(request).WithHeader(common.HeaderEtag, etag))
	logger.Debugf("Profile of %s successfully fetched, stored : %t", user.Email, found)
}

// getStoredProfile reads the profile document of email, found is false when there is none
func getStoredProfile(ctx context.Context, dbClient cloud.DB, email string) (models.Profile, bool, error) {
	var profile models.Profile
	data, err := dbClient.GetByID(ctx, common.ProfilesCollection, email)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return profile, false, nil
		}

		return profile, false, err
	}
	if err = utils.ConvertToObject(data, &profile); err != nil {
		return profile, false, err
	}

	return profile, true, nil
}
