package profiles

import (
	"cloud.google.com/go/firestore"
	"context"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/TakeoffTech/go-telemetry/sdpropagation"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/profiles/models"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/audit"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/identity"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/fatih/structs"
	"github.com/go-andiamo/urit"
	"go.opencensus.io/trace"
	"net/http"
	"os"
	"strings"
	"time"
)

// This file has the function and handler to change the display name of the requester
var patchProfilePath = urit.MustCreateTemplate(common.ProfilePath)

func init() {
	functions.HTTP("PatchProfile", patchProfile)
}

func patchProfile(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("patch_profile.patchProfile"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	patchProfileHandler(responseWriter, requestWithContext,
		cloud.NewFirestoreRepository(requestWithContext.Context()), cloud.NewPubSubRepository(requestWithContext.Context()))
}

func patchProfileHandler(responseWriter http.ResponseWriter, request *http.Request,
	dbClient cloud.DB, pubSubClient cloud.Queue) {
	ctx, span := trace.StartSpan(request.Context(), utils.GetSpanName("patch_profile.patchProfileHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	var profileRequest models.ProfileRequest
	_, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredHeaders: common.GetIdentityHeaders(),
		RequiredPath:    patchProfilePath,
		RequestMethod:   http.MethodPatch,
		RequestBodyValidation: &utils.RequestBodyValidation{
			Entity:             &profileRequest,
			CompleteValidation: true,
		},
	})
	if validationResponse != nil {
		logger.Debugf("Request validation failed. validationResponse : %v", validationResponse)
		response.RespondWithResponseObject(responseWriter, validationResponse, response.GetCommonResponseHeaders(request))

		return
	}

	displayName := strings.TrimSpace(*profileRequest.DisplayName)
	if displayName == "" {
		response.RespondWithMessage(responseWriter, request, http.StatusBadRequest, "Display name cannot be empty.")

		return
	}

	user := identity.FromRequest(request)
	oldProfile, found, err := getStoredProfile(ctx, dbClient, user.Email)
	if err != nil {
		logger.Errorf("Error while fetching the profile from DB : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	updatedTime := time.Now().UTC().Round(time.Second)
	profile := models.Profile{Email: user.Email, DisplayName: displayName, UpdatedTime: &updatedTime}
	auditType, changeType := common.AuditTypeUpdate, common.ChangeTypeUpdate
	var oldEntity map[string]interface{}
	if found {
		_, err = dbClient.Update(ctx, common.ProfilesCollection, user.Email, []firestore.Update{
			{Path: common.DisplayName, Value: profile.DisplayName},
			{Path: common.UpdatedTime, Value: profile.UpdatedTime},
		})
		oldEntity = structs.Map(oldProfile)
	} else {
		auditType, changeType = common.AuditTypeCreate, common.ChangeTypeCreate
		_, err = dbClient.Save(ctx, common.ProfilesCollection, user.Email, profile)
	}
	if err != nil {
		logger.Errorf("Unable to save profile : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	etag, err := utils.GetETag(profile)
	if err != nil {
		logger.Errorf("Error while getting etag for profile struct object : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	response.Respond(responseWriter, http.StatusOK, profile, response.GetCommonResponseHeaders(request).
		WithHeader(common.HeaderLastModified, updatedTime.Format(time.RFC3339)).
		WithHeader(common.HeaderEtag, etag))

	logger.Debugf("Profile of %s successfully saved", user.Email)

	pubSubClient.Publish(ctx, os.Getenv(common.EnvAuditLogTopic),
		audit.GetPubSubAuditMessage(audit.GetProfileAuditPath(user.Email),
			request.Header.Get(common.HeaderXCorrelationID), user.Email,
			auditType,
			common.EntityProfile,
			&updatedTime,
			oldEntity,
			structs.Map(profile),
		))

	pubSubClient.Publish(ctx, os.Getenv(common.EnvProfileMessageTopic),
		models.GetPubSubProfileMessage(user.Email, changeType))
}
