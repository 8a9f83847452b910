package points

import (
	"context"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/TakeoffTech/go-telemetry/sdpropagation"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/registry"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/identity"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/go-andiamo/urit"
	"go.opencensus.io/trace"
	"net/http"
)

// This file has the function and handler to create a point at the tapped coordinate
var postPointPath = urit.MustCreateTemplate("/points")

func init() {
	functions.HTTP("PostPoint", postPoint)
}

func postPoint(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("post_point.postPoint"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	postPointHandler(responseWriter, requestWithContext,
		cloud.NewFirestoreRepository(requestWithContext.Context()), cloud.NewPubSubRepository(requestWithContext.Context()))
}

func postPointHandler(responseWriter http.ResponseWriter, request *http.Request,
	dbClient cloud.DB, pubsubClient cloud.Queue) {
	ctx, span := trace.StartSpan(request.Context(), utils.GetSpanName("post_point.postPointHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	var pointRequest models.PointRequest
	_, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredPath:    postPointPath,
		RequestMethod:   http.MethodPost,
		RequiredHeaders: common.GetIdentityHeaders(),
		RequestBodyValidation: &utils.RequestBodyValidation{
			Entity:             &pointRequest,
			CompleteValidation: true,
		},
	})

	if validationResponse != nil {
		logger.Debugf("Request body validation failed. validationResponse : %v", validationResponse)
		response.RespondWithResponseObject(responseWriter, validationResponse, response.GetCommonResponseHeaders(request))

		return
	}

	point, err := registry.New(dbClient).Create(ctx, identity.FromRequest(request), pointRequest.Fields())
	if err != nil {
		logger.Errorf("Unable to create point : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	sendPostResponse(ctx, responseWriter, request, pubsubClient, point)
}
