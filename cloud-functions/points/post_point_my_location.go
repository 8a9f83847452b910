package points

import (
	"context"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/TakeoffTech/go-telemetry/sdpropagation"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/registry"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/go-andiamo/urit"
	"go.opencensus.io/trace"
	"net/http"
)

// This file has the function and handler to drop a point at the requester's own location
var postPointMyLocationPath = urit.MustCreateTemplate("/points:pinMyLocation")

func init() {
	functions.HTTP("PostPointMyLocation", postPointMyLocation)
}

func postPointMyLocation(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("post_point_my_location.postPointMyLocation"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	postPointMyLocationHandler(responseWriter, requestWithContext,
		cloud.NewFirestoreRepository(requestWithContext.Context()), cloud.NewPubSubRepository(requestWithContext.Context()))
}

func postPointMyLocationHandler(responseWriter http.ResponseWriter, request *http.Request,
	dbClient cloud.DB, pubsubClient cloud.Queue) {
	ctx, span := trace.StartSpan(request.Context(),
		utils.GetSpanName("post_point_my_location.postPointMyLocationHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	_, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredPath:    postPointMyLocationPath,
		RequestMethod:   http.MethodPost,
		RequiredHeaders: common.GetIdentityHeaders(),
	})
	if validationResponse != nil {
		logger.Debugf("Request validation failed. validationResponse : %v", validationResponse)
		response.RespondWithResponseObject(responseWriter, validationResponse, response.GetCommonResponseHeaders(request))

		return
	}

	requestSession, origin, ok := getSessionWithLocation(responseWriter, request)
	if !ok {
		return
	}

	point, err := registry.New(dbClient).Create(ctx, requestSession.User, models.PointFields{
		Coordinate:  origin,
		Color:       common.MyLocationColor,
		Description: common.MyLocationDescription,
	})
	if err != nil {
		logger.Errorf("Unable to create point at user location : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	sendPostResponse(ctx, responseWriter, request, pubsubClient, point)
}
