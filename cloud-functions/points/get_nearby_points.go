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

// This file has the function and handler to list every point with its distance from the requester
var getNearbyPointsPath = urit.MustCreateTemplate("/points:nearby")

func init() {
	functions.HTTP("GetNearbyPoints", getNearbyPoints)
}

func getNearbyPoints(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("get_nearby_points.getNearbyPoints"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	getNearbyPointsHandler(responseWriter, requestWithContext, cloud.NewFirestoreRepository(requestWithContext.Context()))
}

func getNearbyPointsHandler(responseWriter http.ResponseWriter, request *http.Request, dbClient cloud.DB) {
	ctx, span := trace.StartSpan(request.Context(), utils.GetSpanName("get_nearby_points.getNearbyPointsHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	_, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredHeaders: common.GetMandatoryHeaders(),
		RequiredPath:    getNearbyPointsPath,
		RequestMethod:   http.MethodGet,
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
	region, _ := requestSession.Region()

	pointRegistry := registry.New(dbClient)
	pointRegistry.LoadAll(ctx)
	nearby := models.NearbyPoints{
		Region: region,
		Points: pointRegistry.Nearby(origin),
	}

	response.Respond(responseWriter, http.StatusOK, nearby, response.GetCommonResponseHeaders(request))
	logger.Debugf("%d points listed around %v", len(nearby.Points), origin)
}
