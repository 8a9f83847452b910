package points

import (
	"context"
	"fmt"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/TakeoffTech/go-telemetry/sdpropagation"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/registry"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/dbutil"
	"github.com/TakeoffTech/pin-drop-svc/common/geo"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	commonModels "github.com/TakeoffTech/pin-drop-svc/common/models"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/go-andiamo/urit"
	"go.opencensus.io/trace"
	"net/http"
	"os"
)

// This file has the function and handler to navigate from the requester to a point
var getPointRoutePath = urit.MustCreateTemplate(fmt.Sprintf("/points/{%s}/route", common.PathParamPointID))

func init() {
	functions.HTTP("GetPointRoute", getPointRoute)
}

func getPointRoute(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("get_point_route.getPointRoute"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	getPointRouteHandler(responseWriter, requestWithContext, cloud.NewFirestoreRepository(requestWithContext.Context()))
}

func getPointRouteHandler(responseWriter http.ResponseWriter, request *http.Request, dbClient cloud.DB) {
	ctx, span := trace.StartSpan(request.Context(), utils.GetSpanName("get_point_route.getPointRouteHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	pathParams, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredHeaders: common.GetMandatoryHeaders(),
		RequiredPath:    getPointRoutePath,
		RequestMethod:   http.MethodGet,
	})
	if validationResponse != nil {
		logger.Debugf("Request validation failed. validationResponse : %v", validationResponse)
		response.RespondWithResponseObject(responseWriter, validationResponse, response.GetCommonResponseHeaders(request))

		return
	}

	_, origin, ok := getSessionWithLocation(responseWriter, request)
	if !ok {
		return
	}

	pointID := pathParams[common.PathParamPointID]
	data, found := dbutil.GetPointFromDB(responseWriter, request.WithContext(ctx), dbClient, pointID, logger)
	if !found {
		return
	}
	point := models.PointFromDocument(data)
	point.ID = pointID

	pointRoute := models.PointRoute{
		Origin:      origin,
		Destination: point,
		DistanceKm:  registry.DistanceTo(origin, point),
		Route:       getRoute(ctx, origin, point.Coordinate()),
	}

	response.Respond(responseWriter, http.StatusOK, pointRoute, response.GetCommonResponseHeaders(request))
	logger.Debugf("Route to point id %s is %f km away", pointID, pointRoute.DistanceKm)
}

// getRoute asks the directions provider for a route. The route is only an overlay,
// so a missing key or a provider failure leaves it out instead of failing the request.
func getRoute(ctx context.Context, origin geo.Coordinate, destination geo.Coordinate) *models.Route {
	logger := logging.GetLoggerFromContext(ctx)
	if os.Getenv(common.GoogleMapsAPIEnv) == "" {
		logger.Debugf("%s not set, skipping directions", common.GoogleMapsAPIEnv)

		return nil
	}
	directions, err := utils.GetDirections(ctx, origin, destination)
	if err != nil {
		logger.Warnf("Unable to get directions from google : %v", err)

		return nil
	}
	if len(directions.Routes) == 0 {
		return nil
	}

	return routeFromDirections(directions.Routes[0])
}

func routeFromDirections(googleRoute commonModels.GoogleRoute) *models.Route {
	route := &models.Route{
		Summary:  googleRoute.Summary,
		Polyline: googleRoute.OverviewPolyline.Points,
	}
	for _, leg := range googleRoute.Legs {
		route.DistanceMeters += leg.Distance.Value
		route.DurationSeconds += leg.Duration.Value
	}

	return route
}
