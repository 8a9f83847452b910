package points

import (
	"context"
	"fmt"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/TakeoffTech/go-telemetry/sdpropagation"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/dbutil"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/go-andiamo/urit"
	"go.opencensus.io/trace"
	"net/http"
)

// This file has the function and handler to get a point from the DB
var getPointPath = urit.MustCreateTemplate(fmt.Sprintf("/points/{%s}", common.PathParamPointID))

func init() {
	functions.HTTP("GetPoint", getPoint)
}

func getPoint(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("get_point.getPoint"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	getPointHandler(responseWriter, requestWithContext, cloud.NewFirestoreRepository(requestWithContext.Context()))
}

func getPointHandler(responseWriter http.ResponseWriter, request *http.Request, dbClient cloud.DB) {
	ctx, span := trace.StartSpan(request.Context(), utils.GetSpanName("get_point.getPointHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	pathParams, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredHeaders: common.GetMandatoryHeaders(),
		RequiredPath:    getPointPath,
		RequestMethod:   http.MethodGet,
	})
	if validationResponse != nil {
		logger.Debugf("Request validation failed. validationResponse : %v", validationResponse)
		response.RespondWithResponseObject(responseWriter, validationResponse, response.GetCommonResponseHeaders(request))

		return
	}

	pointID := pathParams[common.PathParamPointID]
	data, found := dbutil.GetPointFromDB(responseWriter, request.WithContext(ctx), dbClient, pointID, logger)
	if !found {
		return
	}
	point := models.PointFromDocument(data)
	point.ID = pointID
	etag, err := utils.GetETag(point)
	if err != nil {
		logger.Errorf("Error while getting etag for point data from DB : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	response.Respond(responseWriter, http.StatusOK,
		point,
		response.GetCommonResponseHeaders(request).
			WithHeader(common.HeaderEtag, etag))

	logger.Debugf("Point id %s successfully fetched point : %v", pointID, point)
}
