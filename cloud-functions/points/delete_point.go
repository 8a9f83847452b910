package points

import (
	"context"
	"errors"
	"fmt"
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	"github.com/TakeoffTech/go-telemetry/sdpropagation"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/registry"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/audit"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/dbutil"
	"github.com/TakeoffTech/pin-drop-svc/common/identity"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/fatih/structs"
	"github.com/go-andiamo/urit"
	"go.opencensus.io/trace"
	"net/http"
	"os"
	"time"
)

// This file has the function and handler to delete a point from the DB, only its creator may do so
var deletePointPath = urit.MustCreateTemplate(fmt.Sprintf("/points/{%s}", common.PathParamPointID))

func init() {
	functions.HTTP("DeletePoint", deletePoint)
}

func deletePoint(responseWriter http.ResponseWriter, request *http.Request) {
	ctx, span := sdpropagation.StartSpanWithRemoteParentFromRequest(request,
		utils.GetSpanName("delete_point.deletePoint"))
	defer span.End()
	key, logger := logging.GetContextWithLogger(request)
	requestWithContext := request.WithContext(context.WithValue(ctx, key, logger))
	deletePointHandler(responseWriter, requestWithContext,
		cloud.NewFirestoreRepository(requestWithContext.Context()), cloud.NewPubSubRepository(requestWithContext.Context()))
}

func deletePointHandler(responseWriter http.ResponseWriter, request *http.Request,
	dbClient cloud.DB, pubSubClient cloud.Queue) {
	ctx, span := trace.StartSpan(request.Context(), utils.GetSpanName("delete_point.deletePointHandler"))
	defer span.End()
	logger := logging.GetLoggerFromContext(ctx)
	pathParams, validationResponse := utils.ValidateRequest(request, utils.RequestValidation{
		RequiredHeaders: common.GetIdentityHeaders(),
		RequiredPath:    deletePointPath,
		RequestMethod:   http.MethodDelete,
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

	requester := identity.FromRequest(request)
	err := registry.New(dbClient, point).Delete(ctx, pointID, requester.Email)
	switch {
	case errors.Is(err, registry.ErrOwnershipViolation):
		response.RespondWithForbiddenMessage(responseWriter, request, "You can only delete your own pins.")

		return
	case errors.Is(err, registry.ErrPointNotFound):
		response.RespondWithNotFoundErrorMessage(responseWriter, request,
			fmt.Sprintf("Point ID %s not found", pointID), err)

		return
	case err != nil:
		logger.Errorf("Error while deleting point from DB : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	response.RespondWithMessage(responseWriter, request, http.StatusOK,
		fmt.Sprintf("Point %s deleted successfully", pointID))

	logger.Debugf("Point id %s successfully deleted", pointID)

	deletedAt := time.Now().UTC()
	pubSubClient.Publish(ctx, os.Getenv(common.EnvAuditLogTopic),
		audit.GetPubSubAuditMessage(audit.GetPointAuditPath(pointID),
			request.Header.Get(common.HeaderXCorrelationID), requester.Email,
			common.AuditTypeDelete,
			common.EntityPoint,
			&deletedAt,
			structs.Map(point),
			nil,
		))

	pubSubClient.Publish(ctx, os.Getenv(common.EnvPointMessageTopic),
		models.GetPubSubPointMessage(pointID, common.ChangeTypeDelete))
}
