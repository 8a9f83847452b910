package dbutil

import (
	"fmt"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"net/http"
)

// GetPointFromDB will fetch the point document with given point ID.
// If it is missing or the DB fails, the matching error response is written and false is returned.
func GetPointFromDB(responseWriter http.ResponseWriter, request *http.Request, dbClient cloud.DB,
	pointID string, logger *zap.SugaredLogger) (map[string]interface{}, bool) {
	data, err := dbClient.GetByID(request.Context(), common.PointsCollection, pointID)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			response.RespondWithNotFoundErrorMessage(responseWriter, request,
				fmt.Sprintf("Point ID %s not found", pointID), err)
		} else {
			logger.Errorf("Internal server error while fetching the point from DB : %v", err)
			response.RespondWithInternalServerError(responseWriter, request)
		}

		return nil, false
	}

	return data, true
}
