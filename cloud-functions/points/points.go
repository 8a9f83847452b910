package points

import (
	"context"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/session"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/audit"
	"github.com/TakeoffTech/pin-drop-svc/common/cloud"
	"github.com/TakeoffTech/pin-drop-svc/common/geo"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"github.com/fatih/structs"
	"net/http"
	"os"
	"time"
)

const userLocationNotFound = "User location not found."

// getSessionWithLocation builds the request session and its origin.
// A malformed location is answered with 400, a missing one with 412.
func getSessionWithLocation(responseWriter http.ResponseWriter,
	request *http.Request) (*session.Session, geo.Coordinate, bool) {
	logger := logging.GetLoggerFromContext(request.Context())
	requestSession, err := session.FromRequest(request)
	if err != nil {
		logger.Debugf("Unable to read session location : %v", err)
		response.RespondWithResponseObject(responseWriter,
			response.NewResponse(http.StatusBadRequest, "Request validation failed", []string{err.Error()}),
			response.GetCommonResponseHeaders(request))

		return nil, geo.Coordinate{}, false
	}
	origin, err := requestSession.Origin()
	if err != nil {
		response.RespondWithPreconditionFailedMessage(responseWriter, request, userLocationNotFound)

		return nil, geo.Coordinate{}, false
	}

	return requestSession, origin, true
}

// sendPostResponse answers a created point and publishes its audit and change messages
func sendPostResponse(ctx context.Context, responseWriter http.ResponseWriter, request *http.Request,
	pubsubClient cloud.Queue, point models.Point) {
	logger := logging.GetLoggerFromContext(ctx)
	etag, err := utils.GetETag(point)
	if err != nil {
		logger.Errorf("Error while getting etag for point struct object : %v", err)
		response.RespondWithInternalServerError(responseWriter, request)

		return
	}

	response.Respond(responseWriter, http.StatusCreated, point, response.GetCommonResponseHeaders(request).
		WithHeader(common.HeaderLastModified, point.Timestamp).
		WithHeader(common.HeaderLocation, utils.GetPointLocation(point.ID)).
		WithHeader(common.HeaderEtag, etag))

	logger.Debugf("Point successfully created with id : %s", point.ID)

	createdAt := pointTime(point)
	pubsubClient.Publish(ctx, os.Getenv(common.EnvAuditLogTopic),
		audit.GetPubSubAuditMessage(audit.GetPointAuditPath(point.ID),
			request.Header.Get(common.HeaderXCorrelationID), point.CreatorEmail,
			common.AuditTypeCreate,
			common.EntityPoint,
			&createdAt,
			nil,
			structs.Map(point),
		))

	pubsubClient.Publish(ctx, os.Getenv(common.EnvPointMessageTopic),
		models.GetPubSubPointMessage(point.ID, common.ChangeTypeCreate))
}

// pointTime is the creation time of the point, now when the stored timestamp is unreadable
func pointTime(point models.Point) time.Time {
	createdAt, err := time.Parse(common.TimestampFormat, point.Timestamp)
	if err != nil {
		return time.Now().UTC()
	}

	return createdAt
}
