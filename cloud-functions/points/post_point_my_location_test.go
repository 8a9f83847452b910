package points

import (
	"encoding/json"
	"errors"
	"github.com/TakeoffTech/pin-drop-svc/cloud-functions/points/models"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func Test_postPointMyLocationHandler(t *testing.T) {
	t.Run("User location not found", func(t *testing.T) {
		pubSubClient := mocks.NewQueue(t)
		fireStoreClient := mocks.NewDB(t)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodPost, "/points:pinMyLocation", "", common.HeaderXCorrelationID,
			common.HeaderAcceptVersion, common.HeaderUserEmail)
		postPointMyLocationHandler(w, r, fireStoreClient, pubSubClient)
		response := w.Result()
		assert.Equal(t, http.StatusPreconditionFailed, response.StatusCode)
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "{\"code\":412,\"message\":\"User location not found.\"}", string(bytes))
	})

	t.Run("Location permission denied", func(t *testing.T) {
		pubSubClient := mocks.NewQueue(t)
		fireStoreClient := mocks.NewDB(t)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodPost, "/points:pinMyLocation?latitude=1&longitude=2", "",
			common.HeaderXCorrelationID, common.HeaderAcceptVersion, common.HeaderUserEmail)
		r.Header.Set(common.HeaderLocationPermission, common.PermissionDenied)
		postPointMyLocationHandler(w, r, fireStoreClient, pubSubClient)
		assert.Equal(t, http.StatusPreconditionFailed, w.Result().StatusCode)
	})

	t.Run("NaN location is rejected before the point is stored", func(t *testing.T) {
		pubSubClient := mocks.NewQueue(t)
		fireStoreClient := mocks.NewDB(t)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodPost, "/points:pinMyLocation?latitude=NaN&longitude=Inf", "",
			common.HeaderXCorrelationID, common.HeaderAcceptVersion, common.HeaderUserEmail)
		postPointMyLocationHandler(w, r, fireStoreClient, pubSubClient)
		response := w.Result()
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "{\"code\":400,\"message\":\"Request validation failed\",\"errors\":"+
			"[\"invalid value for query param latitude : coordinate must be a finite number\"]}", string(bytes))
		fireStoreClient.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("DB down while adding the point", func(t *testing.T) {
		pubSubClient := mocks.NewQueue(t)
		fireStoreClient := mocks.NewDB(t)
		fireStoreClient.On("Add", mock.Anything, common.PointsCollection, mock.Anything).
			Return("", time.Time{}, errors.New("connection Timeout"))
		w := httptest.NewRecorder()
		r := getRequest(http.MethodPost, "/points:pinMyLocation?latitude=1&longitude=2", "",
			common.HeaderXCorrelationID, common.HeaderAcceptVersion, common.HeaderUserEmail)
		postPointMyLocationHandler(w, r, fireStoreClient, pubSubClient)
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})

	t.Run("Point pinned at user location", func(t *testing.T) {
		pubSubClient := mocks.NewQueue(t)
		fireStoreClient := mocks.NewDB(t)
		fireStoreClient.On("Add", mock.Anything, common.PointsCollection, mock.MatchedBy(func(point models.Point) bool {
			return point.Latitude == 52.52 && point.Longitude == 13.405 && point.Creator == common.AnonymousUser
		})).Return("Pq34xyz", time.Now(), nil)
		pubSubClient.On("Publish", mock.Anything, auditTopic, mock.Anything).Return()
		pubSubClient.On("Publish", mock.Anything, pointTopic, mock.Anything).Return()
		w := httptest.NewRecorder()
		r := getRequest(http.MethodPost, "/points:pinMyLocation?latitude=52.52&longitude=13.405", "",
			common.HeaderXCorrelationID, common.HeaderAcceptVersion, common.HeaderUserEmail)
		postPointMyLocationHandler(w, r, fireStoreClient, pubSubClient)
		response := w.Result()
		assert.Equal(t, http.StatusCreated, response.StatusCode)
		assert.Equal(t, "/points/Pq34xyz", response.Header.Get(common.HeaderLocation))
		var point models.Point
		assert.Nil(t, json.NewDecoder(response.Body).Decode(&point))
		assert.Equal(t, common.ColorBlue, point.Color)
		assert.Equal(t, "Pinned at user's location", point.Description)
		assert.Equal(t, common.AnonymousUser, point.Creator)
	})
}
