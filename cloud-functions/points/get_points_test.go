package points

import (
	"errors"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func Test_getPointsHandler(t *testing.T) {
	t.Run("Invalid Request Method", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodPost, "/points", "", common.HeaderXCorrelationID, common.HeaderAcceptVersion)
		getPointsHandler(w, r, fireStoreClient)
		response := w.Result()
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "{\"code\":400,\"message\":\"Request validation failed\",\"errors\":[\"Invalid request method, send request with correct method\"]}", string(bytes))
	})

	t.Run("Request with no headers", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodGet, "/points", "")
		getPointsHandler(w, r, fireStoreClient)
		response := w.Result()
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "{\"code\":400,\"message\":\"Request validation failed\",\"errors\":[\"Request does not have the required headers : [Accept-Version X-Correlation-ID]\"]}", string(bytes))
	})

	t.Run("Points fetched successfully", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		fireStoreClient.On("GetAll", mock.Anything, common.PointsCollection, mock.Anything).
			Return([]map[string]interface{}{pointDocument("a1", janeEmail)}, nil)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodGet, "/points", "", common.HeaderXCorrelationID, common.HeaderAcceptVersion)
		getPointsHandler(w, r, fireStoreClient)
		response := w.Result()
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.Equal(t, r.Header.Get(common.HeaderXCorrelationID), response.Header.Get(common.HeaderXCorrelationID))
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "[{\"id\":\"a1\",\"latitude\":12.9716,\"longitude\":77.5946,\"color\":\"green\","+
			"\"description\":\"Coffee\",\"creator\":\"Jane\",\"creatorEmail\":\"jane@example.com\","+
			"\"timestamp\":\"2023-04-01T10:00:00.000Z\"}]", string(bytes))
	})

	t.Run("DB down gives an empty list", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		fireStoreClient.On("GetAll", mock.Anything, common.PointsCollection, mock.Anything).
			Return(nil, errors.New("connection Timeout"))
		w := httptest.NewRecorder()
		r := getRequest(http.MethodGet, "/points", "", common.HeaderXCorrelationID, common.HeaderAcceptVersion)
		getPointsHandler(w, r, fireStoreClient)
		response := w.Result()
		assert.Equal(t, http.StatusOK, response.StatusCode)
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "[]", string(bytes))
	})
}
