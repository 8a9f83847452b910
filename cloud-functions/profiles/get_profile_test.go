package profiles

import (
	"errors"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func Test_getProfileHandler(t *testing.T) {
	t.Run("Missing user email header", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodGet, "/profile", "", common.HeaderXCorrelationID, common.HeaderAcceptVersion)
		getProfileHandler(w, r, fireStoreClient)
		response := w.Result()
		assert.Equal(t, http.StatusBadRequest, response.StatusCode)
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "{\"code\":400,\"message\":\"Request validation failed\",\"errors\":[\"Request does not have the required headers : [X-User-Email]\"]}", string(bytes))
	})

	t.Run("Stored profile", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		fireStoreClient.On("GetByID", mock.Anything, common.ProfilesCollection, janeEmail).
			Return(map[string]interface{}{
				"id":           janeEmail,
				"email":        janeEmail,
				"display_name": "Jane D.",
				"updated_time": time.Date(2023, 4, 1, 10, 0, 0, 0, time.UTC),
			}, nil)
		w := httptest.NewRecorder()
		r := getRequest(http.MethodGet, "/profile", "", common.HeaderXCorrelationID,
			common.HeaderAcceptVersion, common.HeaderUserEmail, common.HeaderUserDisplayName)
		getProfileHandler(w, r, fireStoreClient)
		response := w.Result()
		assert.Equal(t, http.StatusOK, response.StatusCode)
		assert.NotEmpty(t, response.Header.Get(common.HeaderEtag))
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "{\"email\":\"jane@example.com\",\"display_name\":\"Jane D.\",\"updated_time\":\"2023-04-01T10:00:00Z\"}", string(bytes))
	})

	t.Run("Profile not stored yet", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		fireStoreClient.On("GetByID", mock.Anything, common.ProfilesCollection, janeEmail).
			Return(nil, status.Error(codes.NotFound, "document not found"))
		w := httptest.NewRecorder()
		r := getRequest(http.MethodGet, "/profile", "", common.HeaderXCorrelationID,
			common.HeaderAcceptVersion, common.HeaderUserEmail, common.HeaderUserDisplayName)
		getProfileHandler(w, r, fireStoreClient)
		response := w.Result()
		assert.Equal(t, http.StatusOK, response.StatusCode)
		bytes, _ := io.ReadAll(response.Body)
		assert.Equal(t, "{\"email\":\"jane@example.com\",\"display_name\":\"Jane\"}", string(bytes))
	})

	t.Run("DB down", func(t *testing.T) {
		fireStoreClient := mocks.NewDB(t)
		fireStoreClient.On("GetByID", mock.Anything, common.ProfilesCollection, janeEmail).
			Return(nil, errors.New("connection Timeout"))
		w := httptest.NewRecorder()
		r := getRequest(http.MethodGet, "/profile", "", common.HeaderXCorrelationID,
			common.HeaderAcceptVersion, common.HeaderUserEmail)
		getProfileHandler(w, r, fireStoreClient)
		assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
	})
}
