package utils

import (
	"context"
	"errors"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/geo"
	commonModels "github.com/TakeoffTech/pin-drop-svc/common/models"
	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func init() {
	err := os.Setenv(common.GoogleMapsAPIEnv, "api-key")
	if err != nil {
		return
	}
}

type point struct {
	ID          string `json:"id" structs:"id"`
	Description string `json:"description" structs:"description"`
}

func TestComputeEtag(t *testing.T) {
	type args struct {
		data []byte
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"ETag for Point Object",
			args{data: []byte{123, 34, 110, 97, 109, 101, 34, 58, 34, 109, 101, 34, 44, 34, 112, 104, 111, 110, 101, 34, 58, 34, 49, 50, 51, 52, 53, 34, 125}},
			"9af73e130d09e5768f223cf690ca38dfa1d6e1e42091bcb7a2e40c667588493f",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := computeEtag(tt.args.data); got != tt.want {
				t.Errorf("GetEtag() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestConvertToObject(t *testing.T) {
	type args struct {
		data   map[string]interface{}
		object interface{}
	}

	type testCase struct {
		name    string
		args    args
		wantErr bool
	}

	tests := []testCase{
		{
			"Error while marshalling ",
			args{
				map[string]interface{}{
					"foo": make(chan int),
				},
				&point{},
			},
			true,
		},
		{
			"Success conversion of object ",
			args{
				map[string]interface{}{"id": "abc", "description": "Coffee"},
				&point{},
			},
			false,
		},
		{
			"Error when field has a different type",
			args{
				map[string]interface{}{"id": 1233},
				&point{},
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ConvertToObject(tt.args.data, tt.args.object); (err != nil) != tt.wantErr {
				t.Errorf("ConvertToObject() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMarshal(t *testing.T) {
	t.Run("Error while Unmarshal", func(t *testing.T) {
		assert.NotNil(t, unmarshal([]byte{}, "string"))
	})
}

func TestGetSpanName(t *testing.T) {
	assert.Equal(t, common.ServiceName+"."+"GetPoints", GetSpanName("GetPoints"))
}

func TestGetRandomID(t *testing.T) {
	id := GetRandomID(common.RandomIDLength)
	assert.Len(t, id, common.RandomIDLength)
	assert.NotEqual(t, id, GetRandomID(common.RandomIDLength+3))
}

func TestGetPointLocation(t *testing.T) {
	assert.Equal(t, "/points/Xy12abc", GetPointLocation("Xy12abc"))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(common.GetPointColors(), common.ColorPurple))
	assert.False(t, Contains(common.GetPointColors(), "pink"))
	assert.False(t, Contains(nil, common.ColorRed))
}

func TestGetETag(t *testing.T) {
	t.Run("Get Etag from Map", func(t *testing.T) {
		etag, err := GetETag(map[string]interface{}{"id": "r12345"})
		assert.Nil(t, err)
		assert.Equal(t, "502250b1d731426e35876ff70a5ae911fe08e69e0146417fa43df4b316ca62e9", etag)
	})

	t.Run("Get Etag from invalid map", func(t *testing.T) {
		etag, err := GetETag(map[string]interface{}{"id": make(chan int)})
		assert.NotNil(t, err)
		assert.Equal(t, "", etag)
	})

	t.Run("Get Etag from invalid data type", func(t *testing.T) {
		etag, err := GetETag("abc")
		assert.NotNil(t, err)
		assert.Equal(t, errors.New("type of data did not match map or struct, returning empty etag"), err)
		assert.Equal(t, "", etag)
	})

	t.Run("Get Etag from struct is the etag of its map", func(t *testing.T) {
		fromStruct, err := GetETag(point{ID: "r12345"})
		assert.Nil(t, err)
		fromMap, err := GetETag(map[string]interface{}{"id": "r12345", "description": ""})
		assert.Nil(t, err)
		assert.Equal(t, fromMap, fromStruct)
	})
}

func TestGetDirections(t *testing.T) {
	origin := geo.Coordinate{Latitude: 52.52, Longitude: 13.405}
	destination := geo.Coordinate{Latitude: 52.5163, Longitude: 13.3777}

	t.Run("Get directions between two points", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://maps.googleapis.com").
			Get("/maps/api/directions/json").
			MatchParam("origin", "52.520000,13.405000").
			MatchParam("destination", "52.516300,13.377700").
			MatchParam("key", "api-key").
			Reply(200).
			JSON(commonModels.GoogleDirections{
				Status: "OK",
				Routes: []commonModels.GoogleRoute{{
					Summary:          "Unter den Linden",
					OverviewPolyline: commonModels.GooglePolyline{Points: "a~l~Fjk~uOwHJy@P"},
					Legs: []commonModels.GoogleRouteLeg{{
						Distance: commonModels.GoogleTextValue{Text: "2.1 km", Value: 2100},
						Duration: commonModels.GoogleTextValue{Text: "7 mins", Value: 420},
					}},
				}},
			})
		directions, err := GetDirections(context.Background(), origin, destination)
		assert.Nil(t, err)
		assert.Equal(t, "Unter den Linden", directions.Routes[0].Summary)
		assert.Equal(t, int64(2100), directions.Routes[0].Legs[0].Distance.Value)
		assert.True(t, gock.IsDone())
	})

	t.Run("Get directions when google returns no route", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://maps.googleapis.com").
			Get("/maps/api/directions/json").
			Reply(200).
			JSON(commonModels.GoogleDirections{Status: "ZERO_RESULTS"})
		_, err := GetDirections(context.Background(), origin, destination)
		assert.Equal(t, "error : google Status : ZERO_RESULTS", err.Error())
	})

	t.Run("Get directions when google returns null", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://maps.googleapis.com").
			Get("/maps/api/directions/json").
			Reply(200).
			BodyString("null")
		directions, err := GetDirections(context.Background(), origin, destination)
		assert.Equal(t, "error : google Status : ", err.Error())
		assert.Empty(t, directions.Routes)
	})

	t.Run("Get directions when google responds with an error status", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://maps.googleapis.com").
			Get("/maps/api/directions/json").
			Reply(503).
			BodyString("Service Unavailable")
		directions, err := GetDirections(context.Background(), origin, destination)
		assert.Equal(t, "error : google responded with http status : 503", err.Error())
		assert.Nil(t, directions)
	})

	t.Run("Get directions when google returns invalid json", func(t *testing.T) {
		defer gock.Off()
		gock.New("https://maps.googleapis.com").
			Get("/maps/api/directions/json").
			Reply(200).
			BodyString("{invalid")
		directions, err := GetDirections(context.Background(), origin, destination)
		assert.NotNil(t, err)
		assert.Nil(t, directions)
	})
}

func TestRespondWithList(t *testing.T) {
	t.Run("Nil list is written as an empty array", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/points", nil)
		RespondWithList[point](context.Background(), w, r, nil)
		bytes, _ := io.ReadAll(w.Result().Body)
		assert.Equal(t, http.StatusOK, w.Result().StatusCode)
		assert.Equal(t, "[]", string(bytes))
	})

	t.Run("List is written in order", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/points", nil)
		RespondWithList(context.Background(), w, r, []point{{ID: "a"}, {ID: "b", Description: "Coffee"}})
		bytes, _ := io.ReadAll(w.Result().Body)
		assert.Equal(t, "[{\"id\":\"a\",\"description\":\"\"},{\"id\":\"b\",\"description\":\"Coffee\"}]", string(bytes))
	})
}
