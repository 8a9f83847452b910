package utils

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/geo"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/models"
	"github.com/TakeoffTech/pin-drop-svc/common/response"
	"github.com/fatih/structs"
	"github.com/hashicorp/packer-plugin-sdk/random"
	"io"
	"net/http"
	"net/url"
	"os"
	"reflect"
)

func GetETag(data interface{}) (string, error) {
	switch reflect.TypeOf(data).Kind().String() {
	case "map":
		byteArray, err := json.Marshal(data)
		if err != nil {
			return "", err
		}

		return computeEtag(byteArray), nil
	case "struct":
		return GetETag(structs.Map(data))
	default:
		return "", errors.New("type of data did not match map or struct, returning empty etag")
	}
}

// GetEtag accepts []byte will compute the etag and return the has in form of string
func computeEtag(data []byte) string {
	hash := sha256.Sum256(data)

	return fmt.Sprintf("%x", hash)
}

// Contains will return true if the s []string array contains the string str else false
func Contains(s []string, str string) bool {
	for _, v := range s {
		if v == str {
			return true
		}
	}

	return false
}

// ConvertToObject is a generic method which will convert the map to the passed object type
func ConvertToObject(data interface{}, object interface{}) error {
	bytes, err := json.Marshal(data)
	if err != nil {
		return err
	}

	return unmarshal(bytes, object)
}

// GetRandomID common function to generate random alphanumeric ID of given length
func GetRandomID(length int) string {
	return random.AlphaNumLower(length)
}

func unmarshal(bytes []byte, object interface{}) error {
	err := json.Unmarshal(bytes, object)
	if err != nil {
		return err
	}

	return nil
}

// GetSpanName will take the spanName as input and give you
// ServiceName. prefixed value which can be used for tracing
func GetSpanName(spanName string) string {
	return fmt.Sprintf("%s.%s", common.ServiceName, spanName)
}

// GetPointLocation will return the resource path of the point with pointID
func GetPointLocation(pointID string) string {
	return fmt.Sprintf("%s%s", common.PointPath, pointID)
}

// GetDirections asks the Google Directions API for a route between origin and destination.
// Nothing about the route is computed here, the response is handed back for the map overlay.
func GetDirections(ctx context.Context, origin geo.Coordinate,
	destination geo.Coordinate) (*models.GoogleDirections, error) {
	apiURL, err := url.Parse(common.DirectionsAPIUrl)
	if err != nil {
		return nil, err
	}
	queryParam := apiURL.Query()
	queryParam.Set(common.OriginParam, fmt.Sprintf("%f,%f", origin.Latitude, origin.Longitude))
	queryParam.Set(common.DestinationParam, fmt.Sprintf("%f,%f", destination.Latitude, destination.Longitude))
	queryParam.Set(common.APIKeyParam, os.Getenv(common.GoogleMapsAPIEnv))
	apiURL.RawQuery = queryParam.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error : google responded with http status : %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var directions models.GoogleDirections
	if err = json.Unmarshal(body, &directions); err != nil {
		return nil, err
	}

	if directions.Status != common.StatusOK {
		return &directions, fmt.Errorf("error : google Status : %s", directions.Status)
	}

	return &directions, nil
}

// RespondWithList writes the items as a JSON array, an empty array when there are none
func RespondWithList[T any](ctx context.Context, responseWriter http.ResponseWriter,
	request *http.Request, items []T) {
	logger := logging.GetLoggerFromContext(ctx)
	if items == nil {
		items = []T{}
	}

	response.Respond(responseWriter, http.StatusOK, items, response.GetCommonResponseHeaders(request))
	logger.Debugf("%d %T successfully fetched from DB", len(items), *new(T))
}
