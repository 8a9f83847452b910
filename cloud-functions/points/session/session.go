package session

import (
	"errors"
	"fmt"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/geo"
	"github.com/TakeoffTech/pin-drop-svc/common/identity"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// ErrPermissionDenied is returned by Origin when the device location was not shared
var ErrPermissionDenied = errors.New("location permission denied")

// ErrNonFiniteCoordinate is returned for NaN or infinite latitude and longitude values
var ErrNonFiniteCoordinate = errors.New("coordinate must be a finite number")

// Session is the requester together with the device location captured once for the request
type Session struct {
	User   identity.User
	region *geo.Region
}

// New returns a session for user located at origin, a nil origin is a session without location
func New(user identity.User, origin *geo.Coordinate) *Session {
	s := &Session{User: user}
	if origin != nil {
		region := geo.NewRegion(*origin)
		s.region = &region
	}

	return s
}

// FromRequest builds the session from the identity headers and the latitude and longitude
// query params. The location is absent when either param is missing or the client reports
// the permission as denied. A malformed number is an error.
func FromRequest(request *http.Request) (*Session, error) {
	user := identity.FromRequest(request)
	if strings.EqualFold(request.Header.Get(common.HeaderLocationPermission), common.PermissionDenied) {
		return New(user, nil), nil
	}

	query := request.URL.Query()
	if !query.Has(common.QueryParamLatitude) || !query.Has(common.QueryParamLongitude) {
		return New(user, nil), nil
	}

	latitude, err := parseCoordinate(query.Get(common.QueryParamLatitude))
	if err != nil {
		return nil, fmt.Errorf("invalid value for query param %s : %w", common.QueryParamLatitude, err)
	}
	longitude, err := parseCoordinate(query.Get(common.QueryParamLongitude))
	if err != nil {
		return nil, fmt.Errorf("invalid value for query param %s : %w", common.QueryParamLongitude, err)
	}

	return New(user, &geo.Coordinate{Latitude: latitude, Longitude: longitude}), nil
}

// parseCoordinate accepts any finite float, NaN and infinities cannot be stored as JSON
func parseCoordinate(value string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, ErrNonFiniteCoordinate
	}

	return parsed, nil
}

// Origin is the captured device location
func (s *Session) Origin() (geo.Coordinate, error) {
	if s.region == nil {
		return geo.Coordinate{}, ErrPermissionDenied
	}

	return s.region.Center(), nil
}

// Region is the map viewport centered on the device location
func (s *Session) Region() (geo.Region, error) {
	if s.region == nil {
		return geo.Region{}, ErrPermissionDenied
	}

	return *s.region, nil
}

// HasLocation is true when the device location was captured
func (s *Session) HasLocation() bool {
	return s.region != nil
}
