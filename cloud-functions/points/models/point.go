package models

import (
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/geo"
	"github.com/benpate/rosetta/convert"
)

// Point is a pin dropped on the map. ID is assigned by the store and never saved as a field.
//
//nolint:lll
type Point struct {
	ID           string  `json:"id" firestore:"-" structs:"id"`
	Latitude     float64 `json:"latitude" firestore:"latitude" structs:"latitude"`
	Longitude    float64 `json:"longitude" firestore:"longitude" structs:"longitude"`
	Color        string  `json:"color" firestore:"color" structs:"color"`
	Description  string  `json:"description" firestore:"description" structs:"description"`
	Creator      string  `json:"creator" firestore:"creator" structs:"creator"`
	CreatorEmail string  `json:"creatorEmail" firestore:"creatorEmail" structs:"creatorEmail"`
	Timestamp    string  `json:"timestamp" firestore:"timestamp" structs:"timestamp"`
	ETag         string  `json:"etag,omitempty" firestore:"-" structs:"-"`
}

// Coordinate returns the position of the point
func (p Point) Coordinate() geo.Coordinate {
	return geo.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude}
}

// PointRequest is the body accepted when a pin is created by tapping the map
//
//nolint:lll
type PointRequest struct {
	Latitude    *float64 `json:"latitude" validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	Color       string   `json:"color" validate:"omitempty,color"`
	Description string   `json:"description"`
}

// PointFields are the user supplied attributes of a new point
type PointFields struct {
	Coordinate  geo.Coordinate
	Color       string
	Description string
}

// Fields converts the validated request into PointFields, an omitted color becomes the default color
func (r PointRequest) Fields() PointFields {
	fields := PointFields{Color: r.Color, Description: r.Description}
	if r.Latitude != nil {
		fields.Coordinate.Latitude = *r.Latitude
	}
	if r.Longitude != nil {
		fields.Coordinate.Longitude = *r.Longitude
	}
	if fields.Color == "" {
		fields.Color = common.GetPointColors()[0]
	}

	return fields
}

// NearbyPoint is a point along with its straight line distance from the session origin
type NearbyPoint struct {
	Point
	DistanceKm float64 `json:"distance_km"`
}

// NearbyPoints is the response of a nearby query, the viewport centered on the origin and every point
type NearbyPoints struct {
	Region geo.Region    `json:"region"`
	Points []NearbyPoint `json:"points"`
}

// PointRoute is the response of a route query
type PointRoute struct {
	Origin      geo.Coordinate `json:"origin"`
	Destination Point          `json:"destination"`
	DistanceKm  float64        `json:"distance_km"`
	Route       *Route         `json:"route,omitempty"`
}

// Route is the overlay of the first route the directions provider suggested
type Route struct {
	Summary         string `json:"summary"`
	Polyline        string `json:"polyline"`
	DistanceMeters  int64  `json:"distance_meters"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// PointFromDocument builds a Point out of a stored document.
// Numbers written by other clients may come back as int64 and are coerced to float64.
func PointFromDocument(data map[string]interface{}) Point {
	return Point{
		ID:           convert.StringDefault(data[common.ID], ""),
		Latitude:     convert.FloatDefault(data[common.Latitude], 0),
		Longitude:    convert.FloatDefault(data[common.Longitude], 0),
		Color:        convert.StringDefault(data[common.Color], ""),
		Description:  convert.StringDefault(data[common.Description], ""),
		Creator:      convert.StringDefault(data[common.Creator], ""),
		CreatorEmail: convert.StringDefault(data[common.CreatorEmail], ""),
		Timestamp:    convert.StringDefault(data[common.Timestamp], ""),
	}
}

// MissingCoordinateFields lists the coordinate fields of a stored document that are absent
// or not numbers, PointFromDocument reads those as 0
func MissingCoordinateFields(data map[string]interface{}) []string {
	var missing []string
	for _, field := range []string{common.Latitude, common.Longitude} {
		switch data[field].(type) {
		case float64, float32, int64, int32, int:
		default:
			missing = append(missing, field)
		}
	}

	return missing
}

type PubSubPointMessage struct {
	ChangeType string `json:"change_type"`
	PointID    string `json:"point_id"`
}

func GetPubSubPointMessage(pointID string, changeType string) *PubSubPointMessage {
	return &PubSubPointMessage{
		ChangeType: changeType,
		PointID:    pointID,
	}
}
