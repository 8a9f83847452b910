package geo

import (
	"github.com/TakeoffTech/pin-drop-svc/common"
	"math"
)

// Coordinate is a point on the earth in decimal degrees
type Coordinate struct {
	Latitude  float64 `json:"latitude" structs:"latitude"`
	Longitude float64 `json:"longitude" structs:"longitude"`
}

// IsFinite is false when either component is NaN or infinite
func (c Coordinate) IsFinite() bool {
	return !math.IsNaN(c.Latitude) && !math.IsInf(c.Latitude, 0) &&
		!math.IsNaN(c.Longitude) && !math.IsInf(c.Longitude, 0)
}

// Region is a coordinate plus the span of the map viewport around it
type Region struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	LatitudeDelta  float64 `json:"latitudeDelta"`
	LongitudeDelta float64 `json:"longitudeDelta"`
}

// NewRegion returns the default viewport centered on the coordinate
func NewRegion(center Coordinate) Region {
	return Region{
		Latitude:       center.Latitude,
		Longitude:      center.Longitude,
		LatitudeDelta:  common.DefaultLatitudeDelta,
		LongitudeDelta: common.DefaultLongitudeDelta,
	}
}

// Center returns the coordinate the region is centered on
func (r Region) Center() Coordinate {
	return Coordinate{Latitude: r.Latitude, Longitude: r.Longitude}
}

// Distance computes the great-circle distance in kilometers between from and to
// with the haversine formula on a sphere of radius common.EarthRadiusKm.
// It is accurate enough for local pins, not for geodesic work.
func Distance(from Coordinate, to Coordinate) float64 {
	deltaLatitude := toRadians(to.Latitude - from.Latitude)
	deltaLongitude := toRadians(to.Longitude - from.Longitude)

	a := math.Sin(deltaLatitude/2)*math.Sin(deltaLatitude/2) +
		math.Cos(toRadians(from.Latitude))*math.Cos(toRadians(to.Latitude))*
			math.Sin(deltaLongitude/2)*math.Sin(deltaLongitude/2)
	// rounding can push a a hair above 1 for antipodal points
	a = math.Min(a, 1)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return common.EarthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
