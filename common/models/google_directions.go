package models

// GoogleDirections is the subset of the Directions API response needed to draw a route overlay
type GoogleDirections struct {
	Status       string        `json:"status"`
	ErrorMessage string        `json:"error_message,omitempty"`
	Routes       []GoogleRoute `json:"routes"`
}

type GoogleRoute struct {
	Summary          string           `json:"summary"`
	OverviewPolyline GooglePolyline   `json:"overview_polyline"`
	Legs             []GoogleRouteLeg `json:"legs"`
}

type GooglePolyline struct {
	Points string `json:"points"`
}

type GoogleRouteLeg struct {
	Distance GoogleTextValue `json:"distance"`
	Duration GoogleTextValue `json:"duration"`
}

// GoogleTextValue holds a value in meters or seconds along with its display text
type GoogleTextValue struct {
	Text  string `json:"text"`
	Value int64  `json:"value"`
}
