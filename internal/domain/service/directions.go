package service

import (
	"context"

	"bakehouse/internal/domain/geo"
	"bakehouse/internal/errors"
)

// ErrNoRoute is returned when the directions provider cannot produce a road
// route between two points (unreachable or coincident locations). This is a
// normal outcome, not a failure: callers render the result without a route.
var ErrNoRoute = errors.New("no route between origin and destination")

// Route is a decoded road route between two points.
type Route struct {
	// Polyline is the decoded overview path as (lon, lat) pairs, ready for
	// map rendering.
	Polyline [][2]float64 `json:"polyline"`
	// TravelTimeText is the provider's human-readable travel time, e.g.
	// "14 mins".
	TravelTimeText string `json:"travel_time_text"`
}

// DirectionsProvider produces road routes and travel times between points.
type DirectionsProvider interface {
	// Route performs a single round trip to the directions provider.
	Route(ctx context.Context, origin, dest geo.Point) (*Route, error)
}
