// Package service defines interfaces for external collaborators consumed by
// the use case layer, implemented under internal/infra.
package service

import (
	"context"

	"bakehouse/internal/domain/geo"
	"bakehouse/internal/errors"
)

// ErrAddressNotFound is returned when the geocoding provider resolves the
// request but finds no location for the address. It is distinct from a
// transport error: the caller should show a user-facing message, not retry.
var ErrAddressNotFound = errors.New("no location found for address")

// Geocoder resolves free-text addresses to coordinates.
type Geocoder interface {
	// Geocode performs a single round trip to the geocoding provider.
	Geocode(ctx context.Context, address string) (geo.Point, error)
}
