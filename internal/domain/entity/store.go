// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"bakehouse/internal/domain/geo"
	"bakehouse/internal/domain/normalize"

	"github.com/google/uuid"
)

// CategoryAll is the sentinel category filter meaning "no filtering".
const CategoryAll = "all"

// Store is the core entity for a branch of the chain. Coordinates are
// derived from the address by the geocoding collaborator at write time,
// never supplied by the user directly.
type Store struct {
	ID            uuid.UUID   // The unique identifier for the store.
	Name          string      // Display name of the branch, required.
	Address       string      // Full street address, required.
	Latitude      float64     // Geocoded latitude in degrees.
	Longitude     float64     // Geocoded longitude in degrees.
	ContactNumber string      // Optional phone number.
	Supervisor    string      // Optional branch supervisor name.
	Hours         string      // Optional opening hours, e.g. "9 AM - 10 PM".
	Status        StoreStatus // Operational status, may be unset.
	Category      string      // Store type tag, "" means unset.
	PinLocation   string      // Optional map pin hint shared with customers.

	// Derived normalized keys, recomputed whenever the source fields
	// change. Used only for duplicate detection and substring search.
	NormalizedName     string
	NormalizedAddress  string
	NormalizedCategory string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location implements geo.Candidate so stores can be ranked by distance.
func (s *Store) Location() geo.Point {
	return geo.Point{Lat: s.Latitude, Lng: s.Longitude}
}

// Normalize recomputes the derived keys from the current source fields.
// Must be called before any persistence write.
func (s *Store) Normalize() {
	s.NormalizedName = normalize.Key(s.Name)
	s.NormalizedAddress = normalize.Key(s.Address)
	s.NormalizedCategory = normalize.Key(s.Category)
}
