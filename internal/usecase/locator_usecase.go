package usecase

import (
	"context"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/geo"
	"bakehouse/internal/domain/service"
)

// NearbyStore is one ranked result of a nearest-store search.
type NearbyStore struct {
	Store      *entity.Store  `json:"store"`
	DistanceKm float64        `json:"distance_km"`
	Route      *service.Route `json:"route,omitempty"` // nil when no road route exists
}

// NearestResult is the outcome of a nearest-store search. Stores is empty
// (never nil) when no candidate matches the category filter.
type NearestResult struct {
	Origin geo.Point      `json:"origin"`
	Stores []*NearbyStore `json:"stores"`
}

// LocatorUsecase resolves a free-text address to the closest stores.
type LocatorUsecase interface {
	// FindNearest geocodes the address, filters candidates by normalized
	// category unless the filter is empty or "all", ranks the rest by
	// great-circle distance, and annotates each of the top limit results
	// with a road route when one exists.
	FindNearest(ctx context.Context, address, category string, limit int) (*NearestResult, error)
}
