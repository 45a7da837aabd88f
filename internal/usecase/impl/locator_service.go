package impl

import (
	"context"
	"log/slog"

	"bakehouse/config"
	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/geo"
	"bakehouse/internal/domain/normalize"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/errors"
	"bakehouse/internal/usecase"
)

const (
	fallbackDefaultLimit = 3
	fallbackMaxLimit     = 10
)

type locatorService struct {
	storeRepo  repository.StoreRepository
	geocoder   service.Geocoder
	directions service.DirectionsProvider
	logger     *slog.Logger

	defaultLimit int
	maxLimit     int
}

// NewLocatorService creates a new nearest-store resolution service instance.
func NewLocatorService(
	cfg *config.Config,
	storeRepo repository.StoreRepository,
	geocoder service.Geocoder,
	directions service.DirectionsProvider,
	logger *slog.Logger,
) usecase.LocatorUsecase {
	defaultLimit, maxLimit := fallbackDefaultLimit, fallbackMaxLimit
	if cfg.Locator != nil {
		if cfg.Locator.DefaultLimit > 0 {
			defaultLimit = cfg.Locator.DefaultLimit
		}
		if cfg.Locator.MaxLimit > 0 {
			maxLimit = cfg.Locator.MaxLimit
		}
	}

	return &locatorService{
		storeRepo:    storeRepo,
		geocoder:     geocoder,
		directions:   directions,
		logger:       logger,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// FindNearest geocodes the address, filters candidates by normalized
// category, ranks them by great-circle distance, and annotates each result
// with a road route when one exists.
func (s *locatorService) FindNearest(ctx context.Context, address, category string, limit int) (*usecase.NearestResult, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	origin, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}
	stores = filterByCategory(stores, category)

	ranked, err := geo.Nearest(origin, stores, limit)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidCoordinate) {
			return nil, domainerrors.ErrInvalidCoordinate.WrapMessage(err.Error())
		}

		return nil, errors.Wrap(err, "failed to rank stores")
	}

	result := &usecase.NearestResult{
		Origin: origin,
		Stores: make([]*usecase.NearbyStore, 0, len(ranked)),
	}
	for _, r := range ranked {
		nearby := &usecase.NearbyStore{
			Store:      r.Candidate,
			DistanceKm: r.DistanceKm,
		}
		nearby.Route = s.routeTo(ctx, origin, r.Candidate)
		result.Stores = append(result.Stores, nearby)
	}

	return result, nil
}

// routeTo fetches a road route for one ranked store. A missing route is a
// normal outcome; provider failures degrade the result instead of failing
// the whole search.
func (s *locatorService) routeTo(ctx context.Context, origin geo.Point, store *entity.Store) *service.Route {
	route, err := s.directions.Route(ctx, origin, store.Location())
	if err != nil {
		if !errors.Is(err, service.ErrNoRoute) {
			s.logger.Warn("directions lookup failed",
				slog.String("store", store.Name),
				slog.Any("error", err),
			)
		}

		return nil
	}

	return route
}

// filterByCategory keeps the stores whose normalized category matches the
// filter. An empty filter or the "all" sentinel keeps everything.
func filterByCategory(stores []*entity.Store, category string) []*entity.Store {
	key := normalize.Key(category)
	if key == "" || key == entity.CategoryAll || key == "all stores" {
		return stores
	}

	filtered := make([]*entity.Store, 0, len(stores))
	for _, store := range stores {
		if store.NormalizedCategory == key {
			filtered = append(filtered, store)
		}
	}

	return filtered
}
