// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/normalize"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/domain/service"
	"bakehouse/internal/errors"
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
)

// Format checks carried over from the form layer of the legacy admin tool.
var (
	contactNumberPattern = regexp.MustCompile(`^\+?[0-9\s()-]{7,15}$`)
	storeHoursPattern    = regexp.MustCompile(`^\d{1,2}(:\d{2})?\s*([AP]M)?\s*-\s*\d{1,2}(:\d{2})?\s*([AP]M)?$`)
)

type storeService struct {
	storeRepo repository.StoreRepository
	geocoder  service.Geocoder
	logger    *slog.Logger
}

// NewStoreService creates a new store management service instance.
func NewStoreService(storeRepo repository.StoreRepository, geocoder service.Geocoder, logger *slog.Logger) usecase.StoreUsecase {
	return &storeService{
		storeRepo: storeRepo,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// CreateStore geocodes the address, computes the normalized keys, and
// persists the store. The repository's unique index decides duplicates.
func (s *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if err := validateStoreFields(input.Name, input.Address, input.ContactNumber, input.Hours, input.Status); err != nil {
		return nil, err
	}

	point, err := s.geocoder.Geocode(ctx, input.Address)
	if err != nil {
		if errors.Is(err, service.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound.WrapMessage("store address could not be geocoded")
		}

		return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	store := &entity.Store{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(input.Name),
		Address:       strings.TrimSpace(input.Address),
		Latitude:      point.Lat,
		Longitude:     point.Lng,
		ContactNumber: input.ContactNumber,
		Supervisor:    input.Supervisor,
		Hours:         input.Hours,
		Status:        input.Status,
		Category:      input.Category,
		PinLocation:   input.PinLocation,
	}
	store.Normalize()

	if err := s.storeRepo.CreateStore(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicateStore) {
			return nil, domainerrors.ErrDuplicateStore
		}

		return nil, errors.Wrap(err, "failed to create store")
	}

	s.logger.Info("store created",
		slog.String("id", store.ID.String()),
		slog.String("normalizedName", store.NormalizedName),
	)

	return store, nil
}

// UpdateStore applies a partial update. A changed address is re-geocoded and
// the normalized keys are recomputed before the write.
func (s *storeService) UpdateStore(ctx context.Context, id uuid.UUID, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	if input.Name != nil {
		store.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil && strings.TrimSpace(*input.Address) != store.Address {
		store.Address = strings.TrimSpace(*input.Address)

		point, err := s.geocoder.Geocode(ctx, store.Address)
		if err != nil {
			if errors.Is(err, service.ErrAddressNotFound) {
				return nil, domainerrors.ErrAddressNotFound.WrapMessage("updated address could not be geocoded")
			}

			return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
		}
		store.Latitude = point.Lat
		store.Longitude = point.Lng
	}
	if input.ContactNumber != nil {
		store.ContactNumber = *input.ContactNumber
	}
	if input.Supervisor != nil {
		store.Supervisor = *input.Supervisor
	}
	if input.Hours != nil {
		store.Hours = *input.Hours
	}
	if input.Status != nil {
		store.Status = *input.Status
	}
	if input.Category != nil {
		store.Category = *input.Category
	}
	if input.PinLocation != nil {
		store.PinLocation = *input.PinLocation
	}

	if err := validateStoreFields(store.Name, store.Address, store.ContactNumber, store.Hours, store.Status); err != nil {
		return nil, err
	}
	store.Normalize()

	if err := s.storeRepo.UpdateStore(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicateStore) {
			return nil, domainerrors.ErrDuplicateStore
		}

		return nil, errors.Wrap(err, "failed to update store")
	}

	return store, nil
}

// DeleteStore removes a store.
func (s *storeService) DeleteStore(ctx context.Context, id uuid.UUID) error {
	if err := s.storeRepo.DeleteStore(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return errors.Wrap(err, "failed to delete store")
	}

	return nil
}

// ListStores returns all stores, or a normalized substring search when the
// query is non-empty.
func (s *storeService) ListStores(ctx context.Context, query string) ([]*entity.Store, error) {
	if key := normalize.Key(query); key != "" {
		stores, err := s.storeRepo.SearchStores(ctx, key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search stores")
		}

		return stores, nil
	}

	stores, err := s.storeRepo.ListStores(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

func validateStoreFields(name, address, contactNumber, hours string, status entity.StoreStatus) error {
	if strings.TrimSpace(name) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("store name is required")
	}
	if strings.TrimSpace(address) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("store address is required")
	}
	if contactNumber != "" && !contactNumberPattern.MatchString(contactNumber) {
		return domainerrors.ErrValidationFailed.WrapMessage("contact number must be an international phone number")
	}
	if hours != "" && !storeHoursPattern.MatchString(hours) {
		return domainerrors.ErrValidationFailed.WrapMessage("store hours must be a time range such as '9 AM - 10 PM'")
	}
	if !status.Valid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown store status")
	}

	return nil
}
