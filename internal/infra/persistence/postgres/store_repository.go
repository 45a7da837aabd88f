// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// CreateStore persists a new store. The unique index on the normalized
// name/address pair is the authoritative duplicate check.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStore
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	// Update the entity with generated values
	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// FindStoreByID retrieves a store by its unique ID.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// ListStores retrieves all stores ordered by most recently created.
func (repo *storeRepository) ListStores(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// SearchStores retrieves stores whose normalized name, address, or category
// contains the given normalized query.
func (repo *storeRepository) SearchStores(ctx context.Context, normalizedQuery string) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	pattern := "%" + normalizedQuery + "%"
	if err := repo.db.WithContext(ctx).
		Where("normalized_name LIKE ? OR normalized_address LIKE ? OR normalized_category LIKE ?",
			pattern, pattern, pattern).
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		stores = append(stores, toStoreDomain(storeM))
	}

	return stores, nil
}

// UpdateStore updates an existing store record.
func (repo *storeRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Save(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStore
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required store information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update store")
	}

	// Update the entity with the new timestamp
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// DeleteStore removes a store by its ID.
func (repo *storeRepository) DeleteStore(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.StoreModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}

	// If no rows were affected, it means the store was not found.
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) *entity.Store {
	if data == nil {
		return nil
	}

	return &entity.Store{
		ID:                 data.ID,
		Name:               data.Name,
		Address:            data.Address,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		ContactNumber:      data.ContactNumber,
		Supervisor:         data.Supervisor,
		Hours:              data.Hours,
		Status:             entity.StoreStatus(data.Status),
		Category:           data.Category,
		PinLocation:        data.PinLocation,
		NormalizedName:     data.NormalizedName,
		NormalizedAddress:  data.NormalizedAddress,
		NormalizedCategory: data.NormalizedCategory,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) *model.StoreModel {
	if data == nil {
		return nil
	}

	return &model.StoreModel{
		ID:                 data.ID,
		Name:               data.Name,
		Address:            data.Address,
		Latitude:           data.Latitude,
		Longitude:          data.Longitude,
		ContactNumber:      data.ContactNumber,
		Supervisor:         data.Supervisor,
		Hours:              data.Hours,
		Status:             string(data.Status),
		Category:           data.Category,
		PinLocation:        data.PinLocation,
		NormalizedName:     data.NormalizedName,
		NormalizedAddress:  data.NormalizedAddress,
		NormalizedCategory: data.NormalizedCategory,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
