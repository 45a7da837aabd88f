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

// deliveryFeeRepository implements the repository.DeliveryFeeRepository interface.
type deliveryFeeRepository struct {
	db *gorm.DB
}

// NewDeliveryFeeRepository is the constructor for deliveryFeeRepository.
func NewDeliveryFeeRepository(db *gorm.DB) repository.DeliveryFeeRepository {
	return &deliveryFeeRepository{
		db: db,
	}
}

// CreateFee persists a new delivery fee record. The unique index on the
// normalized location/zone pair is the authoritative duplicate check.
func (repo *deliveryFeeRepository) CreateFee(ctx context.Context, fee *entity.DeliveryFee) error {
	feeM := fromFeeDomain(fee)

	if err := repo.db.WithContext(ctx).Create(feeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFee
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery fee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create delivery fee")
	}

	// Update the entity with generated values
	fee.ID = feeM.ID
	fee.CreatedAt = feeM.CreatedAt
	fee.UpdatedAt = feeM.UpdatedAt

	return nil
}

// FindFeeByID retrieves a delivery fee record by its unique ID.
func (repo *deliveryFeeRepository) FindFeeByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryFee, error) {
	var feeM model.DeliveryFeeModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery fee by ID")
	}

	return toFeeDomain(&feeM), nil
}

// ListFees retrieves all delivery fee records ordered by location.
func (repo *deliveryFeeRepository) ListFees(ctx context.Context) ([]*entity.DeliveryFee, error) {
	var feeModels []*model.DeliveryFeeModel

	if err := repo.db.WithContext(ctx).
		Order("location ASC").
		Find(&feeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list delivery fees")
	}

	fees := make([]*entity.DeliveryFee, 0, len(feeModels))
	for _, feeM := range feeModels {
		fees = append(fees, toFeeDomain(feeM))
	}

	return fees, nil
}

// SearchFees retrieves records whose normalized location or zone contains
// the given normalized query.
func (repo *deliveryFeeRepository) SearchFees(ctx context.Context, normalizedQuery string) ([]*entity.DeliveryFee, error) {
	var feeModels []*model.DeliveryFeeModel

	pattern := "%" + normalizedQuery + "%"
	if err := repo.db.WithContext(ctx).
		Where("normalized_location LIKE ? OR normalized_zone LIKE ?", pattern, pattern).
		Order("location ASC").
		Find(&feeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search delivery fees")
	}

	fees := make([]*entity.DeliveryFee, 0, len(feeModels))
	for _, feeM := range feeModels {
		fees = append(fees, toFeeDomain(feeM))
	}

	return fees, nil
}

// UpdateFee updates an existing delivery fee record.
func (repo *deliveryFeeRepository) UpdateFee(ctx context.Context, fee *entity.DeliveryFee) error {
	feeM := fromFeeDomain(fee)

	if err := repo.db.WithContext(ctx).Save(feeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateFee
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery fee information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update delivery fee")
	}

	// Update the entity with the new timestamp
	fee.UpdatedAt = feeM.UpdatedAt

	return nil
}

// DeleteFee removes a delivery fee record by its ID.
func (repo *deliveryFeeRepository) DeleteFee(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeliveryFeeModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete delivery fee")
	}

	// If no rows were affected, it means the record was not found.
	if result.RowsAffected == 0 {
		return repository.ErrFeeNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toFeeDomain converts a GORM DeliveryFeeModel to a domain DeliveryFee entity.
func toFeeDomain(data *model.DeliveryFeeModel) *entity.DeliveryFee {
	if data == nil {
		return nil
	}

	return &entity.DeliveryFee{
		ID:                    data.ID,
		Location:              data.Location,
		Zone:                  data.Zone,
		MinOrderAmount:        data.MinOrderAmount,
		DeliveryCharge:        data.DeliveryCharge,
		AmountForFreeDelivery: data.AmountForFreeDelivery,
		NormalizedLocation:    data.NormalizedLocation,
		NormalizedZone:        data.NormalizedZone,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// fromFeeDomain converts a domain DeliveryFee entity to a GORM DeliveryFeeModel.
func fromFeeDomain(data *entity.DeliveryFee) *model.DeliveryFeeModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryFeeModel{
		ID:                    data.ID,
		Location:              data.Location,
		Zone:                  data.Zone,
		MinOrderAmount:        data.MinOrderAmount,
		DeliveryCharge:        data.DeliveryCharge,
		AmountForFreeDelivery: data.AmountForFreeDelivery,
		NormalizedLocation:    data.NormalizedLocation,
		NormalizedZone:        data.NormalizedZone,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}
