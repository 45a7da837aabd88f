package impl

import (
	"context"
	"log/slog"
	"strings"

	"bakehouse/internal/domain/entity"
	domainerrors "bakehouse/internal/domain/errors"
	"bakehouse/internal/domain/normalize"
	"bakehouse/internal/domain/repository"
	"bakehouse/internal/errors"
	"bakehouse/internal/usecase"

	"github.com/google/uuid"
)

type deliveryFeeService struct {
	feeRepo repository.DeliveryFeeRepository
	logger  *slog.Logger
}

// NewDeliveryFeeService creates a new delivery fee management service instance.
func NewDeliveryFeeService(feeRepo repository.DeliveryFeeRepository, logger *slog.Logger) usecase.DeliveryFeeUsecase {
	return &deliveryFeeService{
		feeRepo: feeRepo,
		logger:  logger,
	}
}

// CreateFee computes the normalized keys and persists the record.
func (s *deliveryFeeService) CreateFee(ctx context.Context, input *usecase.CreateDeliveryFeeInput) (*entity.DeliveryFee, error) {
	if err := validateFeeFields(input.Location, input.MinOrderAmount, input.DeliveryCharge, input.AmountForFreeDelivery); err != nil {
		return nil, err
	}

	fee := &entity.DeliveryFee{
		ID:                    uuid.New(),
		Location:              strings.TrimSpace(input.Location),
		Zone:                  strings.TrimSpace(input.Zone),
		MinOrderAmount:        input.MinOrderAmount,
		DeliveryCharge:        input.DeliveryCharge,
		AmountForFreeDelivery: input.AmountForFreeDelivery,
	}
	fee.Normalize()

	if err := s.feeRepo.CreateFee(ctx, fee); err != nil {
		if errors.Is(err, repository.ErrDuplicateFee) {
			return nil, domainerrors.ErrDuplicateFee
		}

		return nil, errors.Wrap(err, "failed to create delivery fee")
	}

	s.logger.Info("delivery fee created",
		slog.String("id", fee.ID.String()),
		slog.String("normalizedLocation", fee.NormalizedLocation),
	)

	return fee, nil
}

// UpdateFee applies a partial update and recomputes the normalized keys.
func (s *deliveryFeeService) UpdateFee(ctx context.Context, id uuid.UUID, input *usecase.UpdateDeliveryFeeInput) (*entity.DeliveryFee, error) {
	fee, err := s.feeRepo.FindFeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeeNotFound) {
			return nil, domainerrors.ErrFeeNotFound
		}

		return nil, errors.Wrap(err, "failed to find delivery fee by ID")
	}

	if input.Location != nil {
		fee.Location = strings.TrimSpace(*input.Location)
	}
	if input.Zone != nil {
		fee.Zone = strings.TrimSpace(*input.Zone)
	}
	if input.MinOrderAmount != nil {
		fee.MinOrderAmount = *input.MinOrderAmount
	}
	if input.DeliveryCharge != nil {
		fee.DeliveryCharge = *input.DeliveryCharge
	}
	if input.AmountForFreeDelivery != nil {
		fee.AmountForFreeDelivery = *input.AmountForFreeDelivery
	}

	if err := validateFeeFields(fee.Location, fee.MinOrderAmount, fee.DeliveryCharge, fee.AmountForFreeDelivery); err != nil {
		return nil, err
	}
	fee.Normalize()

	if err := s.feeRepo.UpdateFee(ctx, fee); err != nil {
		if errors.Is(err, repository.ErrDuplicateFee) {
			return nil, domainerrors.ErrDuplicateFee
		}

		return nil, errors.Wrap(err, "failed to update delivery fee")
	}

	return fee, nil
}

// DeleteFee removes a delivery fee record.
func (s *deliveryFeeService) DeleteFee(ctx context.Context, id uuid.UUID) error {
	if err := s.feeRepo.DeleteFee(ctx, id); err != nil {
		if errors.Is(err, repository.ErrFeeNotFound) {
			return domainerrors.ErrFeeNotFound
		}

		return errors.Wrap(err, "failed to delete delivery fee")
	}

	return nil
}

// ListFees returns all records, or a normalized substring search when the
// query is non-empty.
func (s *deliveryFeeService) ListFees(ctx context.Context, query string) ([]*entity.DeliveryFee, error) {
	if key := normalize.Key(query); key != "" {
		fees, err := s.feeRepo.SearchFees(ctx, key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to search delivery fees")
		}

		return fees, nil
	}

	fees, err := s.feeRepo.ListFees(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list delivery fees")
	}

	return fees, nil
}

// The zone is not validated here: it is optional, and an empty zone is a
// valid half of the normalized (location, zone) identity pair.
func validateFeeFields(location string, minOrder, charge, freeFrom float64) error {
	if strings.TrimSpace(location) == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("delivery location is required")
	}
	if minOrder < 0 || charge < 0 || freeFrom < 0 {
		return domainerrors.ErrValidationFailed.WrapMessage("amounts must not be negative")
	}

	return nil
}
