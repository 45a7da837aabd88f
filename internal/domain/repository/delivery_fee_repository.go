package repository

import (
	"context"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for delivery fee persistence.
var (
	// ErrFeeNotFound is returned when a delivery fee record is not found.
	ErrFeeNotFound = errors.New("delivery fee record not found")
	// ErrDuplicateFee is returned when a write collides with the unique
	// (normalized_location, normalized_zone) index.
	ErrDuplicateFee = errors.New("delivery fee record for the same normalized location and zone already exists")
)

// DeliveryFeeRepository defines the interface for delivery-fee database operations.
type DeliveryFeeRepository interface {
	// CreateFee persists a new delivery fee record. Returns ErrDuplicateFee
	// on a normalized-key collision.
	CreateFee(ctx context.Context, fee *entity.DeliveryFee) error

	// FindFeeByID retrieves a delivery fee record by its unique ID.
	FindFeeByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryFee, error)

	// ListFees retrieves all delivery fee records ordered by location.
	ListFees(ctx context.Context) ([]*entity.DeliveryFee, error)

	// SearchFees retrieves records whose normalized location or zone
	// contains the given normalized query.
	SearchFees(ctx context.Context, normalizedQuery string) ([]*entity.DeliveryFee, error)

	// UpdateFee updates an existing record. Returns ErrDuplicateFee on a
	// normalized-key collision with another record.
	UpdateFee(ctx context.Context, fee *entity.DeliveryFee) error

	// DeleteFee removes a delivery fee record by its ID.
	DeleteFee(ctx context.Context, id uuid.UUID) error
}
