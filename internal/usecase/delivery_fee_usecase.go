package usecase

import (
	"context"

	"bakehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeliveryFeeInput represents the input for adding a fee schedule.
type CreateDeliveryFeeInput struct {
	Location              string  `json:"location"`
	Zone                  string  `json:"zone"`
	MinOrderAmount        float64 `json:"min_order_amount"`
	DeliveryCharge        float64 `json:"delivery_charge"`
	AmountForFreeDelivery float64 `json:"amount_for_free_delivery"`
}

// UpdateDeliveryFeeInput represents a partial update. Nil fields are left
// unchanged.
type UpdateDeliveryFeeInput struct {
	Location              *string  `json:"location,omitempty"`
	Zone                  *string  `json:"zone,omitempty"`
	MinOrderAmount        *float64 `json:"min_order_amount,omitempty"`
	DeliveryCharge        *float64 `json:"delivery_charge,omitempty"`
	AmountForFreeDelivery *float64 `json:"amount_for_free_delivery,omitempty"`
}

// DeliveryFeeUsecase defines the interface for delivery fee management.
type DeliveryFeeUsecase interface {
	// CreateFee computes the normalized keys and persists the record.
	CreateFee(ctx context.Context, input *CreateDeliveryFeeInput) (*entity.DeliveryFee, error)

	// UpdateFee applies a partial update, re-normalizing whatever changed.
	UpdateFee(ctx context.Context, id uuid.UUID, input *UpdateDeliveryFeeInput) (*entity.DeliveryFee, error)

	// DeleteFee removes a delivery fee record.
	DeleteFee(ctx context.Context, id uuid.UUID) error

	// ListFees returns all records, or a normalized substring search when
	// query is non-empty.
	ListFees(ctx context.Context, query string) ([]*entity.DeliveryFee, error)
}
