// Package usecase defines the application use case interfaces and their
// input/output types.
package usecase

import (
	"context"

	"bakehouse/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateStoreInput represents the input for registering a new store.
// Coordinates are not part of the input: the address is geocoded at write
// time.
type CreateStoreInput struct {
	Name          string             `json:"name"`
	Address       string             `json:"address"`
	ContactNumber string             `json:"contact_number"`
	Supervisor    string             `json:"supervisor"`
	Hours         string             `json:"hours"`
	Status        entity.StoreStatus `json:"status"`
	Category      string             `json:"category"`
	PinLocation   string             `json:"pin_location"`
}

// UpdateStoreInput represents the input for updating an existing store.
// Nil fields are left unchanged. Changing the address re-geocodes it.
type UpdateStoreInput struct {
	Name          *string             `json:"name,omitempty"`
	Address       *string             `json:"address,omitempty"`
	ContactNumber *string             `json:"contact_number,omitempty"`
	Supervisor    *string             `json:"supervisor,omitempty"`
	Hours         *string             `json:"hours,omitempty"`
	Status        *entity.StoreStatus `json:"status,omitempty"`
	Category      *string             `json:"category,omitempty"`
	PinLocation   *string             `json:"pin_location,omitempty"`
}

// StoreUsecase defines the interface for store management use cases.
type StoreUsecase interface {
	// CreateStore geocodes the address, computes the normalized keys, and
	// persists the store.
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)

	// UpdateStore applies a partial update, re-geocoding and re-normalizing
	// whatever changed.
	UpdateStore(ctx context.Context, id uuid.UUID, input *UpdateStoreInput) (*entity.Store, error)

	// DeleteStore removes a store.
	DeleteStore(ctx context.Context, id uuid.UUID) error

	// ListStores returns all stores, or a normalized substring search when
	// query is non-empty.
	ListStores(ctx context.Context, query string) ([]*entity.Store, error)
}
