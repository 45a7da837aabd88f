// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStore is returned when a write collides with the unique
	// (normalized_name, normalized_address) index. The index, not an
	// application-level pre-check, is the source of truth for uniqueness.
	ErrDuplicateStore = errors.New("store with the same normalized name and address already exists")
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// CreateStore persists a new store. Returns ErrDuplicateStore on a
	// normalized-key collision.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores ordered by most recently created.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// SearchStores retrieves stores whose normalized name, address, or
	// category contains the given normalized query.
	SearchStores(ctx context.Context, normalizedQuery string) ([]*entity.Store, error)

	// UpdateStore updates an existing store record. Returns
	// ErrDuplicateStore on a normalized-key collision with another record.
	UpdateStore(ctx context.Context, store *entity.Store) error

	// DeleteStore removes a store by its ID.
	DeleteStore(ctx context.Context, id uuid.UUID) error
}
