package supplier

import (
	"context"

	"github.com/dropship/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindBySlug finds a supplier by its URL slug
	FindBySlug(ctx context.Context, slug string) (*Supplier, error)

	// FindAll finds all suppliers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier (including its address)
	Save(ctx context.Context, s *Supplier) error

	// Delete removes a supplier row
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts suppliers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// ExistsByName checks if a supplier with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// ExistsBySlug checks if a supplier with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// LinkUser associates a marketplace user with a supplier
	LinkUser(ctx context.Context, supplierID, userID uuid.UUID) error

	// UnlinkUser removes a user association from a supplier
	UnlinkUser(ctx context.Context, supplierID, userID uuid.UUID) error
}

// StockLocationRepository defines the interface for stock location persistence
type StockLocationRepository interface {
	// FindByID finds a stock location by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockLocation, error)

	// FindBySupplier finds all stock locations belonging to a supplier
	FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]StockLocation, error)

	// FindAll finds all stock locations matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]StockLocation, error)

	// Save creates or updates a stock location
	Save(ctx context.Context, loc *StockLocation) error

	// Delete removes a stock location
	Delete(ctx context.Context, id uuid.UUID) error

	// Count counts stock locations matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
