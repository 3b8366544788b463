package persistence

import (
	"context"
	"errors"

	"github.com/dropship/backend/internal/domain/shared"
	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockLocationRepository implements StockLocationRepository using GORM
type GormStockLocationRepository struct {
	db *gorm.DB
}

// NewGormStockLocationRepository creates a new GormStockLocationRepository
func NewGormStockLocationRepository(db *gorm.DB) *GormStockLocationRepository {
	return &GormStockLocationRepository{db: db}
}

// FindByID finds a stock location by its ID
func (r *GormStockLocationRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.StockLocation, error) {
	var loc supplier.StockLocation
	if err := r.db.WithContext(ctx).First(&loc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &loc, nil
}

// FindBySupplier finds all stock locations belonging to a supplier
func (r *GormStockLocationRepository) FindBySupplier(ctx context.Context, supplierID uuid.UUID) ([]supplier.StockLocation, error) {
	var locations []supplier.StockLocation
	if err := r.db.WithContext(ctx).
		Where("supplier_id = ?", supplierID).
		Order("created_at ASC").
		Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindAll finds all stock locations matching the filter
func (r *GormStockLocationRepository) FindAll(ctx context.Context, filter shared.Filter) ([]supplier.StockLocation, error) {
	var locations []supplier.StockLocation
	query := r.applyFilter(r.db.WithContext(ctx).Model(&supplier.StockLocation{}), filter)

	if err := query.Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// Save creates or updates a stock location
func (r *GormStockLocationRepository) Save(ctx context.Context, loc *supplier.StockLocation) error {
	return r.db.WithContext(ctx).Save(loc).Error
}

// Delete removes a stock location
func (r *GormStockLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&supplier.StockLocation{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stock locations matching the filter
func (r *GormStockLocationRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&supplier.StockLocation{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormStockLocationRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, StockLocationSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	return query
}

func (r *GormStockLocationRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR city ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "country":
			query = query.Where("country = ?", value)
		case "backorderable":
			query = query.Where("backorderable = ?", value)
		}
	}

	return query
}
