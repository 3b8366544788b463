package persistence

import (
	"context"
	"errors"

	"github.com/dropship/backend/internal/domain/identity"
	"github.com/dropship/backend/internal/domain/shared"
	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*supplier.Supplier, error) {
	var s supplier.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Users").
		First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindBySlug finds a supplier by its URL slug
func (r *GormSupplierRepository) FindBySlug(ctx context.Context, slug string) (*supplier.Supplier, error) {
	var s supplier.Supplier
	if err := r.db.WithContext(ctx).
		Preload("Address").
		Preload("Users").
		Where("slug = ?", slug).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// FindAll finds all suppliers matching the filter
func (r *GormSupplierRepository) FindAll(ctx context.Context, filter shared.Filter) ([]supplier.Supplier, error) {
	var suppliers []supplier.Supplier
	query := r.applyFilter(r.db.WithContext(ctx).Model(&supplier.Supplier{}).Preload("Address"), filter)

	if err := query.Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// Save creates or updates a supplier along with its address
func (r *GormSupplierRepository) Save(ctx context.Context, s *supplier.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// Delete removes a supplier row
func (r *GormSupplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&supplier.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts suppliers matching the filter
func (r *GormSupplierRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&supplier.Supplier{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByName checks if a supplier with the given name exists
func (r *GormSupplierRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&supplier.Supplier{}).
		Where("name = ?", name).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsBySlug checks if a supplier with the given slug exists
func (r *GormSupplierRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&supplier.Supplier{}).
		Where("slug = ?", slug).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// LinkUser associates a marketplace user with a supplier
func (r *GormSupplierRepository) LinkUser(ctx context.Context, supplierID, userID uuid.UUID) error {
	var s supplier.Supplier
	s.ID = supplierID
	var u identity.User
	u.ID = userID
	return r.db.WithContext(ctx).Model(&s).Association("Users").Append(&u)
}

// UnlinkUser removes a user association from a supplier
func (r *GormSupplierRepository) UnlinkUser(ctx context.Context, supplierID, userID uuid.UUID) error {
	var s supplier.Supplier
	s.ID = supplierID
	var u identity.User
	u.ID = userID
	return r.db.WithContext(ctx).Model(&s).Association("Users").Delete(&u)
}

func (r *GormSupplierRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderBy := ValidateSortField(filter.OrderBy, SupplierSortFields, "created_at")
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else {
		query = query.Order("name ASC")
	}

	return query
}

func (r *GormSupplierRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ? OR email ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	// Soft-deleted rows are excluded unless explicitly requested
	if include, ok := filter.Filters["include_deleted"]; !ok || include != true {
		query = query.Where("deleted_at IS NULL")
	}

	for key, value := range filter.Filters {
		switch key {
		case "active":
			query = query.Where("active = ?", value)
		case "merchant_type":
			switch value {
			case string(supplier.MerchantTypeBusiness):
				query = query.Where("COALESCE(tax_id, '') <> ''")
			case string(supplier.MerchantTypeIndividual):
				query = query.Where("COALESCE(tax_id, '') = ''")
			}
		case "country":
			query = query.Joins("JOIN supplier_addresses ON supplier_addresses.id = suppliers.address_id").
				Where("supplier_addresses.country = ?", value)
		}
	}

	return query
}
