package supplier

import (
	"context"

	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/google/uuid"
)

// StockLocationService manages supplier shipping locations beyond the
// default one provisioned at onboarding.
type StockLocationService struct {
	locationRepo supplier.StockLocationRepository
	supplierRepo supplier.SupplierRepository
}

// NewStockLocationService creates a new StockLocationService
func NewStockLocationService(
	locationRepo supplier.StockLocationRepository,
	supplierRepo supplier.SupplierRepository,
) *StockLocationService {
	return &StockLocationService{
		locationRepo: locationRepo,
		supplierRepo: supplierRepo,
	}
}

// Create adds a stock location to a supplier
func (s *StockLocationService) Create(ctx context.Context, supplierID uuid.UUID, req CreateStockLocationRequest) (*StockLocationResponse, error) {
	sup, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	loc, err := supplier.NewStockLocation(sup.ID, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Address != nil {
		addr, err := buildAddress(req.Address)
		if err != nil {
			return nil, err
		}
		loc.CopyAddress(addr)
	}

	if err := s.locationRepo.Save(ctx, loc); err != nil {
		return nil, err
	}

	response := ToStockLocationResponse(loc)
	return &response, nil
}

// GetByID retrieves a stock location by ID
func (s *StockLocationService) GetByID(ctx context.Context, locationID uuid.UUID) (*StockLocationResponse, error) {
	loc, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	response := ToStockLocationResponse(loc)
	return &response, nil
}

// ListBySupplier retrieves all stock locations for a supplier
func (s *StockLocationService) ListBySupplier(ctx context.Context, supplierID uuid.UUID) ([]StockLocationResponse, error) {
	locations, err := s.locationRepo.FindBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	return ToStockLocationResponses(locations), nil
}

// Update updates a stock location
func (s *StockLocationService) Update(ctx context.Context, locationID uuid.UUID, req UpdateStockLocationRequest) (*StockLocationResponse, error) {
	loc, err := s.locationRepo.FindByID(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := loc.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Active != nil && *req.Active != loc.Active {
		if *req.Active {
			err = loc.Activate()
		} else {
			err = loc.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if req.Backorderable != nil {
		loc.SetBackorderable(*req.Backorderable)
	}

	if err := s.locationRepo.Save(ctx, loc); err != nil {
		return nil, err
	}

	response := ToStockLocationResponse(loc)
	return &response, nil
}

// Delete removes a stock location
func (s *StockLocationService) Delete(ctx context.Context, locationID uuid.UUID) error {
	if _, err := s.locationRepo.FindByID(ctx, locationID); err != nil {
		return err
	}

	return s.locationRepo.Delete(ctx, locationID)
}
