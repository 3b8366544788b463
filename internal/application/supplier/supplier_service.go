package supplier

import (
	"context"
	"errors"
	"fmt"

	"github.com/dropship/backend/internal/domain/identity"
	"github.com/dropship/backend/internal/domain/shared"
	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

// SupplierService drives the supplier lifecycle: onboarding with its
// side effects, updates, activation and soft deletion.
type SupplierService struct {
	supplierRepo supplier.SupplierRepository
	locationRepo supplier.StockLocationRepository
	userRepo     identity.UserRepository
	settings     supplier.Settings
	mailer       supplier.WelcomeMailer
	logger       *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(
	supplierRepo supplier.SupplierRepository,
	locationRepo supplier.StockLocationRepository,
	userRepo identity.UserRepository,
	settings supplier.Settings,
	mailer supplier.WelcomeMailer,
	logger *zap.Logger,
) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		settings:     settings,
		mailer:       mailer,
		logger:       logger,
	}
}

// Create onboards a new supplier. After the supplier is persisted it
// links a marketplace user, provisions a default stock location, and
// sends the welcome email when that is enabled. A welcome delivery
// failure surfaces as DELIVERY_FAILED but the supplier stays created.
func (s *SupplierService) Create(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	if req.MerchantType == string(supplier.MerchantTypeBusiness) && req.TaxID == "" {
		return nil, shared.NewDomainError("INVALID_TAX_ID", "Tax ID is required for business merchants")
	}

	exists, err := s.supplierRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this name already exists")
	}

	sup, err := supplier.NewSupplier(req.Name, req.Email)
	if err != nil {
		return nil, err
	}

	if req.URL != "" {
		if err := sup.SetURL(req.URL); err != nil {
			return nil, err
		}
	}

	if req.TaxID != "" {
		if err := sup.SetTaxID(req.TaxID); err != nil {
			return nil, err
		}
	}

	// Commission defaults apply only to fields the caller left out;
	// an explicit zero is kept.
	flatRate := s.settings.DefaultCommissionFlatRate()
	if req.CommissionFlatRate != nil {
		flatRate = *req.CommissionFlatRate
	}
	percentage := s.settings.DefaultCommissionPercentage()
	if req.CommissionPercentage != nil {
		percentage = *req.CommissionPercentage
	}
	if err := sup.SetCommission(flatRate, percentage); err != nil {
		return nil, err
	}

	uniqueSlug, err := s.resolveUniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if err := sup.AssignSlug(uniqueSlug); err != nil {
		return nil, err
	}

	// An explicitly active draft is creation state, not a status
	// transition, so the field is set without a status-changed event.
	if req.Active != nil && *req.Active {
		sup.Active = true
	}

	if req.Address != nil {
		addr, err := buildAddress(req.Address)
		if err != nil {
			return nil, err
		}
		sup.SetAddress(addr)
	}

	if req.Notes != "" {
		sup.SetNotes(req.Notes)
	}

	if err := s.supplierRepo.Save(ctx, sup); err != nil {
		return nil, err
	}

	if err := s.linkInitialUsers(ctx, sup, req.UserIDs); err != nil {
		return nil, err
	}

	s.provisionStockLocation(ctx, sup)

	if s.settings.SendSupplierEmail() {
		if err := s.mailer.SendWelcome(ctx, sup); err != nil {
			s.logger.Error("welcome email delivery failed",
				zap.String("supplier_id", sup.ID.String()),
				zap.String("email", sup.Email),
				zap.Error(err))
			return nil, fmt.Errorf("%w: %v", shared.ErrDeliveryFailed, err)
		}
	}

	response := ToSupplierResponse(sup)
	return &response, nil
}

// linkInitialUsers links the explicitly requested users, or falls back
// to auto-linking an existing account whose email matches the supplier.
func (s *SupplierService) linkInitialUsers(ctx context.Context, sup *supplier.Supplier, userIDs []uuid.UUID) error {
	if len(userIDs) > 0 {
		for _, userID := range userIDs {
			user, err := s.userRepo.FindByID(ctx, userID)
			if err != nil {
				return err
			}
			if err := s.supplierRepo.LinkUser(ctx, sup.ID, user.ID); err != nil {
				return err
			}
			sup.Users = append(sup.Users, *user)
			sup.AddDomainEvent(supplier.NewSupplierUserLinkedEvent(sup, user.ID))
		}
		return nil
	}

	user, err := s.userRepo.FindByEmail(ctx, sup.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil
		}
		return err
	}
	if err := s.supplierRepo.LinkUser(ctx, sup.ID, user.ID); err != nil {
		return err
	}
	sup.Users = append(sup.Users, *user)
	sup.AddDomainEvent(supplier.NewSupplierUserLinkedEvent(sup, user.ID))
	return nil
}

// provisionStockLocation creates the supplier's default shipping
// location. Failure here is logged but never rolls back onboarding.
func (s *SupplierService) provisionStockLocation(ctx context.Context, sup *supplier.Supplier) {
	loc, err := supplier.NewStockLocation(sup.ID, sup.Name)
	if err != nil {
		s.logger.Warn("default stock location not provisioned",
			zap.String("supplier_id", sup.ID.String()),
			zap.Error(err))
		return
	}
	loc.CopyAddress(sup.Address)

	if err := s.locationRepo.Save(ctx, loc); err != nil {
		s.logger.Warn("default stock location not provisioned",
			zap.String("supplier_id", sup.ID.String()),
			zap.Error(err))
	}
}

// resolveUniqueSlug derives a slug from the supplier name, suffixing a
// counter until it no longer collides with an existing supplier.
func (s *SupplierService) resolveUniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	if base == "" {
		return "", shared.NewDomainError("INVALID_SLUG", "Supplier name does not produce a usable slug")
	}

	candidate := base
	for i := 2; ; i++ {
		exists, err := s.supplierRepo.ExistsBySlug(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, supplierID uuid.UUID) (*SupplierResponse, error) {
	sup, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(sup)
	return &response, nil
}

// GetBySlug retrieves a supplier by its URL slug
func (s *SupplierService) GetBySlug(ctx context.Context, slugValue string) (*SupplierResponse, error) {
	sup, err := s.supplierRepo.FindBySlug(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	response := ToSupplierResponse(sup)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, filter SupplierListFilter) ([]SupplierListResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]any),
	}

	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}
	if filter.MerchantType != "" {
		domainFilter.Filters["merchant_type"] = filter.MerchantType
	}

	suppliers, err := s.supplierRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSupplierListResponses(suppliers), total, nil
}

// Update updates a supplier. Updates never re-apply commission
// defaults, never fire onboarding side effects, and leave the slug
// untouched so storefront links survive renames.
func (s *SupplierService) Update(ctx context.Context, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	sup, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if sup.IsDeleted() {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot update a deleted supplier")
	}

	if req.Name != nil && *req.Name != sup.Name {
		exists, err := s.supplierRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this name already exists")
		}
		if err := sup.Rename(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Email != nil {
		if err := sup.SetEmail(*req.Email); err != nil {
			return nil, err
		}
	}

	if req.URL != nil {
		if err := sup.SetURL(*req.URL); err != nil {
			return nil, err
		}
	}

	if req.TaxID != nil {
		if err := sup.SetTaxID(*req.TaxID); err != nil {
			return nil, err
		}
	}

	if req.CommissionFlatRate != nil || req.CommissionPercentage != nil {
		flatRate := sup.CommissionFlatRate
		percentage := sup.CommissionPercentage
		if req.CommissionFlatRate != nil {
			flatRate = *req.CommissionFlatRate
		}
		if req.CommissionPercentage != nil {
			percentage = *req.CommissionPercentage
		}
		if err := sup.SetCommission(flatRate, percentage); err != nil {
			return nil, err
		}
	}

	if req.Active != nil && *req.Active != sup.Active {
		if *req.Active {
			err = sup.Activate()
		} else {
			err = sup.Deactivate()
		}
		if err != nil {
			return nil, err
		}
	}

	if req.Notes != nil {
		sup.SetNotes(*req.Notes)
	}

	if req.Address != nil {
		addr, err := buildAddress(req.Address)
		if err != nil {
			return nil, err
		}
		sup.SetAddress(addr)
	}

	if err := s.supplierRepo.Save(ctx, sup); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(sup)
	return &response, nil
}

// Delete soft-deletes a supplier. The row is kept so historical orders
// can still resolve their merchant.
func (s *SupplierService) Delete(ctx context.Context, supplierID uuid.UUID) error {
	sup, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}

	if err := sup.SoftDelete(); err != nil {
		return err
	}

	return s.supplierRepo.Save(ctx, sup)
}

// LinkUser associates an existing marketplace user with a supplier
func (s *SupplierService) LinkUser(ctx context.Context, supplierID, userID uuid.UUID) error {
	sup, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.supplierRepo.LinkUser(ctx, sup.ID, user.ID); err != nil {
		return err
	}

	sup.AddDomainEvent(supplier.NewSupplierUserLinkedEvent(sup, user.ID))
	return nil
}

// UnlinkUser removes a user association from a supplier
func (s *SupplierService) UnlinkUser(ctx context.Context, supplierID, userID uuid.UUID) error {
	sup, err := s.supplierRepo.FindByID(ctx, supplierID)
	if err != nil {
		return err
	}

	return s.supplierRepo.UnlinkUser(ctx, sup.ID, userID)
}

func buildAddress(req *AddressRequest) (*supplier.Address, error) {
	addr, err := supplier.NewAddress(req.Address1, req.City, req.Country)
	if err != nil {
		return nil, err
	}
	addr.Address2 = req.Address2
	addr.SetState(req.State)
	if err := addr.SetZipcode(req.Zipcode); err != nil {
		return nil, err
	}
	if err := addr.SetPhone(req.Phone); err != nil {
		return nil, err
	}
	return addr, nil
}
