package supplier

import (
	"time"

	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Supplier DTOs
// =============================================================================

// CreateSupplierRequest represents a request to onboard a new supplier.
// Commission fields are pointers: nil means "not supplied, use the configured
// default", while an explicit zero is preserved as-is.
type CreateSupplierRequest struct {
	Name                 string           `json:"name" binding:"required,min=1,max=200"`
	Email                string           `json:"email" binding:"required,email,max=200"`
	URL                  string           `json:"url" binding:"max=500"`
	MerchantType         string           `json:"merchant_type" binding:"omitempty,oneof=business individual"`
	TaxID                string           `json:"tax_id" binding:"max=10"`
	CommissionFlatRate   *decimal.Decimal `json:"commission_flat_rate"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
	Active               *bool            `json:"active"`
	Notes                string           `json:"notes"`
	Address              *AddressRequest  `json:"address"`
	UserIDs              []uuid.UUID      `json:"user_ids"`
}

// UpdateSupplierRequest represents a request to update a supplier.
// Nil fields are left unchanged.
type UpdateSupplierRequest struct {
	Name                 *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Email                *string          `json:"email" binding:"omitempty,email,max=200"`
	URL                  *string          `json:"url" binding:"omitempty,max=500"`
	TaxID                *string          `json:"tax_id" binding:"omitempty,max=10"`
	CommissionFlatRate   *decimal.Decimal `json:"commission_flat_rate"`
	CommissionPercentage *decimal.Decimal `json:"commission_percentage"`
	Active               *bool            `json:"active"`
	Notes                *string          `json:"notes"`
	Address              *AddressRequest  `json:"address"`
}

// AddressRequest represents a supplier mailing address in requests
type AddressRequest struct {
	Address1 string `json:"address1" binding:"required,max=200"`
	Address2 string `json:"address2" binding:"max=200"`
	City     string `json:"city" binding:"required,max=100"`
	State    string `json:"state" binding:"max=100"`
	Zipcode  string `json:"zipcode" binding:"max=20"`
	Country  string `json:"country" binding:"required,max=100"`
	Phone    string `json:"phone" binding:"max=50"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Slug                 string           `json:"slug"`
	Email                string           `json:"email"`
	EmailWithName        string           `json:"email_with_name"`
	URL                  string           `json:"url,omitempty"`
	TaxID                string           `json:"tax_id,omitempty"`
	MerchantType         string           `json:"merchant_type"`
	CommissionFlatRate   decimal.Decimal  `json:"commission_flat_rate"`
	CommissionPercentage decimal.Decimal  `json:"commission_percentage"`
	Active               bool             `json:"active"`
	Notes                string           `json:"notes,omitempty"`
	Address              *AddressResponse `json:"address,omitempty"`
	UserIDs              []uuid.UUID      `json:"user_ids"`
	DeletedAt            *time.Time       `json:"deleted_at,omitempty"`
	CreatedAt            time.Time        `json:"created_at"`
	UpdatedAt            time.Time        `json:"updated_at"`
	Version              int              `json:"version"`
}

// AddressResponse represents a supplier mailing address in responses
type AddressResponse struct {
	ID       uuid.UUID `json:"id"`
	Address1 string    `json:"address1"`
	Address2 string    `json:"address2,omitempty"`
	City     string    `json:"city"`
	State    string    `json:"state,omitempty"`
	Zipcode  string    `json:"zipcode,omitempty"`
	Country  string    `json:"country"`
	Phone    string    `json:"phone,omitempty"`
}

// SupplierListResponse represents a list item for suppliers
type SupplierListResponse struct {
	ID                   uuid.UUID       `json:"id"`
	Name                 string          `json:"name"`
	Slug                 string          `json:"slug"`
	Email                string          `json:"email"`
	MerchantType         string          `json:"merchant_type"`
	CommissionFlatRate   decimal.Decimal `json:"commission_flat_rate"`
	CommissionPercentage decimal.Decimal `json:"commission_percentage"`
	Active               bool            `json:"active"`
	CreatedAt            time.Time       `json:"created_at"`
}

// SupplierListFilter represents filter options for supplier list
type SupplierListFilter struct {
	Search       string `form:"search"`
	Active       *bool  `form:"active"`
	MerchantType string `form:"merchant_type" binding:"omitempty,oneof=business individual"`
	Page         int    `form:"page" binding:"min=0"`
	PageSize     int    `form:"page_size" binding:"min=0,max=100"`
	OrderBy      string `form:"order_by"`
	OrderDir     string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// LinkUserRequest represents a request to link a marketplace user to a supplier
type LinkUserRequest struct {
	UserID uuid.UUID `json:"user_id" binding:"required"`
}

// ToSupplierResponse converts a domain Supplier to SupplierResponse
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	resp := SupplierResponse{
		ID:                   s.ID,
		Name:                 s.Name,
		Slug:                 s.Slug,
		Email:                s.Email,
		EmailWithName:        s.EmailWithName(),
		URL:                  s.URL,
		TaxID:                s.TaxID,
		MerchantType:         string(s.MerchantType()),
		CommissionFlatRate:   s.CommissionFlatRate,
		CommissionPercentage: s.CommissionPercentage,
		Active:               s.Active,
		Notes:                s.Notes,
		DeletedAt:            s.DeletedAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
		Version:              s.Version,
	}

	if s.Address != nil {
		resp.Address = &AddressResponse{
			ID:       s.Address.ID,
			Address1: s.Address.Address1,
			Address2: s.Address.Address2,
			City:     s.Address.City,
			State:    s.Address.State,
			Zipcode:  s.Address.Zipcode,
			Country:  s.Address.Country,
			Phone:    s.Address.Phone,
		}
	}

	resp.UserIDs = make([]uuid.UUID, 0, len(s.Users))
	for _, u := range s.Users {
		resp.UserIDs = append(resp.UserIDs, u.ID)
	}

	return resp
}

// ToSupplierListResponses converts domain Suppliers to list responses
func ToSupplierListResponses(suppliers []supplier.Supplier) []SupplierListResponse {
	responses := make([]SupplierListResponse, 0, len(suppliers))
	for i := range suppliers {
		s := &suppliers[i]
		responses = append(responses, SupplierListResponse{
			ID:                   s.ID,
			Name:                 s.Name,
			Slug:                 s.Slug,
			Email:                s.Email,
			MerchantType:         string(s.MerchantType()),
			CommissionFlatRate:   s.CommissionFlatRate,
			CommissionPercentage: s.CommissionPercentage,
			Active:               s.Active,
			CreatedAt:            s.CreatedAt,
		})
	}
	return responses
}

// =============================================================================
// Stock location DTOs
// =============================================================================

// CreateStockLocationRequest represents a request to add a stock location
type CreateStockLocationRequest struct {
	Name    string          `json:"name" binding:"required,min=1,max=200"`
	Address *AddressRequest `json:"address"`
}

// UpdateStockLocationRequest represents a request to update a stock location
type UpdateStockLocationRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	Active        *bool   `json:"active"`
	Backorderable *bool   `json:"backorderable"`
}

// StockLocationResponse represents a stock location in API responses
type StockLocationResponse struct {
	ID            uuid.UUID `json:"id"`
	SupplierID    uuid.UUID `json:"supplier_id"`
	Name          string    `json:"name"`
	Active        bool      `json:"active"`
	Address1      string    `json:"address1,omitempty"`
	Address2      string    `json:"address2,omitempty"`
	City          string    `json:"city,omitempty"`
	State         string    `json:"state,omitempty"`
	Zipcode       string    `json:"zipcode,omitempty"`
	Country       string    `json:"country,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Backorderable bool      `json:"backorderable"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ToStockLocationResponse converts a domain StockLocation to StockLocationResponse
func ToStockLocationResponse(l *supplier.StockLocation) StockLocationResponse {
	return StockLocationResponse{
		ID:            l.ID,
		SupplierID:    l.SupplierID,
		Name:          l.Name,
		Active:        l.Active,
		Address1:      l.Address1,
		Address2:      l.Address2,
		City:          l.City,
		State:         l.State,
		Zipcode:       l.Zipcode,
		Country:       l.Country,
		Phone:         l.Phone,
		Backorderable: l.Backorderable,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
}

// ToStockLocationResponses converts domain StockLocations to responses
func ToStockLocationResponses(locations []supplier.StockLocation) []StockLocationResponse {
	responses := make([]StockLocationResponse, 0, len(locations))
	for i := range locations {
		responses = append(responses, ToStockLocationResponse(&locations[i]))
	}
	return responses
}
