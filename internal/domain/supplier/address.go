package supplier

import (
	"time"

	"github.com/dropship/backend/internal/domain/shared"
)

// Address is a supplier mailing address. It lives inside the supplier
// aggregate boundary and has no repository of its own.
type Address struct {
	shared.BaseEntity
	Address1 string `gorm:"type:varchar(200);not null"`
	Address2 string `gorm:"type:varchar(200)"`
	City     string `gorm:"type:varchar(100);not null"`
	State    string `gorm:"type:varchar(100)"`
	Zipcode  string `gorm:"type:varchar(20)"`
	Country  string `gorm:"type:varchar(100);not null"`
	Phone    string `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "supplier_addresses"
}

// NewAddress creates a new supplier address
func NewAddress(address1, city, country string) (*Address, error) {
	if address1 == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address line cannot be empty")
	}
	if city == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "City cannot be empty")
	}
	if country == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Country cannot be empty")
	}

	return &Address{
		BaseEntity: shared.NewBaseEntity(),
		Address1:   address1,
		City:       city,
		Country:    country,
	}, nil
}

// SetState sets the state or province
func (a *Address) SetState(state string) {
	a.State = state
	a.UpdatedAt = time.Now()
}

// SetZipcode sets the postal code
func (a *Address) SetZipcode(zipcode string) error {
	if len(zipcode) > 20 {
		return shared.NewDomainError("INVALID_ADDRESS", "Zipcode cannot exceed 20 characters")
	}
	a.Zipcode = zipcode
	a.UpdatedAt = time.Now()
	return nil
}

// SetPhone sets the contact phone number
func (a *Address) SetPhone(phone string) error {
	if len(phone) > 50 {
		return shared.NewDomainError("INVALID_ADDRESS", "Phone cannot exceed 50 characters")
	}
	a.Phone = phone
	a.UpdatedAt = time.Now()
	return nil
}
