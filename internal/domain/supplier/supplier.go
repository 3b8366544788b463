package supplier

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/dropship/backend/internal/domain/identity"
	"github.com/dropship/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MerchantType classifies a supplier by how it is registered
type MerchantType string

const (
	MerchantTypeBusiness   MerchantType = "business"   // Registered business with a tax ID
	MerchantTypeIndividual MerchantType = "individual" // Individual seller without a tax ID
)

// Supplier represents a drop-ship merchant selling through the marketplace.
// It is the aggregate root for supplier-related operations.
type Supplier struct {
	shared.BaseAggregateRoot
	Name                 string          `gorm:"type:varchar(200);not null;uniqueIndex:idx_suppliers_name"`
	Slug                 string          `gorm:"type:varchar(220);not null;uniqueIndex:idx_suppliers_slug"`
	Email                string          `gorm:"type:varchar(200);not null;index"`
	URL                  string          `gorm:"type:varchar(500)"`
	TaxID                string          `gorm:"type:varchar(10)"`
	CommissionFlatRate   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CommissionPercentage decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Active               bool            `gorm:"not null;default:false"`
	AddressID            *uuid.UUID      `gorm:"type:uuid"`
	Address              *Address        `gorm:"foreignKey:AddressID"`
	Users                []identity.User `gorm:"many2many:supplier_users"`
	DeletedAt            *time.Time      `gorm:"index"`
	Notes                string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields.
// Suppliers start inactive; commission rates and the slug are assigned
// afterwards, once the configured defaults and the unique slug have
// been resolved.
func NewSupplier(name, email string) (*Supplier, error) {
	if err := validateSupplierName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	s := &Supplier{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		Name:                 name,
		Email:                email,
		CommissionFlatRate:   decimal.Zero,
		CommissionPercentage: decimal.Zero,
	}

	s.AddDomainEvent(NewSupplierCreatedEvent(s))

	return s, nil
}

// Rename changes the supplier's display name. The slug is left untouched
// so existing storefront links keep working.
func (s *Supplier) Rename(name string) error {
	if err := validateSupplierName(name); err != nil {
		return err
	}

	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierUpdatedEvent(s))

	return nil
}

// SetEmail changes the supplier's contact email
func (s *Supplier) SetEmail(email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	s.Email = email
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetURL normalizes and stores the supplier's storefront URL.
// A bare host like "example.com" gets an http:// scheme prepended
// before validation; a blank URL clears the field.
func (s *Supplier) SetURL(rawURL string) error {
	normalized, err := NormalizeURL(rawURL)
	if err != nil {
		return err
	}

	s.URL = normalized
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetTaxID sets the supplier's tax identification number.
// A blank tax ID is allowed and marks the supplier as an individual merchant.
func (s *Supplier) SetTaxID(taxID string) error {
	if err := validateTaxID(taxID); err != nil {
		return err
	}

	s.TaxID = taxID
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetCommission sets both commission components
func (s *Supplier) SetCommission(flatRate, percentage decimal.Decimal) error {
	if flatRate.IsNegative() {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission flat rate cannot be negative")
	}
	if percentage.IsNegative() {
		return shared.NewDomainError("INVALID_COMMISSION", "Commission percentage cannot be negative")
	}

	s.CommissionFlatRate = flatRate
	s.CommissionPercentage = percentage
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// AssignSlug sets the supplier's URL slug. Uniqueness is the caller's
// responsibility; the aggregate only enforces shape.
func (s *Supplier) AssignSlug(slug string) error {
	if slug == "" {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	if len(slug) > 220 {
		return shared.NewDomainError("INVALID_SLUG", "Slug cannot exceed 220 characters")
	}

	s.Slug = slug
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// SetAddress attaches a mailing address to the supplier
func (s *Supplier) SetAddress(address *Address) {
	s.Address = address
	if address != nil {
		s.AddressID = &address.ID
	} else {
		s.AddressID = nil
	}
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetNotes sets free-form notes about the supplier
func (s *Supplier) SetNotes(notes string) {
	s.Notes = notes
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Activate makes the supplier visible on the marketplace
func (s *Supplier) Activate() error {
	if s.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Supplier is already active")
	}

	s.Active = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierStatusChangedEvent(s, false, true))

	return nil
}

// Deactivate hides the supplier from the marketplace
func (s *Supplier) Deactivate() error {
	if !s.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Supplier is already inactive")
	}

	s.Active = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierStatusChangedEvent(s, true, false))

	return nil
}

// SoftDelete marks the supplier as deleted without removing the row
func (s *Supplier) SoftDelete() error {
	if s.IsDeleted() {
		return shared.NewDomainError("ALREADY_DELETED", "Supplier is already deleted")
	}

	now := time.Now()
	s.DeletedAt = &now
	s.Active = false
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewSupplierDeletedEvent(s))

	return nil
}

// IsDeleted returns true if the supplier has been soft-deleted
func (s *Supplier) IsDeleted() bool {
	return s.DeletedAt != nil
}

// MerchantType derives the merchant classification from tax ID presence
func (s *Supplier) MerchantType() MerchantType {
	if s.TaxID != "" {
		return MerchantTypeBusiness
	}
	return MerchantTypeIndividual
}

// EmailWithName returns the supplier's address in RFC mail format,
// e.g. "Acme Corp <contact@acme.example>"
func (s *Supplier) EmailWithName() string {
	return fmt.Sprintf("%s <%s>", s.Name, s.Email)
}

// HasUsers returns true if at least one marketplace user is linked
func (s *Supplier) HasUsers() bool {
	return len(s.Users) > 0
}

// NormalizeURL prepends an http:// scheme to scheme-less URLs and
// validates the result. A blank input normalizes to the empty string.
func NormalizeURL(rawURL string) (string, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", nil
	}

	if !schemeRegex.MatchString(trimmed) {
		trimmed = "http://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", shared.NewDomainError("INVALID_URL", "Invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", shared.NewDomainError("INVALID_URL", "URL scheme must be http or https")
	}
	if parsed.Host == "" {
		return "", shared.NewDomainError("INVALID_URL", "URL host cannot be empty")
	}
	if len(trimmed) > 500 {
		return "", shared.NewDomainError("INVALID_URL", "URL cannot exceed 500 characters")
	}

	return trimmed, nil
}

// Validation functions

var (
	schemeRegex = regexp.MustCompile(`^https?://`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

func validateSupplierName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot exceed 200 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validateTaxID(taxID string) error {
	if taxID == "" {
		return nil
	}
	if len(taxID) < 4 || len(taxID) > 10 {
		return shared.NewDomainError("INVALID_TAX_ID", "Tax ID must be between 4 and 10 characters")
	}
	return nil
}
