package supplier

import (
	"time"

	"github.com/dropship/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockLocation is a warehouse a supplier ships drop-ship orders from.
// Every supplier gets one provisioned automatically on onboarding.
type StockLocation struct {
	shared.BaseAggregateRoot
	SupplierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(200);not null"`
	Active        bool      `gorm:"not null;default:true"`
	Address1      string    `gorm:"type:varchar(200)"`
	Address2      string    `gorm:"type:varchar(200)"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	Zipcode       string    `gorm:"type:varchar(20)"`
	Country       string    `gorm:"type:varchar(100)"`
	Phone         string    `gorm:"type:varchar(50)"`
	Backorderable bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (StockLocation) TableName() string {
	return "stock_locations"
}

// NewStockLocation creates a new stock location for a supplier
func NewStockLocation(supplierID uuid.UUID, name string) (*StockLocation, error) {
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Stock location requires a supplier")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Stock location name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Stock location name cannot exceed 200 characters")
	}

	loc := &StockLocation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SupplierID:        supplierID,
		Name:              name,
		Active:            true,
	}

	loc.AddDomainEvent(NewStockLocationCreatedEvent(loc))

	return loc, nil
}

// CopyAddress fills the location's shipping origin from a supplier address
func (l *StockLocation) CopyAddress(addr *Address) {
	if addr == nil {
		return
	}
	l.Address1 = addr.Address1
	l.Address2 = addr.Address2
	l.City = addr.City
	l.State = addr.State
	l.Zipcode = addr.Zipcode
	l.Country = addr.Country
	l.Phone = addr.Phone
	l.UpdatedAt = time.Now()
}

// Rename changes the stock location name
func (l *StockLocation) Rename(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Stock location name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Stock location name cannot exceed 200 characters")
	}

	l.Name = name
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// Activate enables shipping from this location
func (l *StockLocation) Activate() error {
	if l.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Stock location is already active")
	}

	l.Active = true
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// Deactivate disables shipping from this location
func (l *StockLocation) Deactivate() error {
	if !l.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Stock location is already inactive")
	}

	l.Active = false
	l.UpdatedAt = time.Now()
	l.IncrementVersion()

	return nil
}

// SetBackorderable controls whether out-of-stock items can still be ordered
func (l *StockLocation) SetBackorderable(backorderable bool) {
	l.Backorderable = backorderable
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// Aggregate type constant for StockLocation
const AggregateTypeStockLocation = "StockLocation"

// Event type constants for StockLocation
const (
	EventTypeStockLocationCreated = "StockLocationCreated"
)

// StockLocationCreatedEvent is published when a stock location is provisioned
type StockLocationCreatedEvent struct {
	shared.BaseDomainEvent
	StockLocationID uuid.UUID `json:"stock_location_id"`
	SupplierID      uuid.UUID `json:"supplier_id"`
	Name            string    `json:"name"`
}

// NewStockLocationCreatedEvent creates a new StockLocationCreatedEvent
func NewStockLocationCreatedEvent(l *StockLocation) *StockLocationCreatedEvent {
	return &StockLocationCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockLocationCreated, AggregateTypeStockLocation, l.ID),
		StockLocationID: l.ID,
		SupplierID:      l.SupplierID,
		Name:            l.Name,
	}
}
