package supplier

import (
	"github.com/dropship/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constant for Supplier
const AggregateTypeSupplier = "Supplier"

// Event type constants for Supplier
const (
	EventTypeSupplierCreated       = "SupplierCreated"
	EventTypeSupplierUpdated       = "SupplierUpdated"
	EventTypeSupplierStatusChanged = "SupplierStatusChanged"
	EventTypeSupplierDeleted       = "SupplierDeleted"
	EventTypeSupplierUserLinked    = "SupplierUserLinked"
)

// SupplierCreatedEvent is published when a new supplier is created
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(s *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, AggregateTypeSupplier, s.ID),
		SupplierID:      s.ID,
		Name:            s.Name,
		Email:           s.Email,
	}
}

// SupplierUpdatedEvent is published when a supplier is updated
type SupplierUpdatedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	Email      string    `json:"email"`
}

// NewSupplierUpdatedEvent creates a new SupplierUpdatedEvent
func NewSupplierUpdatedEvent(s *Supplier) *SupplierUpdatedEvent {
	return &SupplierUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierUpdated, AggregateTypeSupplier, s.ID),
		SupplierID:      s.ID,
		Name:            s.Name,
		Slug:            s.Slug,
		Email:           s.Email,
	}
}

// SupplierStatusChangedEvent is published when a supplier is activated or deactivated
type SupplierStatusChangedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	OldActive  bool      `json:"old_active"`
	NewActive  bool      `json:"new_active"`
}

// NewSupplierStatusChangedEvent creates a new SupplierStatusChangedEvent
func NewSupplierStatusChangedEvent(s *Supplier, oldActive, newActive bool) *SupplierStatusChangedEvent {
	return &SupplierStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierStatusChanged, AggregateTypeSupplier, s.ID),
		SupplierID:      s.ID,
		OldActive:       oldActive,
		NewActive:       newActive,
	}
}

// SupplierDeletedEvent is published when a supplier is soft-deleted
type SupplierDeletedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	Name       string    `json:"name"`
}

// NewSupplierDeletedEvent creates a new SupplierDeletedEvent
func NewSupplierDeletedEvent(s *Supplier) *SupplierDeletedEvent {
	return &SupplierDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierDeleted, AggregateTypeSupplier, s.ID),
		SupplierID:      s.ID,
		Name:            s.Name,
	}
}

// SupplierUserLinkedEvent is published when a marketplace user is linked to a supplier
type SupplierUserLinkedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	UserID     uuid.UUID `json:"user_id"`
}

// NewSupplierUserLinkedEvent creates a new SupplierUserLinkedEvent
func NewSupplierUserLinkedEvent(s *Supplier, userID uuid.UUID) *SupplierUserLinkedEvent {
	return &SupplierUserLinkedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierUserLinked, AggregateTypeSupplier, s.ID),
		SupplierID:      s.ID,
		UserID:          userID,
	}
}
