package supplier

import (
	"context"

	"github.com/shopspring/decimal"
)

// Settings exposes the marketplace's drop-ship configuration to the
// supplier lifecycle. Implementations live in infrastructure.
type Settings interface {
	// SendSupplierEmail reports whether welcome emails go out on onboarding
	SendSupplierEmail() bool

	// DefaultCommissionFlatRate is applied when a supplier is created
	// without an explicit flat rate
	DefaultCommissionFlatRate() decimal.Decimal

	// DefaultCommissionPercentage is applied when a supplier is created
	// without an explicit percentage
	DefaultCommissionPercentage() decimal.Decimal
}

// WelcomeMailer delivers the onboarding email to a freshly created supplier
type WelcomeMailer interface {
	SendWelcome(ctx context.Context, s *Supplier) error
}
