package config

import (
	"github.com/shopspring/decimal"
)

// DropShipSettings adapts DropShipConfig to the supplier.Settings
// interface consumed by the application layer.
type DropShipSettings struct {
	cfg DropShipConfig
}

// NewDropShipSettings creates a settings adapter from loaded config
func NewDropShipSettings(cfg DropShipConfig) *DropShipSettings {
	return &DropShipSettings{cfg: cfg}
}

// SendSupplierEmail reports whether welcome emails go out on onboarding
func (s *DropShipSettings) SendSupplierEmail() bool {
	return s.cfg.SendSupplierEmail
}

// DefaultCommissionFlatRate returns the configured flat-rate default
func (s *DropShipSettings) DefaultCommissionFlatRate() decimal.Decimal {
	return s.cfg.DefaultCommissionFlatRate
}

// DefaultCommissionPercentage returns the configured percentage default
func (s *DropShipSettings) DefaultCommissionPercentage() decimal.Decimal {
	return s.cfg.DefaultCommissionPercentage
}
