package calculator

import "github.com/shopspring/decimal"

// Config holds the business constants the engine depends on. Values live in
// configuration (or the tariffs admin module), never in the formulas
// themselves, so a rate change does not require a code change.
type Config struct {
	// Supplier overage surcharge
	SupplierThreshold int             // suppliers included in the base tariff
	PerSupplierFee    decimal.Decimal // fee per supplier above the threshold

	// Customs tax rates (fractions)
	GeneralSalesTaxRate   decimal.Decimal // IGV
	MunicipalTaxRate      decimal.Decimal // IPM
	DefaultPerceptionRate decimal.Decimal // applied when a product carries none

	// Flat insurance: InsuranceHigh if total FOB >= InsuranceBreakpoint,
	// otherwise InsuranceLow. Threshold uses commercial FOB.
	InsuranceBreakpoint decimal.Decimal
	InsuranceLow        decimal.Decimal
	InsuranceHigh       decimal.Decimal

	// Split of the base tariff amount between international freight and
	// destination service
	FreightShare     decimal.Decimal
	DestinationShare decimal.Decimal
}

// DefaultConfig returns the standard production constants.
func DefaultConfig() Config {
	return Config{
		SupplierThreshold:     3,
		PerSupplierFee:        decimal.NewFromInt(50),
		GeneralSalesTaxRate:   decimal.NewFromFloat(0.16),
		MunicipalTaxRate:      decimal.NewFromFloat(0.02),
		DefaultPerceptionRate: decimal.NewFromFloat(0.035),
		InsuranceBreakpoint:   decimal.NewFromInt(5000),
		InsuranceLow:          decimal.NewFromInt(50),
		InsuranceHigh:         decimal.NewFromInt(100),
		FreightShare:          decimal.NewFromFloat(0.6),
		DestinationShare:      decimal.NewFromFloat(0.4),
	}
}
