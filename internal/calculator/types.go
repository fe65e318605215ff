package calculator

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ClientCategory enum constants
const (
	CategoryNew       = "NEW"
	CategoryReturning = "RETURNING"
	CategoryPartner   = "PARTNER"
)

// DefaultCategory is used when an unknown category reaches the resolver.
// Categorization is advisory for pricing, not a hard gate.
const DefaultCategory = CategoryNew

// TariffMode enum constants
const (
	TariffFlat      = "FLAT"       // value is an absolute fee for the whole shipment
	TariffPerVolume = "PER_VOLUME" // value is a per-CBM rate
)

// Validation errors returned by Engine.Calculate
var (
	ErrNoSuppliers = errors.New("shipment has no suppliers")
	ErrNoProducts  = errors.New("shipment has no products")
	ErrZeroFOB     = errors.New("shipment total FOB is zero")
)

// Tariff is the resolved base service tariff for a shipment.
type Tariff struct {
	Mode  string
	Value decimal.Decimal
}

// Amount returns the shipment-level tariff amount for the given total CBM.
func (t Tariff) Amount(totalCBM decimal.Decimal) decimal.Decimal {
	if t.Mode == TariffPerVolume {
		return t.Value.Mul(totalCBM)
	}
	return t.Value
}

// Product is a single line item within a supplier. Immutable once submitted
// for calculation; identified by its position within supplier and shipment.
type Product struct {
	Name           string
	UnitPrice      decimal.Decimal // commercial unit price
	UnitValuation  decimal.Decimal // customs-assessed unit value
	Quantity       int64
	AdValoremRate  decimal.Decimal  // fraction
	AntidumpingFee decimal.Decimal  // flat per-unit duty
	PerceptionRate *decimal.Decimal // fraction; nil means the configured default
}

// Supplier is one consignor within a shipment.
type Supplier struct {
	Name     string
	Volume   decimal.Decimal // CBM
	Weight   decimal.Decimal // kg
	Boxes    int
	Products []Product
}

// Shipment is the unit of calculation: the full input to the engine.
type Shipment struct {
	ClientCategory string
	TotalCBM       decimal.Decimal
	ExchangeRate   decimal.Decimal
	Discount       decimal.Decimal
	Tariff         Tariff
	Suppliers      []Supplier
}

// ItemCount returns the number of product lines across all suppliers.
func (s Shipment) ItemCount() int {
	n := 0
	for _, sup := range s.Suppliers {
		n += len(sup.Products)
	}
	return n
}

// LineBreakdown is the fully-computed cost breakdown for one product line,
// in the same order the cascade produces its values.
type LineBreakdown struct {
	Supplier string
	Name     string
	Quantity int64

	Share decimal.Decimal // FOB / total FOB, reused for every allocation

	FOB      decimal.Decimal
	FOBValor decimal.Decimal
	Freight  decimal.Decimal // allocated international freight
	Insurance decimal.Decimal
	CFR      decimal.Decimal
	CFRValor decimal.Decimal
	CIF      decimal.Decimal
	CIFValor decimal.Decimal

	AdValorem       decimal.Decimal
	GeneralSalesTax decimal.Decimal // IGV
	MunicipalTax    decimal.Decimal // IPM
	Perception      decimal.Decimal
	Antidumping     decimal.Decimal
	TotalDuties     decimal.Decimal

	Destination   decimal.Decimal // allocated destination-service cost
	TotalCost     decimal.Decimal
	UnitCost      decimal.Decimal
	UnitCostLocal decimal.Decimal // unit cost converted at the exchange rate
}

// ShipmentTotals is derived solely from the per-line breakdowns plus the
// shipment-level charges; it is never independently mutated.
type ShipmentTotals struct {
	FOB          decimal.Decimal
	Duties       decimal.Decimal
	Freight      decimal.Decimal // F
	Insurance    decimal.Decimal // I
	Destination  decimal.Decimal // D (net of discount, plus extra charges)
	ExtraCharges decimal.Decimal
	Discount     decimal.Decimal
	Logistics    decimal.Decimal // Freight + Destination
	GrandTotal   decimal.Decimal
}

// Result is the engine output handed to the calling layer.
type Result struct {
	Lines  []LineBreakdown
	Totals ShipmentTotals
}
