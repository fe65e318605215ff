package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ItemSurchargeBracket is one row of the item-overage table: for shipments
// whose total CBM falls in [MinCBM, MaxCBM), BaseAllowance items are covered
// by the tariff, up to ExtraAllowed more are billed at PerItemFee each.
type ItemSurchargeBracket struct {
	MinCBM        decimal.Decimal // inclusive
	MaxCBM        decimal.Decimal // exclusive
	BaseAllowance int
	ExtraAllowed  int
	PerItemFee    decimal.Decimal
}

// SurchargeTable computes the extra charges for supplier-count and
// item-count overages.
type SurchargeTable struct {
	cfg      Config
	brackets []ItemSurchargeBracket // sorted by MinCBM
}

func NewSurchargeTable(cfg Config, rows []ItemSurchargeBracket) *SurchargeTable {
	brackets := make([]ItemSurchargeBracket, len(rows))
	copy(brackets, rows)
	sort.Slice(brackets, func(i, j int) bool {
		return brackets[i].MinCBM.LessThan(brackets[j].MinCBM)
	})
	return &SurchargeTable{cfg: cfg, brackets: brackets}
}

// SupplierSurcharge bills every supplier above the configured threshold.
func (t *SurchargeTable) SupplierSurcharge(supplierCount int) decimal.Decimal {
	extra := supplierCount - t.cfg.SupplierThreshold
	if extra <= 0 {
		return decimal.Zero
	}
	return t.cfg.PerSupplierFee.Mul(decimal.NewFromInt(int64(extra)))
}

// ItemSurcharge bills product lines above the bracket's base allowance,
// capped at the bracket's extra allowance. A CBM outside every bracket
// yields zero; there is no extrapolation beyond the configured tiers. This is the
// opposite of TariffTable's clamp-to-top fallback and must stay that way.
func (t *SurchargeTable) ItemSurcharge(totalCBM decimal.Decimal, itemCount int) decimal.Decimal {
	for _, b := range t.brackets {
		if totalCBM.GreaterThanOrEqual(b.MinCBM) && totalCBM.LessThan(b.MaxCBM) {
			extra := itemCount - b.BaseAllowance
			if extra <= 0 {
				return decimal.Zero
			}
			if extra > b.ExtraAllowed {
				extra = b.ExtraAllowed
			}
			return b.PerItemFee.Mul(decimal.NewFromInt(int64(extra)))
		}
	}
	return decimal.Zero
}

// ExtraCharges returns the combined surcharge figure used by the aggregator.
func (t *SurchargeTable) ExtraCharges(s Shipment) decimal.Decimal {
	return t.SupplierSurcharge(len(s.Suppliers)).Add(t.ItemSurcharge(s.TotalCBM, s.ItemCount()))
}
