package calculator

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// TariffBracket is one row of the base-tariff lookup table: a CBM range for
// a client category. MaxCBM is exclusive so adjacent brackets never overlap.
type TariffBracket struct {
	Category string
	MinCBM   decimal.Decimal // inclusive
	MaxCBM   decimal.Decimal // exclusive
	Mode     string          // FLAT or PER_VOLUME
	Value    decimal.Decimal
}

// TariffTable resolves (client category, total CBM) to a base tariff.
// Out-of-range CBM clamps to the bracket with the highest upper bound, so
// every shipment above the configured tiers is priced as the top tier.
// This fallback is intentionally different from the item-surcharge table,
// which yields zero outside its brackets.
type TariffTable struct {
	brackets map[string][]TariffBracket // per category, sorted by MinCBM
}

// NewTariffTable builds a table from bracket rows, grouping and sorting them
// per category.
func NewTariffTable(rows []TariffBracket) *TariffTable {
	byCategory := make(map[string][]TariffBracket)
	for _, row := range rows {
		byCategory[row.Category] = append(byCategory[row.Category], row)
	}
	for cat := range byCategory {
		sort.Slice(byCategory[cat], func(i, j int) bool {
			return byCategory[cat][i].MinCBM.LessThan(byCategory[cat][j].MinCBM)
		})
	}
	return &TariffTable{brackets: byCategory}
}

// Resolve returns the tariff for the bracket containing totalCBM. An unknown
// category falls back to DefaultCategory; a CBM above all upper bounds falls
// back to the highest bracket. An empty bracket list is an error: a silent
// zero tariff would under-price the shipment.
func (t *TariffTable) Resolve(category string, totalCBM decimal.Decimal) (Tariff, error) {
	brackets, ok := t.brackets[category]
	if !ok || len(brackets) == 0 {
		category = DefaultCategory
		brackets = t.brackets[category]
	}
	if len(brackets) == 0 {
		return Tariff{}, fmt.Errorf("no tariff brackets configured for category %q", category)
	}

	for _, b := range brackets {
		if totalCBM.GreaterThanOrEqual(b.MinCBM) && totalCBM.LessThan(b.MaxCBM) {
			return Tariff{Mode: b.Mode, Value: b.Value}, nil
		}
	}

	// Above every upper bound: clamp to the top tier.
	top := brackets[len(brackets)-1]
	return Tariff{Mode: top.Mode, Value: top.Value}, nil
}
