package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSurchargeTable() *SurchargeTable {
	return NewSurchargeTable(DefaultConfig(), []ItemSurchargeBracket{
		{MinCBM: dec("0"), MaxCBM: dec("3"), BaseAllowance: 5, ExtraAllowed: 10, PerItemFee: dec("8")},
		{MinCBM: dec("3"), MaxCBM: dec("10"), BaseAllowance: 10, ExtraAllowed: 20, PerItemFee: dec("6")},
	})
}

func TestSupplierSurcharge(t *testing.T) {
	table := testSurchargeTable()

	cases := []struct {
		suppliers int
		want      string
	}{
		{1, "0"},
		{3, "0"},  // at the threshold: no overage
		{4, "50"}, // one extra supplier
		{5, "100"},
	}

	for _, tc := range cases {
		got := table.SupplierSurcharge(tc.suppliers)
		assert.Equal(t, tc.want, got.String(), "suppliers=%d", tc.suppliers)
	}
}

func TestItemSurcharge(t *testing.T) {
	table := testSurchargeTable()

	cases := []struct {
		name  string
		cbm   string
		items int
		want  string
	}{
		{"within allowance", "1", 5, "0"},
		{"one billable extra", "1", 6, "8"},
		{"capped at extra allowance", "1", 40, "80"}, // 35 extra, only 10 billed
		{"second bracket fee", "4", 12, "12"},
		{"outside all brackets yields zero", "50", 100, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := table.ItemSurcharge(dec(tc.cbm), tc.items)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// Adjacent brackets share a bound: the bound itself must resolve to exactly
// one of them (the upper bracket, since MaxCBM is exclusive).
func TestItemSurchargeBracketBoundaryContinuity(t *testing.T) {
	table := testSurchargeTable()

	// 20 items: first bracket bills min(15,10)*8=80, second min(10,20)*6=60.
	justBelow := table.ItemSurcharge(dec("2.999"), 20)
	atBound := table.ItemSurcharge(dec("3"), 20)

	assert.Equal(t, "80", justBelow.String())
	assert.Equal(t, "60", atBound.String())
}
