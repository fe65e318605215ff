package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTariffTable() *TariffTable {
	return NewTariffTable([]TariffBracket{
		{Category: CategoryNew, MinCBM: dec("0"), MaxCBM: dec("1"), Mode: TariffFlat, Value: dec("120")},
		{Category: CategoryNew, MinCBM: dec("1"), MaxCBM: dec("5"), Mode: TariffPerVolume, Value: dec("100")},
		{Category: CategoryNew, MinCBM: dec("5"), MaxCBM: dec("15"), Mode: TariffPerVolume, Value: dec("85")},
		{Category: CategoryPartner, MinCBM: dec("0"), MaxCBM: dec("5"), Mode: TariffPerVolume, Value: dec("70")},
	})
}

func TestTariffResolveContainment(t *testing.T) {
	table := testTariffTable()

	cases := []struct {
		name     string
		category string
		cbm      string
		wantMode string
		wantVal  string
	}{
		{"small shipment flat tier", CategoryNew, "0.5", TariffFlat, "120"},
		{"lower bound inclusive", CategoryNew, "1", TariffPerVolume, "100"},
		{"upper bound goes to next tier", CategoryNew, "5", TariffPerVolume, "85"},
		{"partner category", CategoryPartner, "2", TariffPerVolume, "70"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tariff, err := table.Resolve(tc.category, dec(tc.cbm))
			require.NoError(t, err)
			assert.Equal(t, tc.wantMode, tariff.Mode)
			assert.Equal(t, tc.wantVal, tariff.Value.String())
		})
	}
}

func TestTariffResolveClampsToTopBracket(t *testing.T) {
	// CBM above every configured upper bound prices as the top tier.
	tariff, err := testTariffTable().Resolve(CategoryNew, dec("250"))
	require.NoError(t, err)
	assert.Equal(t, TariffPerVolume, tariff.Mode)
	assert.Equal(t, "85", tariff.Value.String())
}

func TestTariffResolveUnknownCategoryFallsBack(t *testing.T) {
	tariff, err := testTariffTable().Resolve("WHOLESALE", dec("0.5"))
	require.NoError(t, err)
	assert.Equal(t, TariffFlat, tariff.Mode)
	assert.Equal(t, "120", tariff.Value.String())
}

func TestTariffResolveEmptyTableFailsLoudly(t *testing.T) {
	_, err := NewTariffTable(nil).Resolve(CategoryNew, dec("1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tariff brackets")
}

func TestTariffAmountByMode(t *testing.T) {
	flat := Tariff{Mode: TariffFlat, Value: dec("200")}
	assert.Equal(t, "200", flat.Amount(dec("7")).String())

	perVolume := Tariff{Mode: TariffPerVolume, Value: dec("100")}
	assert.Equal(t, "150", perVolume.Amount(dec("1.5")).String())
}
