package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testEngine(cfg Config) *Engine {
	return NewEngine(cfg, NewSurchargeTable(cfg, []ItemSurchargeBracket{
		{MinCBM: dec("0"), MaxCBM: dec("3"), BaseAllowance: 10, ExtraAllowed: 10, PerItemFee: dec("8")},
		{MinCBM: dec("3"), MaxCBM: dec("10"), BaseAllowance: 10, ExtraAllowed: 20, PerItemFee: dec("6")},
	}))
}

// twoLineShipment is scenario A from the pricing workbook: one supplier,
// two products (price 10 x 5 and price 20 x 3), PER_VOLUME tariff 100 over
// 1.5 CBM.
func twoLineShipment() Shipment {
	return Shipment{
		ClientCategory: CategoryNew,
		TotalCBM:       dec("1.5"),
		ExchangeRate:   dec("3.8"),
		Discount:       decimal.Zero,
		Tariff:         Tariff{Mode: TariffPerVolume, Value: dec("100")},
		Suppliers: []Supplier{
			{
				Name:   "Yiwu Trading",
				Volume: dec("1.5"),
				Products: []Product{
					{Name: "mugs", UnitPrice: dec("10"), UnitValuation: dec("10"), Quantity: 5},
					{Name: "plates", UnitPrice: dec("20"), UnitValuation: dec("20"), Quantity: 3},
				},
			},
		},
	}
}

func TestCalculateSharesSumToOne(t *testing.T) {
	res, err := testEngine(DefaultConfig()).Calculate(twoLineShipment())
	require.NoError(t, err)

	sum := decimal.Zero
	for _, l := range res.Lines {
		sum = sum.Add(l.Share)
	}
	diff := sum.Sub(decimal.NewFromInt(1)).Abs()
	assert.True(t, diff.LessThan(dec("0.000000001")), "share sum off by %s", diff)
}

func TestCalculateAllocationsConserveTotals(t *testing.T) {
	res, err := testEngine(DefaultConfig()).Calculate(twoLineShipment())
	require.NoError(t, err)

	freight, insurance, destination := decimal.Zero, decimal.Zero, decimal.Zero
	for _, l := range res.Lines {
		freight = freight.Add(l.Freight)
		insurance = insurance.Add(l.Insurance)
		destination = destination.Add(l.Destination)
	}

	cent := dec("0.01")
	assert.True(t, freight.Sub(res.Totals.Freight).Abs().LessThanOrEqual(cent))
	assert.True(t, insurance.Sub(res.Totals.Insurance).Abs().LessThanOrEqual(cent))
	assert.True(t, destination.Sub(res.Totals.Destination).Abs().LessThanOrEqual(cent))
}

func TestCalculateScenarioA(t *testing.T) {
	// Zero all duty rates so the line total reduces to
	// MAX(CFR, CFR_valor) + destination_line.
	cfg := DefaultConfig()
	cfg.GeneralSalesTaxRate = decimal.Zero
	cfg.MunicipalTaxRate = decimal.Zero
	cfg.DefaultPerceptionRate = decimal.Zero

	res, err := testEngine(cfg).Calculate(twoLineShipment())
	require.NoError(t, err)
	require.Len(t, res.Lines, 2)

	// tariff_amount = 100 * 1.5 = 150; F = 90, D = 60
	assert.Equal(t, "90.00", res.Totals.Freight.StringFixed(2))
	assert.Equal(t, "60.00", res.Totals.Destination.StringFixed(2))
	assert.Equal(t, "110.00", res.Totals.FOB.StringFixed(2))

	line1 := res.Lines[0]
	assert.Equal(t, "0.4545", line1.Share.StringFixed(4))
	// 50 + 0.4545*90 + 0.4545*60 = 118.18
	assert.Equal(t, "118.18", line1.TotalCost.StringFixed(2))
	assert.Equal(t, "0.00", line1.TotalDuties.StringFixed(2))

	line2 := res.Lines[1]
	assert.Equal(t, "0.5455", line2.Share.StringFixed(4))
	assert.Equal(t, "141.82", line2.TotalCost.StringFixed(2))
}

func TestCalculateDutyCascade(t *testing.T) {
	cfg := DefaultConfig()
	perception := dec("0.05")
	s := Shipment{
		ClientCategory: CategoryReturning,
		TotalCBM:       dec("2"),
		ExchangeRate:   dec("3.8"),
		Tariff:         Tariff{Mode: TariffFlat, Value: dec("200")},
		Suppliers: []Supplier{
			{
				Name:   "Guangzhou Imports",
				Volume: dec("2"),
				Products: []Product{
					{
						Name:           "ceramic tiles",
						UnitPrice:      dec("4"),
						UnitValuation:  dec("6"), // assessed above commercial
						Quantity:       1000,
						AdValoremRate:  dec("0.06"),
						AntidumpingFee: dec("0.40"),
						PerceptionRate: &perception,
					},
				},
			},
		},
	}

	res, err := testEngine(cfg).Calculate(s)
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	l := res.Lines[0]

	// Single line: share 1, F = 120, D = 80, I = 50 (FOB 4000 < 5000).
	assert.Equal(t, "4000.00", l.FOB.StringFixed(2))
	assert.Equal(t, "6000.00", l.FOBValor.StringFixed(2))
	assert.Equal(t, "120.00", l.Freight.StringFixed(2))
	assert.Equal(t, "50.00", l.Insurance.StringFixed(2))
	assert.Equal(t, "4120.00", l.CFR.StringFixed(2))
	assert.Equal(t, "6120.00", l.CFRValor.StringFixed(2))
	assert.Equal(t, "4170.00", l.CIF.StringFixed(2))
	assert.Equal(t, "6170.00", l.CIFValor.StringFixed(2))

	// base = MAX(CIF, CIF_valor) = 6170
	// ad_valorem = 6170 * 0.06 = 370.20
	assert.Equal(t, "370.20", l.AdValorem.StringFixed(2))
	// taxable = 6540.20; IGV = 1046.432, IPM = 130.804
	assert.Equal(t, "1046.43", l.GeneralSalesTax.StringFixed(2))
	assert.Equal(t, "130.80", l.MunicipalTax.StringFixed(2))
	// perception = 0.05 * (6540.20 + 1046.432 + 130.804) = 385.8718
	assert.Equal(t, "385.87", l.Perception.StringFixed(2))
	// antidumping = 1000 * 0.40
	assert.Equal(t, "400.00", l.Antidumping.StringFixed(2))
	assert.Equal(t, "1933.31", l.TotalDuties.StringFixed(2))

	// total = MAX(CFR, CFR_valor) + antidumping + duties + destination
	//       = 6120 + 400 + 1933.3078 + 80 = 8533.3078
	assert.Equal(t, "8533.31", l.TotalCost.StringFixed(2))
	assert.Equal(t, "8.5333", l.UnitCost.StringFixed(4))
	assert.Equal(t, "32.4266", l.UnitCostLocal.StringFixed(4))

	assert.Equal(t, res.Totals.GrandTotal.String(), l.TotalCost.String())
}

func TestCalculateSupplierSurchargeFlowsIntoDestination(t *testing.T) {
	// Scenario B: 5 suppliers over a threshold of 3 adds 2 x 50 = 100 to
	// the extra charges and therefore to D.
	s := twoLineShipment()
	for i := 0; i < 4; i++ {
		s.Suppliers = append(s.Suppliers, Supplier{
			Name:   "extra consignor",
			Volume: decimal.Zero,
			Products: []Product{
				{Name: "filler", UnitPrice: dec("1"), UnitValuation: dec("1"), Quantity: 1},
			},
		})
	}

	res, err := testEngine(DefaultConfig()).Calculate(s)
	require.NoError(t, err)

	assert.Equal(t, "100.00", res.Totals.ExtraCharges.StringFixed(2))
	// D = 0.4*150 + 100 = 160
	assert.Equal(t, "160.00", res.Totals.Destination.StringFixed(2))
}

func TestCalculateDiscountMayDriveDestinationNegative(t *testing.T) {
	s := twoLineShipment()
	s.Discount = dec("100")

	res, err := testEngine(DefaultConfig()).Calculate(s)
	require.NoError(t, err)

	// D = 60 - 100 = -40: a net credit, not clamped.
	assert.Equal(t, "-40.00", res.Totals.Destination.StringFixed(2))
}

func TestCalculateInsuranceBreakpoint(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice string
		want      string
	}{
		{"below breakpoint", "10", "50"},
		{"at breakpoint", "500", "100"},
		{"above breakpoint", "1000", "100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Shipment{
				ClientCategory: CategoryNew,
				TotalCBM:       dec("1"),
				ExchangeRate:   dec("1"),
				Tariff:         Tariff{Mode: TariffFlat, Value: dec("100")},
				Suppliers: []Supplier{
					{Name: "s", Products: []Product{
						{Name: "p", UnitPrice: dec(tc.unitPrice), UnitValuation: dec(tc.unitPrice), Quantity: 10},
					}},
				},
			}
			res, err := testEngine(DefaultConfig()).Calculate(s)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Totals.Insurance.String())
		})
	}
}

func TestCalculateRejectsInvalidShipments(t *testing.T) {
	eng := testEngine(DefaultConfig())

	_, err := eng.Calculate(Shipment{})
	assert.ErrorIs(t, err, ErrNoSuppliers)

	_, err = eng.Calculate(Shipment{Suppliers: []Supplier{{Name: "empty"}}})
	assert.ErrorIs(t, err, ErrNoProducts)

	// Products present but nothing priced must not produce
	// NaN/Inf shares.
	_, err = eng.Calculate(Shipment{
		Tariff: Tariff{Mode: TariffFlat, Value: dec("100")},
		Suppliers: []Supplier{
			{Name: "s", Products: []Product{
				{Name: "free sample", UnitPrice: decimal.Zero, UnitValuation: decimal.Zero, Quantity: 5},
			}},
		},
	})
	assert.ErrorIs(t, err, ErrZeroFOB)
}

func TestCalculateIsDeterministic(t *testing.T) {
	eng := testEngine(DefaultConfig())
	s := twoLineShipment()

	first, err := eng.Calculate(s)
	require.NoError(t, err)
	second, err := eng.Calculate(s)
	require.NoError(t, err)

	require.Equal(t, len(first.Lines), len(second.Lines))
	for i := range first.Lines {
		assert.Equal(t, first.Lines[i].TotalCost.String(), second.Lines[i].TotalCost.String())
		assert.Equal(t, first.Lines[i].UnitCostLocal.String(), second.Lines[i].UnitCostLocal.String())
	}
	assert.Equal(t, first.Totals.GrandTotal.String(), second.Totals.GrandTotal.String())
}

func TestCalculateQuantityMonotonicity(t *testing.T) {
	eng := testEngine(DefaultConfig())

	base := twoLineShipment()
	baseRes, err := eng.Calculate(base)
	require.NoError(t, err)

	for qty := int64(6); qty <= 50; qty += 11 {
		grown := twoLineShipment()
		grown.Suppliers[0].Products[0].Quantity = qty
		grownRes, err := eng.Calculate(grown)
		require.NoError(t, err)

		assert.True(t, grownRes.Lines[0].TotalDuties.GreaterThanOrEqual(baseRes.Lines[0].TotalDuties),
			"duties decreased at qty %d", qty)
		assert.True(t, grownRes.Lines[0].TotalCost.GreaterThanOrEqual(baseRes.Lines[0].TotalCost),
			"total cost decreased at qty %d", qty)
	}
}

func TestCalculateNegativeRatesTreatedAsZero(t *testing.T) {
	negative := dec("-0.1")
	s := Shipment{
		ClientCategory: CategoryNew,
		TotalCBM:       dec("1"),
		ExchangeRate:   dec("1"),
		Tariff:         Tariff{Mode: TariffFlat, Value: dec("100")},
		Suppliers: []Supplier{
			{Name: "s", Products: []Product{
				{
					Name:           "p",
					UnitPrice:      dec("10"),
					UnitValuation:  dec("10"),
					Quantity:       10,
					AdValoremRate:  negative,
					AntidumpingFee: negative,
					PerceptionRate: &negative,
				},
			}},
		},
	}

	res, err := testEngine(DefaultConfig()).Calculate(s)
	require.NoError(t, err)
	l := res.Lines[0]
	assert.True(t, l.AdValorem.IsZero())
	assert.True(t, l.Antidumping.IsZero())
	assert.True(t, l.Perception.IsZero())
}
