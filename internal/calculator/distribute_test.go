package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSharesFollowCommercialValue(t *testing.T) {
	s := Shipment{
		Suppliers: []Supplier{
			{Name: "a", Products: []Product{
				{Name: "p1", UnitPrice: dec("25"), UnitValuation: dec("999"), Quantity: 2}, // FOB 50
			}},
			{Name: "b", Products: []Product{
				{Name: "p2", UnitPrice: dec("10"), UnitValuation: dec("1"), Quantity: 5}, // FOB 50
			}},
		},
	}

	shares, totalFOB, err := lineShares(s)
	require.NoError(t, err)
	require.Len(t, shares, 2)

	// Valuation never enters the distribution: both lines carry FOB 50.
	assert.Equal(t, "100", totalFOB.String())
	assert.Equal(t, "0.5", shares[0].String())
	assert.Equal(t, "0.5", shares[1].String())
}

func TestLineSharesZeroFOB(t *testing.T) {
	s := Shipment{
		Suppliers: []Supplier{
			{Name: "a", Products: []Product{
				{Name: "p", UnitPrice: dec("0"), Quantity: 3},
			}},
		},
	}

	_, _, err := lineShares(s)
	assert.ErrorIs(t, err, ErrZeroFOB)
}
