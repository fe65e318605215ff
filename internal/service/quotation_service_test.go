package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductDefaultsValuationToPrice(t *testing.T) {
	product, err := parseProduct(QuotationProductRequest{
		Name:      "Ceramic mug",
		UnitPrice: "4.50",
		Quantity:  100,
	})
	require.NoError(t, err)

	assert.Equal(t, "4.5", product.UnitPrice.String())
	assert.Equal(t, "4.5", product.UnitValuation.String())
	assert.Nil(t, product.PerceptionRate)
}

func TestParseProductExplicitValuation(t *testing.T) {
	product, err := parseProduct(QuotationProductRequest{
		Name:           "Ceramic mug",
		UnitPrice:      "4.50",
		UnitValuation:  "6.00",
		Quantity:       100,
		AdValoremRate:  "0.06",
		AntidumpingFee: "2",
		PerceptionRate: "0.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "6", product.UnitValuation.String())
	assert.Equal(t, "0.06", product.AdValoremRate.String())
	assert.Equal(t, "2", product.AntidumpingFee.String())
	require.NotNil(t, product.PerceptionRate)
	assert.Equal(t, "0.1", product.PerceptionRate.String())
}

func TestParseProductRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		req  QuotationProductRequest
	}{
		{"non-numeric price", QuotationProductRequest{Name: "x", UnitPrice: "abc", Quantity: 1}},
		{"negative price", QuotationProductRequest{Name: "x", UnitPrice: "-1", Quantity: 1}},
		{"negative valuation", QuotationProductRequest{Name: "x", UnitPrice: "1", UnitValuation: "-2", Quantity: 1}},
		{"bad ad valorem", QuotationProductRequest{Name: "x", UnitPrice: "1", AdValoremRate: "six", Quantity: 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseProduct(tc.req)
			assert.Error(t, err)
		})
	}
}

func TestAssembleShipmentSumsSupplierVolumes(t *testing.T) {
	svc := &quotationService{}

	shipment, err := svc.assembleShipment(context.Background(), CreateQuotationRequest{
		ClientName:     "Comercial Andina",
		ClientCategory: "NEW",
		ExchangeRate:   "3.8",
		Suppliers: []QuotationSupplierRequest{
			{
				Name:   "Yiwu Trading",
				Volume: "1.2",
				Products: []QuotationProductRequest{
					{Name: "Mugs", UnitPrice: "5", Quantity: 10},
				},
			},
			{
				Name:   "Shenzhen Export",
				Volume: "0.8",
				Products: []QuotationProductRequest{
					{Name: "Plates", UnitPrice: "3", Quantity: 20},
				},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "2", shipment.TotalCBM.String())
	assert.Len(t, shipment.Suppliers, 2)
	assert.Equal(t, "NEW", shipment.ClientCategory)
	assert.True(t, shipment.Discount.IsZero())
}

func TestAssembleShipmentValidatesExchangeRate(t *testing.T) {
	svc := &quotationService{}

	_, err := svc.assembleShipment(context.Background(), CreateQuotationRequest{
		ClientCategory: "NEW",
		ExchangeRate:   "0",
	})
	assert.Error(t, err)

	_, err = svc.assembleShipment(context.Background(), CreateQuotationRequest{
		ClientCategory: "NEW",
		ExchangeRate:   "3.8",
		Discount:       "-5",
	})
	assert.Error(t, err)
}
