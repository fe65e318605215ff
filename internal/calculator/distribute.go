package calculator

import "github.com/shopspring/decimal"

// lineShares computes the distribution share of every product line:
// line FOB divided by total shipment FOB, both on commercial prices.
// The same share is reused for the freight, insurance and destination
// allocations so the three always sum back to their shipment totals.
// Returned in shipment order (suppliers, then products within supplier).
func lineShares(s Shipment) ([]decimal.Decimal, decimal.Decimal, error) {
	totalFOB := decimal.Zero
	for _, sup := range s.Suppliers {
		for _, p := range sup.Products {
			totalFOB = totalFOB.Add(p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity)))
		}
	}
	if totalFOB.IsZero() {
		return nil, decimal.Zero, ErrZeroFOB
	}

	shares := make([]decimal.Decimal, 0, s.ItemCount())
	for _, sup := range s.Suppliers {
		for _, p := range sup.Products {
			fob := p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
			shares = append(shares, fob.Div(totalFOB))
		}
	}
	return shares, totalFOB, nil
}
