// Package calculator implements the landed-cost / customs-duty calculation
// engine: given a shipment (suppliers shipping products) and the resolved
// tariff, it computes the fully-loaded unit cost of every product line in
// the destination country. The engine is a pure function of its input plus
// the two lookup tables; re-running with identical input yields identical
// output, so the calling layer can safely re-invoke it whenever a shipment
// is edited.
package calculator

import "github.com/shopspring/decimal"

// Engine runs the full calculation pipeline: surcharges, cost distribution,
// per-line duty cascade, totals.
type Engine struct {
	cfg        Config
	surcharges *SurchargeTable
}

func NewEngine(cfg Config, surcharges *SurchargeTable) *Engine {
	return &Engine{cfg: cfg, surcharges: surcharges}
}

// Calculate validates the shipment and produces a fresh Result. The tariff
// must already be resolved on the shipment (the calling layer owns the
// category+CBM lookup via TariffTable).
func (e *Engine) Calculate(s Shipment) (*Result, error) {
	if len(s.Suppliers) == 0 {
		return nil, ErrNoSuppliers
	}
	if s.ItemCount() == 0 {
		return nil, ErrNoProducts
	}

	shares, totalFOB, err := lineShares(s)
	if err != nil {
		return nil, err
	}

	extraCharges := e.surcharges.ExtraCharges(s)

	tariffAmount := s.Tariff.Amount(s.TotalCBM)
	freightTotal := e.cfg.FreightShare.Mul(tariffAmount)
	// Destination may go negative when the discount exceeds the base: a net
	// credit, accepted rather than clamped.
	destinationTotal := e.cfg.DestinationShare.Mul(tariffAmount).
		Sub(s.Discount).
		Add(extraCharges)

	insuranceTotal := e.cfg.InsuranceLow
	if totalFOB.GreaterThanOrEqual(e.cfg.InsuranceBreakpoint) {
		insuranceTotal = e.cfg.InsuranceHigh
	}

	lines := make([]LineBreakdown, 0, s.ItemCount())
	i := 0
	for _, sup := range s.Suppliers {
		for _, p := range sup.Products {
			share := shares[i]
			i++
			lines = append(lines, computeLine(
				e.cfg,
				sup.Name,
				p,
				share,
				share.Mul(freightTotal),
				share.Mul(insuranceTotal),
				share.Mul(destinationTotal),
				s.ExchangeRate,
			))
		}
	}

	totals := ShipmentTotals{
		FOB:          decimal.Zero,
		Duties:       decimal.Zero,
		Freight:      freightTotal,
		Insurance:    insuranceTotal,
		Destination:  destinationTotal,
		ExtraCharges: extraCharges,
		Discount:     s.Discount,
		Logistics:    freightTotal.Add(destinationTotal),
		GrandTotal:   decimal.Zero,
	}
	for _, l := range lines {
		totals.FOB = totals.FOB.Add(l.FOB)
		totals.Duties = totals.Duties.Add(l.TotalDuties)
		totals.GrandTotal = totals.GrandTotal.Add(l.TotalCost)
	}

	return &Result{Lines: lines, Totals: totals}, nil
}
