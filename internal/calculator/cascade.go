package calculator

import "github.com/shopspring/decimal"

// computeLine runs the ordered duty cascade for one product line. Each step
// reads the output of the previous one; no value is rounded until the
// caller presents it. Negative rates are treated as zero.
func computeLine(cfg Config, supplier string, p Product, share, freight, insurance, destination, exchangeRate decimal.Decimal) LineBreakdown {
	qty := decimal.NewFromInt(p.Quantity)

	fob := p.UnitPrice.Mul(qty)
	fobValor := p.UnitValuation.Mul(qty)

	cfr := fob.Add(freight)
	cfrValor := fobValor.Add(freight)

	cif := cfr.Add(insurance)
	cifValor := cfrValor.Add(insurance)

	// Customs taxes the higher of commercial and assessed value.
	base := decimal.Max(cif, cifValor)

	adValorem := base.Mul(nonNegative(p.AdValoremRate))

	taxable := base.Add(adValorem)
	igv := taxable.Mul(cfg.GeneralSalesTaxRate)
	ipm := taxable.Mul(cfg.MunicipalTaxRate)

	perceptionRate := cfg.DefaultPerceptionRate
	if p.PerceptionRate != nil {
		perceptionRate = nonNegative(*p.PerceptionRate)
	}
	perception := perceptionRate.Mul(taxable.Add(igv).Add(ipm))

	// Flat per-unit duty, intrinsic to the line: never distributed.
	antidumping := qty.Mul(nonNegative(p.AntidumpingFee))

	totalDuties := adValorem.Add(igv).Add(ipm).Add(perception)

	totalCost := decimal.Max(cfr, cfrValor).
		Add(antidumping).
		Add(totalDuties).
		Add(destination)

	unitCost := totalCost.Div(qty)

	return LineBreakdown{
		Supplier:        supplier,
		Name:            p.Name,
		Quantity:        p.Quantity,
		Share:           share,
		FOB:             fob,
		FOBValor:        fobValor,
		Freight:         freight,
		Insurance:       insurance,
		CFR:             cfr,
		CFRValor:        cfrValor,
		CIF:             cif,
		CIFValor:        cifValor,
		AdValorem:       adValorem,
		GeneralSalesTax: igv,
		MunicipalTax:    ipm,
		Perception:      perception,
		Antidumping:     antidumping,
		TotalDuties:     totalDuties,
		Destination:     destination,
		TotalCost:       totalCost,
		UnitCost:        unitCost,
		UnitCostLocal:   unitCost.Mul(exchangeRate),
	}
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
