package investwise

import "github.com/shopspring/decimal"

// zakatRate is the fixed obligatory levy rate, 2.5%. Not configurable.
var zakatRate = decimal.RequireFromString("0.025")

// AssetZakat returns the Zakat due on a single asset: zero when the asset
// is not applicable, otherwise its valuation times the fixed rate.
func AssetZakat(a Asset) Money {
	if !a.ZakatApplicable() {
		return M(0, a.PurchasePrice().Currency())
	}
	return a.Valuation().MulDecimal(zakatRate)
}

// PortfolioZakat sums AssetZakat over every asset in the portfolio.
// Non-applicable assets contribute zero; they are summed, not skipped, so
// the total is the same either way, but listings that itemize Zakat must
// only show applicable assets.
func PortfolioZakat(p *Portfolio) Money {
	var total Money
	for _, a := range p.Assets {
		total = total.Add(AssetZakat(a))
	}
	return total
}
