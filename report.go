package investwise

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Generator writes report artifacts under Dir, one plain-text file per
// call, named by a prefix and a generation timestamp. Names are unique only
// at second granularity: two reports with the same prefix in the same
// second overwrite each other.
type Generator struct {
	Dir string
	Now func() time.Time // nil means time.Now
}

// NewGenerator returns a Generator writing under dir.
func NewGenerator(dir string) *Generator { return &Generator{Dir: dir} }

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// PortfolioSummary writes the portfolio summary artifact for an investor
// and returns its path. A write failure is returned to the operator, never
// escalated further.
func (g *Generator) PortfolioSummary(investor User, portfolios []*Portfolio) (string, error) {
	generated := g.now()
	return g.write("portfolio_summary", PortfolioSummaryText(investor, portfolios, generated), generated)
}

// ZakatBreakdown writes the Zakat breakdown artifact for one portfolio and
// returns its path.
func (g *Generator) ZakatBreakdown(p *Portfolio) (string, error) {
	generated := g.now()
	return g.write("zakat_report", ZakatBreakdownText(p, generated), generated)
}

// write creates Dir on demand and writes one artifact. The clock is read
// once per artifact so the file name and the "Generated on" line can never
// straddle a second boundary.
func (g *Generator) write(prefix, content string, generated time.Time) (string, error) {
	if err := os.MkdirAll(g.Dir, 0o755); err != nil {
		return "", fmt.Errorf("could not create reports directory %q: %w", g.Dir, err)
	}
	name := filepath.Join(g.Dir, fmt.Sprintf("%s_%s.txt", prefix, generated.Format("20060102_150405")))
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("could not write report %q: %w", name, err)
	}
	return name, nil
}

// PortfolioSummaryText renders the fixed-width portfolio summary: every
// portfolio of the investor with all assets, valuations and Zakat flags.
func PortfolioSummaryText(investor User, portfolios []*Portfolio, generated time.Time) string {
	var b strings.Builder
	b.WriteString("=== Portfolio Summary Report ===\n")
	fmt.Fprintf(&b, "Generated on: %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Investor: %s\n\n", investor.Name)

	for _, p := range portfolios {
		fmt.Fprintf(&b, "Portfolio: %s\n", p.Name)
		fmt.Fprintf(&b, "%-20s %-10s %-15s %-15s %-15s\n",
			"Asset Name", "Quantity", "Price", "Total Value", "Zakat Applicable")
		b.WriteString(strings.Repeat("-", 85) + "\n")

		for _, a := range p.Assets {
			flag := "No"
			if a.ZakatApplicable() {
				flag = "Yes"
			}
			fmt.Fprintf(&b, "%-20s %-10d %-15s %-15s %-15s\n",
				a.Name(), a.Quantity(), a.PurchasePrice().Fixed(), a.Valuation().Fixed(), flag)
		}

		b.WriteString(strings.Repeat("-", 85) + "\n")
		fmt.Fprintf(&b, "Portfolio Total Value: %s\n\n", p.TotalValue().String())
	}
	return b.String()
}

// ZakatBreakdownText renders the fixed-width Zakat breakdown for one
// portfolio. Only applicable assets are itemized; the total still includes
// every asset's contribution, which is zero for the non-applicable ones.
func ZakatBreakdownText(p *Portfolio, generated time.Time) string {
	var b strings.Builder
	b.WriteString("=== Zakat Calculation Report ===\n")
	fmt.Fprintf(&b, "Generated on: %s\n", generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Portfolio: %s\n", p.Name)
	fmt.Fprintf(&b, "Owner: %s\n\n", p.Owner.Name)

	fmt.Fprintf(&b, "%-20s %-15s %-15s %-15s\n",
		"Asset Name", "Value", "Zakat Eligible", "Zakat Amount")
	b.WriteString(strings.Repeat("-", 70) + "\n")

	for _, a := range p.Assets {
		if !a.ZakatApplicable() {
			continue
		}
		fmt.Fprintf(&b, "%-20s %-15s %-15s %-15s\n",
			a.Name(), a.Valuation().Fixed(), "Yes", AssetZakat(a).Fixed())
	}

	b.WriteString(strings.Repeat("-", 70) + "\n")
	fmt.Fprintf(&b, "\nTotal Zakat Payable: %s\n", PortfolioZakat(p).String())
	return b.String()
}
