// Package renderer turns domain values into markdown for terminal display.
// The persisted report artifacts stay fixed-width plain text; this package
// only serves the interactive commands.
package renderer

import (
	"bytes"
	"fmt"

	investwise "github.com/Welly0007/InvestWise"
	md "github.com/nao1215/markdown"
)

// PortfolioSummary renders all portfolios of an investor with their assets
// and valuations.
func PortfolioSummary(investor investwise.User, portfolios []*investwise.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolios of %s", investor.Name))
	if len(portfolios) == 0 {
		doc.PlainText("No portfolios yet.")
		return doc.String()
	}

	for _, p := range portfolios {
		doc.H2(p.Name)
		doc.Table(assetTable(p))
		doc.PlainText(fmt.Sprintf("Total value: %s", md.Bold(p.TotalValue().String())))
	}
	return doc.String()
}

// Assets renders the asset listing of one portfolio.
func Assets(p *investwise.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Assets in %s", p.Name))
	if len(p.Assets) == 0 {
		doc.PlainText("No assets in the portfolio.")
		return doc.String()
	}
	doc.Table(assetTable(p))
	doc.PlainText(fmt.Sprintf("Total value: %s", md.Bold(p.TotalValue().String())))
	return doc.String()
}

func assetTable(p *investwise.Portfolio) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignLeft,
			md.AlignLeft,
		},
		Header: []string{"Asset", "Type", "Quantity", "Price", "Value", "Zakat", "Details"},
	}
	for _, a := range p.Assets {
		zakat := "no"
		if a.ZakatApplicable() {
			zakat = "yes"
		}
		table.Rows = append(table.Rows, []string{
			a.Name(),
			string(a.What()),
			fmt.Sprintf("%d", a.Quantity()),
			a.PurchasePrice().String(),
			a.Valuation().String(),
			zakat,
			a.Details(),
		})
	}
	return table
}

// ZakatBreakdown renders the Zakat due on one portfolio: applicable assets
// itemized, the total over every asset.
func ZakatBreakdown(p *investwise.Portfolio) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Zakat for %s", p.Name))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Asset", "Value", "Zakat Amount"},
	}
	for _, a := range p.Assets {
		if !a.ZakatApplicable() {
			continue
		}
		table.Rows = append(table.Rows, []string{
			a.Name(),
			a.Valuation().String(),
			investwise.AssetZakat(a).String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total Zakat payable: %s", md.Bold(investwise.PortfolioZakat(p).String())))
	return doc.String()
}
