package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	investwise "github.com/Welly0007/InvestWise"
	"github.com/google/subcommands"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	user      string
	portfolio string
	kind      string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "write a text report file" }
func (*reportCmd) Usage() string {
	return `iw report -user <user name> [-portfolio <name>] [-type <summary|zakat>]

  Writes a timestamped text report under the reports directory. The
  summary report covers every portfolio of the user; the zakat report
  covers a single portfolio and requires -portfolio.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.portfolio, "portfolio", "", "Portfolio for the zakat report")
	f.StringVar(&c.kind, "type", "summary", "Report type: summary or zakat")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ps := OpenPortfolios()
	gen := investwise.NewGenerator(ReportsDir())

	var fileName string
	switch c.kind {
	case "summary":
		fileName, err = gen.PortfolioSummary(owner, ps.UserPortfolios(owner))
	case "zakat":
		var p *investwise.Portfolio
		p, err = requirePortfolio(ps, owner, c.portfolio)
		if err == nil {
			fileName, err = gen.ZakatBreakdown(p)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown report type %q\n", c.kind)
		return subcommands.ExitUsageError
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Report written to %s\n", fileName)
	return subcommands.ExitSuccess
}
