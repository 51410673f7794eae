package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Welly0007/InvestWise/renderer"
	"github.com/google/subcommands"
)

// zakatCmd holds the flags for the 'zakat' subcommand.
type zakatCmd struct {
	user      string
	portfolio string
}

func (*zakatCmd) Name() string     { return "zakat" }
func (*zakatCmd) Synopsis() string { return "display the zakat breakdown of a portfolio" }
func (*zakatCmd) Usage() string {
	return `iw zakat -user <user name> -portfolio <name>

  Displays the zakat due per eligible asset at the 2.5% rate, and the
  total payable for the portfolio.
`
}

func (c *zakatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.portfolio, "portfolio", "", "Portfolio to assess")
}

func (c *zakatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	p, err := requirePortfolio(OpenPortfolios(), owner, c.portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ZakatBreakdown(p))
	return subcommands.ExitSuccess
}
