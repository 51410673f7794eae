package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Welly0007/InvestWise/renderer"
	"github.com/google/subcommands"
)

// addPortfolioCmd holds the flags for the 'add-portfolio' subcommand.
type addPortfolioCmd struct {
	user string
	name string
}

func (*addPortfolioCmd) Name() string     { return "add-portfolio" }
func (*addPortfolioCmd) Synopsis() string { return "create a new portfolio for a user" }
func (*addPortfolioCmd) Usage() string {
	return `iw add-portfolio -user <user name> -portfolio <name>

  Creates an empty portfolio. Portfolio names are unique per user.
`
}

func (c *addPortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.name, "portfolio", "", "Name of the new portfolio")
}

func (c *addPortfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.name == "" {
		fmt.Fprintln(os.Stderr, "missing -portfolio flag")
		return subcommands.ExitUsageError
	}

	ps := OpenPortfolios()
	if _, ok := ps.Create(owner, c.name); !ok {
		fmt.Fprintf(os.Stderr, "Portfolio %q already exists for user %q\n", c.name, c.user)
		return subcommands.ExitFailure
	}

	fmt.Printf("Portfolio %q created for %s.\n", c.name, owner.UserName)
	return subcommands.ExitSuccess
}

// deletePortfolioCmd holds the flags for the 'delete-portfolio' subcommand.
type deletePortfolioCmd struct {
	user string
	name string
}

func (*deletePortfolioCmd) Name() string     { return "delete-portfolio" }
func (*deletePortfolioCmd) Synopsis() string { return "delete a portfolio and all its assets" }
func (*deletePortfolioCmd) Usage() string {
	return `iw delete-portfolio -user <user name> -portfolio <name>

  Removes the portfolio and every asset it holds.
`
}

func (c *deletePortfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.name, "portfolio", "", "Name of the portfolio to delete")
}

func (c *deletePortfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ps := OpenPortfolios()
	p, err := requirePortfolio(ps, owner, c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ps.Delete(p)
	fmt.Printf("Portfolio %q deleted.\n", c.name)
	return subcommands.ExitSuccess
}

// listPortfoliosCmd holds the flags for the 'portfolios' subcommand.
type listPortfoliosCmd struct {
	user string
}

func (*listPortfoliosCmd) Name() string     { return "portfolios" }
func (*listPortfoliosCmd) Synopsis() string { return "list the portfolios of a user" }
func (*listPortfoliosCmd) Usage() string {
	return `iw portfolios -user <user name>

  Displays every portfolio of the user with its assets and total value.
`
}

func (c *listPortfoliosCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
}

func (c *listPortfoliosCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	portfolios := OpenPortfolios().UserPortfolios(owner)
	printMarkdown(renderer.PortfolioSummary(owner, portfolios))
	return subcommands.ExitSuccess
}
