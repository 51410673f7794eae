package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	investwise "github.com/Welly0007/InvestWise"
	"github.com/Welly0007/InvestWise/renderer"
	"github.com/google/subcommands"
)

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	user      string
	portfolio string
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "interactively add an asset to a portfolio" }
func (*addAssetCmd) Usage() string {
	return `iw add-asset -user <user name> -portfolio <name>

  Prompts for the asset type (stock, crypto, real-estate or gold), the
  common fields and the type-specific details, then stores the asset in
  the portfolio.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.portfolio, "portfolio", "", "Portfolio receiving the asset")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ps := OpenPortfolios()
	p, err := requirePortfolio(ps, owner, c.portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	asset, err := investwise.CreateAsset(newConsolePrompter(), Currency(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating asset: %v\n", err)
		return subcommands.ExitFailure
	}

	if !ps.AddAsset(p, asset) {
		fmt.Fprintf(os.Stderr, "Asset currency %s does not match portfolio %q (%s)\n",
			asset.PurchasePrice().Currency(), c.portfolio, p.Currency())
		return subcommands.ExitFailure
	}
	fmt.Printf("Asset %q added to portfolio %q.\n", asset.Name(), c.portfolio)
	return subcommands.ExitSuccess
}

// editAssetCmd holds the flags for the 'edit-asset' subcommand.
type editAssetCmd struct {
	user      string
	portfolio string
	asset     string
}

func (*editAssetCmd) Name() string     { return "edit-asset" }
func (*editAssetCmd) Synopsis() string { return "interactively edit an asset of a portfolio" }
func (*editAssetCmd) Usage() string {
	return `iw edit-asset -user <user name> -portfolio <name> -asset <asset name>

  Prompts for new values for the common fields and the type-specific
  details of the asset. The asset type itself cannot change.
`
}

func (c *editAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.portfolio, "portfolio", "", "Portfolio holding the asset")
	f.StringVar(&c.asset, "asset", "", "Name of the asset to edit")
}

func (c *editAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ps := OpenPortfolios()
	p, err := requirePortfolio(ps, owner, c.portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := ps.EditAsset(p, c.asset, newConsolePrompter()); err != nil {
		fmt.Fprintf(os.Stderr, "Error editing asset: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Asset %q updated.\n", c.asset)
	return subcommands.ExitSuccess
}

// removeAssetCmd holds the flags for the 'remove-asset' subcommand.
type removeAssetCmd struct {
	user      string
	portfolio string
	asset     string
}

func (*removeAssetCmd) Name() string     { return "remove-asset" }
func (*removeAssetCmd) Synopsis() string { return "remove an asset from a portfolio" }
func (*removeAssetCmd) Usage() string {
	return `iw remove-asset -user <user name> -portfolio <name> -asset <asset name>

  Removes the named asset from the portfolio.
`
}

func (c *removeAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.portfolio, "portfolio", "", "Portfolio holding the asset")
	f.StringVar(&c.asset, "asset", "", "Name of the asset to remove")
}

func (c *removeAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	owner, err := requireUser(OpenUsers(), c.user)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	ps := OpenPortfolios()
	p, err := requirePortfolio(ps, owner, c.portfolio)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !ps.RemoveAsset(p, c.asset) {
		fmt.Fprintf(os.Stderr, "No asset %q in portfolio %q\n", c.asset, c.portfolio)
		return subcommands.ExitFailure
	}

	fmt.Printf("Asset %q removed.\n", c.asset)
	return subcommands.ExitSuccess
}

// listAssetsCmd holds the flags for the 'assets' subcommand.
type listAssetsCmd struct {
	user      string
	portfolio string
}

func (*listAssetsCmd) Name() string     { return "assets" }
func (*listAssetsCmd) Synopsis() string { return "list the assets of a portfolio" }
func (*listAssetsCmd) Usage() string {
	return `iw assets -user <user name> -portfolio <name>

  Displays the assets of the portfolio with their valuation.
`
}

func (c *listAssetsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "Owner's user name")
	f.StringVar(&c.portfolio, "portfolio", "", "Portfolio to display")
}

func (c *listAssetsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.Assets(p))
	return subcommands.ExitSuccess
}
