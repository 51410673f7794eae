// Package cmd implements the iw CLI to manage accounts, portfolios and
// reports. It is the only place that talks to the terminal; the domain
// package is reached through its exported operations and the FieldSource
// interface.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	investwise "github.com/Welly0007/InvestWise"
	"github.com/Welly0007/InvestWise/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Register registers every subcommand on the commander.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")

	c.Register(&signupCmd{}, "auth")
	c.Register(&loginCmd{}, "auth")

	c.Register(&addPortfolioCmd{}, "portfolios")
	c.Register(&deletePortfolioCmd{}, "portfolios")
	c.Register(&listPortfoliosCmd{}, "portfolios")

	c.Register(&addAssetCmd{}, "assets")
	c.Register(&editAssetCmd{}, "assets")
	c.Register(&removeAssetCmd{}, "assets")
	c.Register(&listAssetsCmd{}, "assets")

	c.Register(&zakatCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "docs")
}

// As a short-lived CLI process, global flags are acceptable here.
var (
	dataDirFlag    = flag.String("data-dir", "", "data directory (default $INVESTWISE_DATA_DIR or .investwise)")
	reportsDirFlag = flag.String("reports-dir", "", "reports directory (default $INVESTWISE_REPORTS_DIR or reports)")
	currencyFlag   = flag.String("currency", "", "currency for new assets (default $INVESTWISE_CURRENCY or USD)")
)

// LoadDotEnv loads a .env file when one is present. Real environment
// variables and flags still win; a missing file is not an error.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Get().Warnw("could not load .env file", "error", err)
	}
}

// DataDir resolves the data directory from flag, environment or default.
func DataDir() string {
	if *dataDirFlag != "" {
		return *dataDirFlag
	}
	if v := os.Getenv("INVESTWISE_DATA_DIR"); v != "" {
		return v
	}
	return ".investwise"
}

// ReportsDir resolves the reports directory from flag, environment or default.
func ReportsDir() string {
	if *reportsDirFlag != "" {
		return *reportsDirFlag
	}
	if v := os.Getenv("INVESTWISE_REPORTS_DIR"); v != "" {
		return v
	}
	return "reports"
}

// Currency resolves the currency used for newly created assets.
func Currency() string {
	if *currencyFlag != "" {
		return *currencyFlag
	}
	if v := os.Getenv("INVESTWISE_CURRENCY"); v != "" {
		return v
	}
	return "USD"
}

// OpenUsers opens the user store under the data directory.
func OpenUsers() *investwise.UserStore {
	return investwise.OpenUserStore(filepath.Join(DataDir(), "users.jsonl"))
}

// OpenPortfolios opens the portfolio store under the data directory.
func OpenPortfolios() *investwise.PortfolioStore {
	return investwise.OpenPortfolioStore(filepath.Join(DataDir(), "portfolios.jsonl"))
}

// requireUser resolves a -user flag value to a stored account.
func requireUser(users *investwise.UserStore, userName string) (investwise.User, error) {
	if userName == "" {
		return investwise.User{}, errors.New("missing -user flag")
	}
	u, ok := users.FindUser(userName)
	if !ok {
		return investwise.User{}, fmt.Errorf("unknown user %q", userName)
	}
	return u, nil
}

// requirePortfolio resolves a -portfolio flag value for an owner.
func requirePortfolio(ps *investwise.PortfolioStore, owner investwise.User, name string) (*investwise.Portfolio, error) {
	if name == "" {
		return nil, errors.New("missing -portfolio flag")
	}
	p, ok := ps.Find(owner, name)
	if !ok {
		return nil, fmt.Errorf("no portfolio %q for user %q", name, owner.UserName)
	}
	return p, nil
}
