package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	investwise "github.com/Welly0007/InvestWise"
	"github.com/google/subcommands"
)

// loginCmd holds the flags for the 'login' subcommand.
type loginCmd struct {
	user     string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "verify the credentials of an account" }
func (*loginCmd) Usage() string {
	return `iw login -user <user name> -password <password>

  Checks the credentials against the user store. The reason for a
  rejection is never disclosed.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "User name")
	f.StringVar(&c.password, "password", "", "Password")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	auth := investwise.NewAuthService(OpenUsers(), nil)

	result := auth.Login(c.user, c.password)
	if !result.Success {
		fmt.Fprintln(os.Stderr, "Invalid credentials.")
		return subcommands.ExitFailure
	}

	fmt.Printf("Welcome back, %s.\n", result.User.Name)
	return subcommands.ExitSuccess
}
