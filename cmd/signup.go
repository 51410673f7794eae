package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	investwise "github.com/Welly0007/InvestWise"
	"github.com/google/subcommands"
)

// signupCmd holds the flags for the 'signup' subcommand.
type signupCmd struct {
	name     string
	email    string
	user     string
	password string
	confirm  string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new investor account" }
func (*signupCmd) Usage() string {
	return `iw signup -name <full name> -email <email> -user <user name> -password <password> -confirm <password>

  Registers a new investor account. The password must be 8 to 100
  characters long with at least one uppercase letter and one digit or
  special character.
`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name of the investor")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.user, "user", "", "User name used to sign in")
	f.StringVar(&c.password, "password", "", "Password")
	f.StringVar(&c.confirm, "confirm", "", "Password confirmation")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	auth := investwise.NewAuthService(OpenUsers(), nil)

	result := auth.SignUp(c.name, c.email, c.user, c.password, c.confirm)
	if result != investwise.SignupSuccess {
		fmt.Fprintf(os.Stderr, "Signup failed (%s): %s\n", result, result.Message())
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %q created.\n", c.user)
	return subcommands.ExitSuccess
}
