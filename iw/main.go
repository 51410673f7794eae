package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/Welly0007/InvestWise/cmd"
	"github.com/Welly0007/InvestWise/logger"
	"github.com/google/subcommands"
)

func main() {
	logger.Init(os.Getenv("INVESTWISE_ENV"))
	defer logger.Sync()

	cmd.LoadDotEnv()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
