package main

import (
	"os"

	"github.com/stephenstubbs/pulumi-profile-selector/internal/cli"
)

func main() {
	app := cli.NewApp()
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
