package main

import (
	"os"

	"github.com/BeepBoopVictor/project-scaffolder/internal/cli"
)

var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		cli.PrintError(err)
		os.Exit(1)
	}
}
