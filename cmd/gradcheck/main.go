package main

import (
	"os"

	"github.com/dalemusser/gradstats/internal/cli"
	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS; runtime defaults apply then.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
