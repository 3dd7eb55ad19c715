package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/degenerous-dao/potentials-staking/cmd/stakectl/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.Execute(ctx, cli.DefaultOpener, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
