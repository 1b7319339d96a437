package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/cargo-ls-crates/internal/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.New(os.Stderr, cli.LoadConfig()).Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
