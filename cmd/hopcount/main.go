package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/hopcount/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// run the command
	cli.Execute(ctx, version)
}
