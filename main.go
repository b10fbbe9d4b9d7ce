package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ardnew/clog/cli"
	"github.com/ardnew/clog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := cli.Run(ctx, os.Exit, os.Args[1:]...)

	stop()

	if err != nil {
		// Command errors carry their own attributes through LogValue.
		log.Error("clog failed", slog.Any("error", err))
		os.Exit(1)
	}
}
