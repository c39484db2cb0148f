package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	_ "github.com/database-playground/webhook-qualifier/internal/deps/logger"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rootCommand := newRootCommand(newRunCommand(), newAnswerCommand(), newVerifyCommand())

	if err := rootCommand.Run(ctx, os.Args); err != nil {
		slog.Error("qualifier failed", "error", err)
		cancel()
		os.Exit(1)
	}
}
