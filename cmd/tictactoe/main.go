package main

import (
	"context"
	"os"

	"github.com/KirkDiggler/termgames/internal/config"
	"github.com/KirkDiggler/termgames/internal/handlers/cli"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		// Fall back to the defaults; the logger is not configured yet
		cfg, _ = config.Load("")
	}

	logger := cfg.NewLogger()

	game, err := cli.NewTicTacToe(&cli.TicTacToeConfig{
		In:     os.Stdin,
		Out:    os.Stdout,
		Logger: logger,
		Plain:  cfg.Output.Plain,
	})
	if err != nil {
		logger.Error("failed to create tic-tac-toe", "error", err)
		os.Exit(1)
	}

	if err := game.Run(context.Background()); err != nil {
		logger.Error("tic-tac-toe stopped", "error", err)
		os.Exit(1)
	}
}
