package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/termgames/internal/tictactoe"
)

// TicTacToeConfig holds configuration for the tic-tac-toe terminal loop
type TicTacToeConfig struct {
	// In is where moves are read from
	In io.Reader

	// Out receives the board and messages
	Out io.Writer

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Plain disables colours
	Plain bool
}

// TicTacToe runs a two-player game on a single terminal
type TicTacToe struct {
	prompt *prompter
	style  *styler
	logger *slog.Logger
}

// NewTicTacToe creates a new tic-tac-toe terminal loop
func NewTicTacToe(cfg *TicTacToeConfig) (*TicTacToe, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.In == nil {
		return nil, ErrNilInput
	}
	if cfg.Out == nil {
		return nil, ErrNilOutput
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &TicTacToe{
		prompt: newPrompter(cfg.In, cfg.Out),
		style:  newStyler(cfg.Out, cfg.Plain),
		logger: logger,
	}, nil
}

// Run plays one game. The terminal state is checked before every prompt, so
// the loop ends as soon as a line is completed or the board fills up.
// Running out of input abandons the game without an error.
func (t *TicTacToe) Run(ctx context.Context) error {
	game := tictactoe.New()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.prompt.println(t.style.renderBoard(game))

		if winner, ok := game.Winner(); ok {
			t.prompt.println(t.style.success("Player " + t.style.player(winner) + " wins!"))
			t.logger.Info("tic-tac-toe finished", "winner", winner.String())
			return nil
		}
		if game.IsDraw() {
			t.prompt.println(t.style.warning("It's a draw!"))
			t.logger.Info("tic-tac-toe finished", "winner", "none")
			return nil
		}

		line, err := t.prompt.ask("Player " + t.style.player(game.CurrentPlayer()) +
			"'s turn. Enter row and column (e.g., 1 1):\n")
		if errors.Is(err, io.EOF) {
			t.logger.Info("tic-tac-toe abandoned: input closed")
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		row, col, err := parseCoordinates(fields[0], fields[1])
		if err != nil {
			t.prompt.println(t.style.failure("Error: " + err.Error()))
			continue
		}

		if err := game.ApplyMove(row-1, col-1); err != nil {
			t.logger.Debug("move rejected", "row", row, "col", col, "error", err)
			t.prompt.println(t.style.failure("Error: " + err.Error()))
		}
	}
}

// parseCoordinates reads 1-based row and column numbers
func parseCoordinates(rawRow, rawCol string) (int, int, error) {
	row, err := strconv.Atoi(rawRow)
	if err != nil {
		return 0, 0, tictactoe.ErrInvalidInput
	}
	col, err := strconv.Atoi(rawCol)
	if err != nil {
		return 0, 0, tictactoe.ErrInvalidInput
	}
	return row, col, nil
}
