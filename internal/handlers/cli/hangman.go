package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	engine "github.com/KirkDiggler/termgames/internal/hangman"
	hangmanService "github.com/KirkDiggler/termgames/internal/services/hangman"
)

// HangmanConfig holds configuration for the hangman terminal loop
type HangmanConfig struct {
	// In is where answers and guesses are read from
	In io.Reader

	// Out receives the game state and messages
	Out io.Writer

	// Service runs the games
	Service hangmanService.Service

	// Logger defaults to slog.Default()
	Logger *slog.Logger

	// Plain disables colours
	Plain bool
}

// Hangman runs hangman games until the player stops
type Hangman struct {
	prompt  *prompter
	style   *styler
	service hangmanService.Service
	logger  *slog.Logger
}

// NewHangman creates a new hangman terminal loop
func NewHangman(cfg *HangmanConfig) (*Hangman, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.In == nil {
		return nil, ErrNilInput
	}
	if cfg.Out == nil {
		return nil, ErrNilOutput
	}
	if cfg.Service == nil {
		return nil, ErrNilService
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Hangman{
		prompt:  newPrompter(cfg.In, cfg.Out),
		style:   newStyler(cfg.Out, cfg.Plain),
		service: cfg.Service,
		logger:  logger,
	}, nil
}

// Run plays games until the player declines another one or input runs out.
// A word supplier failure ends the whole run and is returned.
func (h *Hangman) Run(ctx context.Context) error {
	h.prompt.println("Hello, welcome to Hangman!")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		difficulty, err := h.selectDifficulty()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		started, err := h.service.StartGame(ctx, &hangmanService.StartGameInput{
			Difficulty: difficulty,
		})
		if err != nil {
			h.prompt.println(h.style.failure("Failed to get a random word: " + supplierCause(err).Error()))
			return err
		}

		err = h.playGame(ctx, started)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		again, err := h.playAgain()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if !again {
			break
		}
	}

	h.printScoreboard(ctx)
	return nil
}

func (h *Hangman) selectDifficulty() (engine.Difficulty, error) {
	h.prompt.println("Select difficulty level: easy, medium, hard")
	line, err := h.prompt.ask("")
	if err != nil {
		return "", err
	}

	difficulty, ok := engine.ParseDifficulty(line)
	if !ok {
		h.prompt.println(h.style.warning("Invalid difficulty level. Defaulting to medium."))
	}
	return difficulty, nil
}

// playGame runs the guess loop of one game until it is won or lost
func (h *Hangman) playGame(ctx context.Context, started *hangmanService.StartGameOutput) error {
	game := started.Game

	for !game.Outcome().Finished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		h.printStatus(game)

		line, err := h.prompt.ask("Enter your guess: ")
		if err != nil {
			return err
		}

		output, err := h.service.Guess(ctx, &hangmanService.GuessInput{
			GameID: started.GameID,
			Letter: firstRune(line),
		})
		if errors.Is(err, engine.ErrAlreadyGuessed) {
			h.prompt.println(h.style.warning("You already guessed that letter!"))
			continue
		}
		if err != nil {
			return err
		}

		switch {
		case output.Outcome == engine.OutcomeWon:
			h.prompt.println(h.style.success("Congratulations, you won! The word was: " + game.SecretWord()))
		case !output.Result.Correct:
			h.prompt.printf("Incorrect! You have %d attempts left.\n", output.Result.AttemptsLeft)
			if output.Outcome == engine.OutcomeLost {
				h.prompt.println(game.Gallows())
				h.prompt.println(h.style.failure("Game over! The word was: " + game.SecretWord()))
			}
		}
	}

	return nil
}

func (h *Hangman) printStatus(game *engine.Game) {
	h.prompt.printf("\nWord: %s\n", game.Pattern())
	h.prompt.printf("Attempts remaining: %d\n", game.AttemptsLeft())
	h.prompt.printf("Guessed letters: %s\n", game.GuessedLetters())
	h.prompt.println("Hangman:")
	h.prompt.println(game.Gallows())
}

func (h *Hangman) playAgain() (bool, error) {
	line, err := h.prompt.ask("Do you want to play again? (y/n): ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// printScoreboard shows the session standings; a lookup failure is only logged
func (h *Hangman) printScoreboard(ctx context.Context) {
	output, err := h.service.GetScoreboard(ctx, &hangmanService.GetScoreboardInput{})
	if err != nil {
		h.logger.Warn("failed to load scoreboard", "error", err)
		return
	}

	board := output.Scoreboard
	if board == nil || board.Played == 0 {
		return
	}
	h.prompt.printf("\nGames played: %d, won: %d, lost: %d\n", board.Played, board.Won, board.Lost)
}

// firstRune returns the first character of the input, or the placeholder for
// an empty line
func firstRune(line string) rune {
	for _, r := range line {
		return r
	}
	return engine.Placeholder
}

// supplierCause returns the supplier failure wrapped by the service so the
// player sees the underlying reason
func supplierCause(err error) error {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		if errs := multi.Unwrap(); len(errs) > 1 {
			return errs[len(errs)-1]
		}
	}
	return err
}
