package hangman

import (
	"log/slog"

	"github.com/KirkDiggler/termgames/internal/common/clock"
	"github.com/KirkDiggler/termgames/internal/common/uuid"
	engine "github.com/KirkDiggler/termgames/internal/hangman"
	"github.com/KirkDiggler/termgames/internal/models"
	"github.com/KirkDiggler/termgames/internal/repositories/scoreboard"
	"github.com/KirkDiggler/termgames/internal/words"
)

// Config holds configuration for the hangman service
type Config struct {
	// SessionID identifies this run; a new one is generated when empty
	SessionID string

	// Repository dependencies
	ScoreboardRepo scoreboard.Repository

	// Service dependencies
	WordSupplier  words.Supplier
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// StartGameInput contains parameters for starting a game
type StartGameInput struct {
	// Difficulty selects the attempt budget
	Difficulty engine.Difficulty
}

// StartGameOutput contains the started game
type StartGameOutput struct {
	// GameID is the unique identifier for the game
	GameID string

	// Game is the running game, for rendering
	Game *engine.Game
}

// GuessInput contains parameters for guessing a letter
type GuessInput struct {
	// GameID is the game to guess in
	GameID string

	// Letter is the guessed character
	Letter rune
}

// GuessOutput contains the result of a guess
type GuessOutput struct {
	// Result describes what the guess changed
	Result *engine.GuessResult

	// Outcome is the game outcome after the guess
	Outcome engine.Outcome

	// Finished is true when this guess ended the game
	Finished bool
}

// GetScoreboardInput contains parameters for retrieving the scoreboard
type GetScoreboardInput struct {
}

// GetScoreboardOutput contains the session standings
type GetScoreboardOutput struct {
	Scoreboard *models.Scoreboard
}
