package hangman

import "context"

// Service defines the interface for hangman game operations
type Service interface {
	// StartGame fetches a secret word and starts a new game
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Guess applies a letter to a running game
	Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error)

	// GetScoreboard returns the standings of the current play session
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error)
}
