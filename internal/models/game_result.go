package models

import (
	"time"
)

// GameResult records a finished hangman game
type GameResult struct {
	// ID is the unique identifier for the game
	ID string

	// SessionID identifies the run of the program the game was played in
	SessionID string

	// Difficulty is the tier the game was played at
	Difficulty string

	// SecretWord is the word that had to be guessed
	SecretWord string

	// Won is true when the word was fully revealed
	Won bool

	// AttemptsUsed is the number of incorrect guesses made
	AttemptsUsed int

	// StartedAt is when the word was supplied
	StartedAt time.Time

	// FinishedAt is when the game reached a terminal state
	FinishedAt time.Time
}
