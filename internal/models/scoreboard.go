package models

// Scoreboard represents the standings of a play session
type Scoreboard struct {
	// SessionID identifies the play session
	SessionID string

	// Played is the number of finished games
	Played int

	// Won is the number of games won
	Won int

	// Lost is the number of games lost
	Lost int

	// Results contains every finished game, oldest first
	Results []*GameResult
}
