package hangman

// Placeholder marks an unrevealed letter in the pattern
const Placeholder = '_'

// Outcome is the result of a game so far
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// Finished reports whether the outcome is terminal
func (o Outcome) Finished() bool {
	return o == OutcomeWon || o == OutcomeLost
}

// Config holds the parameters of a single game
type Config struct {
	// SecretWord is the word to guess
	SecretWord string

	// Difficulty selects the attempt budget and gallows art; unknown tiers play as medium
	Difficulty Difficulty

	// MaxAttempts overrides the tier's attempt budget when greater than zero
	MaxAttempts int
}

// GuessResult describes what a single accepted guess did
type GuessResult struct {
	// Letter is the normalised (lowercase) letter that was recorded
	Letter rune

	// Correct is true when the secret word contains the letter
	Correct bool

	// Revealed is the number of positions uncovered by this guess
	Revealed int

	// AttemptsLeft is the remaining budget after the guess
	AttemptsLeft int

	// Outcome is the game outcome after the guess
	Outcome Outcome
}
