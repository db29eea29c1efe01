package hangman

import "strings"

// Difficulty is a named tier fixing the attempt budget and the gallows art length
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MaxAttempts returns the number of incorrect guesses allowed for the tier.
// Unknown tiers get the medium budget.
func (d Difficulty) MaxAttempts() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyHard:
		return 4
	default:
		return 7
	}
}

// Valid reports whether d is one of the known tiers
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ParseDifficulty maps user input to a tier, ignoring case and surrounding
// whitespace. Anything unrecognised yields medium with ok set to false.
func ParseDifficulty(s string) (Difficulty, bool) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return DifficultyMedium, false
	}
	return d, true
}
