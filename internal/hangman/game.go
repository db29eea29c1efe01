package hangman

import (
	"strings"
	"unicode"
)

// Game tracks a single round of hangman
type Game struct {
	secret       []rune
	revealed     []bool
	hidden       int
	guessed      []rune
	guessedSet   map[rune]bool
	difficulty   Difficulty
	maxAttempts  int
	attemptsLeft int
}

// New starts a game for the configured secret word
func New(cfg *Config) (*Game, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	secret := []rune(strings.TrimSpace(cfg.SecretWord))
	if len(secret) == 0 {
		return nil, ErrEmptySecretWord
	}
	if cfg.MaxAttempts < 0 {
		return nil, ErrInvalidMaxAttempts
	}

	difficulty := cfg.Difficulty
	if !difficulty.Valid() {
		difficulty = DifficultyMedium
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = difficulty.MaxAttempts()
	}

	return &Game{
		secret:       secret,
		revealed:     make([]bool, len(secret)),
		hidden:       len(secret),
		guessedSet:   make(map[rune]bool),
		difficulty:   difficulty,
		maxAttempts:  maxAttempts,
		attemptsLeft: maxAttempts,
	}, nil
}

// Guess records a letter. Letters are compared case-insensitively; a repeat
// is rejected without consuming an attempt.
func (g *Game) Guess(letter rune) (*GuessResult, error) {
	letter = unicode.ToLower(letter)

	if g.guessedSet[letter] {
		return nil, ErrAlreadyGuessed
	}
	if g.Outcome().Finished() {
		return nil, ErrGameOver
	}

	g.guessedSet[letter] = true
	g.guessed = append(g.guessed, letter)

	revealed := 0
	for i, c := range g.secret {
		if !g.revealed[i] && unicode.ToLower(c) == letter {
			g.revealed[i] = true
			revealed++
		}
	}
	g.hidden -= revealed

	correct := revealed > 0
	if !correct {
		g.attemptsLeft--
	}

	return &GuessResult{
		Letter:       letter,
		Correct:      correct,
		Revealed:     revealed,
		AttemptsLeft: g.attemptsLeft,
		Outcome:      g.Outcome(),
	}, nil
}

// Outcome reports won once every letter is revealed, lost once the budget is spent
func (g *Game) Outcome() Outcome {
	if g.hidden == 0 {
		return OutcomeWon
	}
	if g.attemptsLeft <= 0 {
		return OutcomeLost
	}
	return OutcomeInProgress
}

// Pattern returns the word with unrevealed letters replaced by the placeholder
func (g *Game) Pattern() string {
	var b strings.Builder
	for i, c := range g.secret {
		if g.revealed[i] {
			b.WriteRune(c)
		} else {
			b.WriteRune(Placeholder)
		}
	}
	return b.String()
}

// GuessedLetters returns every letter tried so far in the order they were guessed
func (g *Game) GuessedLetters() string {
	return string(g.guessed)
}

// HasGuessed reports whether the letter was already tried
func (g *Game) HasGuessed(letter rune) bool {
	return g.guessedSet[unicode.ToLower(letter)]
}

// AttemptsLeft returns the remaining incorrect-guess allowance
func (g *Game) AttemptsLeft() int {
	return g.attemptsLeft
}

// AttemptsUsed returns how many incorrect guesses have been made
func (g *Game) AttemptsUsed() int {
	return g.maxAttempts - g.attemptsLeft
}

// MaxAttempts returns the starting attempt budget
func (g *Game) MaxAttempts() int {
	return g.maxAttempts
}

// Stage returns the gallows stage, which moves in lockstep with incorrect
// guesses and stops at the last drawing of the tier.
func (g *Game) Stage() int {
	stage := g.AttemptsUsed()
	if last := StageCount(g.difficulty) - 1; stage > last {
		return last
	}
	return stage
}

// Gallows renders the drawing for the current stage
func (g *Game) Gallows() string {
	return RenderGallows(g.Stage(), g.difficulty)
}

// Difficulty returns the tier the game is played at
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}

// SecretWord returns the word being guessed
func (g *Game) SecretWord() string {
	return string(g.secret)
}
