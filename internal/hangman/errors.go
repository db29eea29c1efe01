package hangman

// GameError is a custom error type for hangman errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          GameError = "config cannot be nil"
	ErrEmptySecretWord    GameError = "secret word cannot be empty"
	ErrInvalidMaxAttempts GameError = "max attempts cannot be negative"
	ErrAlreadyGuessed     GameError = "letter already guessed"
	ErrGameOver           GameError = "game is already over"
)
