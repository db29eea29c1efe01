package tictactoe

// GameError is a custom error type for move validation errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrOutOfBounds  GameError = "invalid move: row and column must be between 1 and 3"
	ErrCellOccupied GameError = "cell already filled"
	ErrGameOver     GameError = "game is already over"
	ErrInvalidInput GameError = "invalid input: row and column must be numbers"
)
