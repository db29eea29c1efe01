package hangman

// ServiceError is a custom error type for hangman service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrGameNotFound      ServiceError = "game not found"
	ErrWordUnavailable   ServiceError = "failed to get a random word"
	ErrNilInput          ServiceError = "input cannot be nil"
	ErrNilConfig         ServiceError = "config cannot be nil"
	ErrNilWordSupplier   ServiceError = "word supplier cannot be nil"
	ErrNilScoreboardRepo ServiceError = "scoreboard repository cannot be nil"
	ErrNilClock          ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator  ServiceError = "UUID generator cannot be nil"
)
