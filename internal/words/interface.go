package words

//go:generate mockgen -package=mocks -destination=mocks/mock_supplier.go github.com/KirkDiggler/termgames/internal/words Supplier

import "context"

// Supplier provides secret words for hangman games
type Supplier interface {
	// RandomWord returns a single random word
	RandomWord(ctx context.Context, input *RandomWordInput) (*RandomWordOutput, error)
}
