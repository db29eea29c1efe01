package words

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/termgames/internal/hangman"
)

// DefaultBaseURL is the public random word endpoint
const DefaultBaseURL = "https://random-word-api.herokuapp.com/word"

// Config holds configuration for the HTTP word supplier
type Config struct {
	// BaseURL is the word endpoint; defaults to DefaultBaseURL
	BaseURL string

	// HTTPClient is used for requests; defaults to a client with Timeout
	HTTPClient *http.Client

	// Timeout bounds the request when HTTPClient is not provided
	Timeout time.Duration
}

// RandomWordInput contains parameters for fetching a word
type RandomWordInput struct {
	// Difficulty of the game the word is for. The random word API serves
	// every tier from the same list.
	Difficulty hangman.Difficulty
}

// RandomWordOutput contains the fetched word
type RandomWordOutput struct {
	// Word is the lowercase secret word
	Word string
}
