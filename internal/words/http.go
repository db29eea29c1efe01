package words

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// httpSupplier fetches words from the random word API
type httpSupplier struct {
	baseURL string
	client  *http.Client
}

// NewHTTP creates a Supplier backed by the random word API
func NewHTTP(cfg *Config) (*httpSupplier, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	client := cfg.HTTPClient
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &httpSupplier{
		baseURL: baseURL,
		client:  client,
	}, nil
}

// RandomWord issues a single GET for one word and returns the first element
// of the JSON array in the response. There is no retry.
func (s *httpSupplier) RandomWord(ctx context.Context, input *RandomWordInput) (*RandomWordOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	endpoint, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", s.baseURL, err)
	}
	query := endpoint.Query()
	query.Set("number", "1")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build word request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch word: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var words []string
	if err := json.NewDecoder(resp.Body).Decode(&words); err != nil {
		return nil, fmt.Errorf("failed to decode word response: %w", err)
	}
	if len(words) == 0 {
		return nil, ErrEmptyResponse
	}

	word := strings.ToLower(strings.TrimSpace(words[0]))
	if word == "" {
		return nil, ErrEmptyResponse
	}

	return &RandomWordOutput{
		Word: word,
	}, nil
}
