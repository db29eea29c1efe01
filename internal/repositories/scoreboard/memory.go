package scoreboard

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/termgames/internal/models"
)

// memoryRepository keeps scoreboards for the lifetime of the process
type memoryRepository struct {
	mu      sync.Mutex
	results map[string][]*models.GameResult
}

// NewMemory creates an in-process scoreboard repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		results: make(map[string][]*models.GameResult),
	}
}

// RecordResult stores a copy of the result under its session
func (r *memoryRepository) RecordResult(ctx context.Context, input *RecordResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}
	if input.Result.SessionID == "" {
		return errors.New("session ID is required")
	}

	result := *input.Result

	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.SessionID] = append(r.results[result.SessionID], &result)
	return nil
}

// GetScoreboard tallies the stored results of a session
func (r *memoryRepository) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	board := &models.Scoreboard{
		SessionID: input.SessionID,
		Results:   make([]*models.GameResult, 0, len(r.results[input.SessionID])),
	}
	for _, stored := range r.results[input.SessionID] {
		result := *stored
		board.Results = append(board.Results, &result)
		board.Played++
		if result.Won {
			board.Won++
		} else {
			board.Lost++
		}
	}

	return board, nil
}
