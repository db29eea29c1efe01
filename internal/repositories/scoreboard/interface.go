package scoreboard

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/termgames/internal/repositories/scoreboard Repository

import (
	"context"

	"github.com/KirkDiggler/termgames/internal/models"
)

// Repository defines the interface for session scoreboard storage
type Repository interface {
	// RecordResult adds a finished game to its session's scoreboard
	RecordResult(ctx context.Context, input *RecordResultInput) error

	// GetScoreboard retrieves the standings of a session
	GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*models.Scoreboard, error)
}
