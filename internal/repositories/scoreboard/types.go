package scoreboard

import "github.com/KirkDiggler/termgames/internal/models"

type RecordResultInput struct {
	Result *models.GameResult
}

type GetScoreboardInput struct {
	SessionID string
}
