package hangman

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/termgames/internal/common/clock"
	"github.com/KirkDiggler/termgames/internal/common/uuid"
	engine "github.com/KirkDiggler/termgames/internal/hangman"
	"github.com/KirkDiggler/termgames/internal/models"
	"github.com/KirkDiggler/termgames/internal/repositories/scoreboard"
	"github.com/KirkDiggler/termgames/internal/words"
)

// activeGame is a game that has not reached a terminal state yet
type activeGame struct {
	game      *engine.Game
	startedAt time.Time
}

// service implements the Service interface. It is driven by a single
// terminal loop and is not safe for concurrent use.
type service struct {
	sessionID      string
	scoreboardRepo scoreboard.Repository
	wordSupplier   words.Supplier
	clock          clock.Clock
	uuidGenerator  uuid.UUID
	logger         *slog.Logger
	games          map[string]*activeGame
}

// New creates a new hangman service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.WordSupplier == nil {
		return nil, ErrNilWordSupplier
	}
	if cfg.ScoreboardRepo == nil {
		return nil, ErrNilScoreboardRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sessionID := cfg.SessionID
	if sessionID == "" {
		sessionID = cfg.UUIDGenerator.NewUUID()
	}

	return &service{
		sessionID:      sessionID,
		scoreboardRepo: cfg.ScoreboardRepo,
		wordSupplier:   cfg.WordSupplier,
		clock:          cfg.Clock,
		uuidGenerator:  cfg.UUIDGenerator,
		logger:         logger.With("session_id", sessionID),
		games:          make(map[string]*activeGame),
	}, nil
}

// SessionID returns the identifier of this play session
func (s *service) SessionID() string {
	return s.sessionID
}

// StartGame fetches one word from the supplier and starts a game with it
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	word, err := s.wordSupplier.RandomWord(ctx, &words.RandomWordInput{
		Difficulty: input.Difficulty,
	})
	if err != nil {
		s.logger.Error("word supplier failed", "error", err)
		return nil, fmt.Errorf("%w: %w", ErrWordUnavailable, err)
	}

	game, err := engine.New(&engine.Config{
		SecretWord: word.Word,
		Difficulty: input.Difficulty,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWordUnavailable, err)
	}

	gameID := s.uuidGenerator.NewUUID()
	s.games[gameID] = &activeGame{
		game:      game,
		startedAt: s.clock.Now(),
	}

	s.logger.Info("game started",
		"game_id", gameID,
		"difficulty", game.Difficulty(),
		"word_length", len([]rune(game.SecretWord())),
		"max_attempts", game.MaxAttempts(),
	)

	return &StartGameOutput{
		GameID: gameID,
		Game:   game,
	}, nil
}

// Guess applies a letter and records the game once it finishes
func (s *service) Guess(ctx context.Context, input *GuessInput) (*GuessOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	active, ok := s.games[input.GameID]
	if !ok {
		return nil, ErrGameNotFound
	}

	result, err := active.game.Guess(input.Letter)
	if err != nil {
		s.logger.Debug("guess rejected", "game_id", input.GameID, "letter", string(input.Letter), "error", err)
		return nil, err
	}

	s.logger.Debug("guess applied",
		"game_id", input.GameID,
		"letter", string(result.Letter),
		"correct", result.Correct,
		"attempts_left", result.AttemptsLeft,
	)

	output := &GuessOutput{
		Result:   result,
		Outcome:  result.Outcome,
		Finished: result.Outcome.Finished(),
	}

	if output.Finished {
		s.finishGame(ctx, input.GameID, active)
	}

	return output, nil
}

// GetScoreboard returns the standings of this session
func (s *service) GetScoreboard(ctx context.Context, input *GetScoreboardInput) (*GetScoreboardOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	board, err := s.scoreboardRepo.GetScoreboard(ctx, &scoreboard.GetScoreboardInput{
		SessionID: s.sessionID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get scoreboard: %w", err)
	}

	return &GetScoreboardOutput{
		Scoreboard: board,
	}, nil
}

// finishGame stores the result and forgets the game. A storage failure is
// logged and does not interrupt play.
func (s *service) finishGame(ctx context.Context, gameID string, active *activeGame) {
	delete(s.games, gameID)

	game := active.game
	result := &models.GameResult{
		ID:           gameID,
		SessionID:    s.sessionID,
		Difficulty:   string(game.Difficulty()),
		SecretWord:   game.SecretWord(),
		Won:          game.Outcome() == engine.OutcomeWon,
		AttemptsUsed: game.AttemptsUsed(),
		StartedAt:    active.startedAt,
		FinishedAt:   s.clock.Now(),
	}

	s.logger.Info("game finished",
		"game_id", gameID,
		"outcome", game.Outcome(),
		"attempts_used", result.AttemptsUsed,
		"duration", result.FinishedAt.Sub(result.StartedAt),
	)

	if err := s.scoreboardRepo.RecordResult(ctx, &scoreboard.RecordResultInput{
		Result: result,
	}); err != nil {
		s.logger.Warn("failed to record game result", "game_id", gameID, "error", err)
	}
}
