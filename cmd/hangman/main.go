package main

import (
	"context"
	"os"
	"time"

	"github.com/KirkDiggler/termgames/internal/common/clock"
	"github.com/KirkDiggler/termgames/internal/common/uuid"
	"github.com/KirkDiggler/termgames/internal/config"
	"github.com/KirkDiggler/termgames/internal/handlers/cli"
	"github.com/KirkDiggler/termgames/internal/repositories/scoreboard"
	hangmanService "github.com/KirkDiggler/termgames/internal/services/hangman"
	"github.com/KirkDiggler/termgames/internal/words"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		cfg, _ = config.Load("")
	}

	logger := cfg.NewLogger()
	if err != nil {
		logger.Warn("failed to load .env file, using environment only", "error", err)
	}

	// Initialize the scoreboard repository
	var scoreboardRepo scoreboard.Repository = scoreboard.NewMemory()
	if cfg.UseRedis() {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		repo, err := scoreboard.NewRedis(&scoreboard.Config{
			RedisClient: redisClient,
			TTL:         cfg.Redis.ScoreboardTTL,
		})
		if err != nil {
			logger.Error("failed to create scoreboard repository", "error", err)
			os.Exit(1)
		}
		scoreboardRepo = repo
	}

	// Initialize the word supplier
	supplier, err := words.NewHTTP(&words.Config{
		BaseURL: cfg.WordAPI.URL,
		Timeout: cfg.WordAPI.Timeout,
	})
	if err != nil {
		logger.Error("failed to create word supplier", "error", err)
		os.Exit(1)
	}

	// Initialize hangman service
	svc, err := hangmanService.New(&hangmanService.Config{
		ScoreboardRepo: scoreboardRepo,
		WordSupplier:   supplier,
		Clock:          &clock.DefaultClock{},
		UUIDGenerator:  uuid.New(),
		Logger:         logger,
	})
	if err != nil {
		logger.Error("failed to create hangman service", "error", err)
		os.Exit(1)
	}

	game, err := cli.NewHangman(&cli.HangmanConfig{
		In:      os.Stdin,
		Out:     os.Stdout,
		Service: svc,
		Logger:  logger,
		Plain:   cfg.Output.Plain,
	})
	if err != nil {
		logger.Error("failed to create hangman", "error", err)
		os.Exit(1)
	}

	start := time.Now()
	if err := game.Run(context.Background()); err != nil {
		logger.Error("hangman stopped", "error", err, "session_id", svc.SessionID())
		os.Exit(1)
	}
	logger.Debug("hangman session ended", "session_id", svc.SessionID(), "duration", time.Since(start))
}
