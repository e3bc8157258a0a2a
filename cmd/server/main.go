package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pinnacle-pathways/matchtrack/internal/common/clock"
	"github.com/pinnacle-pathways/matchtrack/internal/common/uuid"
	"github.com/pinnacle-pathways/matchtrack/internal/handlers/api"
	"github.com/pinnacle-pathways/matchtrack/internal/models"
	actionLogRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/actionlog"
	matchRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/match"
	sportRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/sport"
	visitRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/visit"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analysis"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analytics"
)

func main() {
	// Load .env if present; real deployments set the environment directly
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	matches, err := matchRepo.NewRedis(&matchRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create match repository", zap.Error(err))
	}

	sports, err := sportRepo.NewRedis(&sportRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create sport repository", zap.Error(err))
	}

	visits, err := visitRepo.NewRedis(&visitRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create visit repository", zap.Error(err))
	}

	actions, err := actionLogRepo.NewRedis(&actionLogRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.Fatal("Failed to create action log repository", zap.Error(err))
	}

	if err := seedSports(ctx, sports); err != nil {
		logger.Fatal("Failed to seed sport registry", zap.Error(err))
	}

	// Initialize services
	analysisSvc, err := analysis.New(&analysis.Config{
		MatchRepo:     matches,
		SportRepo:     sports,
		ActionLogRepo: actions,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal("Failed to create analysis service", zap.Error(err))
	}

	analyticsSvc, err := analytics.New(&analytics.Config{
		VisitRepo:     visits,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		logger.Fatal("Failed to create analytics service", zap.Error(err))
	}

	handler, err := api.New(&api.Config{
		AnalysisService:  analysisSvc,
		AnalyticsService: analyticsSvc,
		SportRepo:        sports,
		ActionLogRepo:    actions,
		Logger:           logger,
	})
	if err != nil {
		logger.Fatal("Failed to create HTTP handlers", zap.Error(err))
	}

	server := &http.Server{
		Addr:    getEnv("HTTP_ADDR", ":8080"),
		Handler: handler,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error shutting down HTTP server", zap.Error(err))
	}

	logger.Info("Server has been shut down")
}

// seedSports populates the sport registry with a starting vocabulary
// when it is empty. Existing entries are left untouched.
func seedSports(ctx context.Context, repo sportRepo.Repository) error {
	existing, err := repo.ListSports(ctx, &sportRepo.ListSportsInput{})
	if err != nil {
		return err
	}

	if len(existing.Sports) > 0 {
		return nil
	}

	defaults := []*models.Sport{
		{
			ID:         "football",
			Name:       "Football",
			EventTypes: []string{"Goal", "Foul", "Corner", "Substitution"},
		},
		{
			ID:         "basketball",
			Name:       "Basketball",
			EventTypes: []string{"Basket", "Three Pointer", "Free Throw", "Foul", "Timeout"},
		},
		{
			ID:         "volleyball",
			Name:       "Volleyball",
			EventTypes: []string{"Serve", "Spike", "Block", "Point"},
		},
	}

	for _, sp := range defaults {
		if err := repo.SaveSport(ctx, &sportRepo.SaveSportInput{Sport: sp}); err != nil {
			return err
		}
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
