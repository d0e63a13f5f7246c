package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mirefen/GloamBot_Go/internal/actor"
	"github.com/mirefen/GloamBot_Go/internal/bestiary"
	"github.com/mirefen/GloamBot_Go/internal/config"
	"github.com/mirefen/GloamBot_Go/internal/cooldown"
	"github.com/mirefen/GloamBot_Go/internal/database"
	"github.com/mirefen/GloamBot_Go/internal/database/postgres"
	"github.com/mirefen/GloamBot_Go/internal/encounter"
	"github.com/mirefen/GloamBot_Go/internal/event"
	"github.com/mirefen/GloamBot_Go/internal/metrics"
	"github.com/mirefen/GloamBot_Go/internal/server"
	"github.com/mirefen/GloamBot_Go/internal/status"
	"github.com/mirefen/GloamBot_Go/internal/validation"
	"github.com/mirefen/GloamBot_Go/internal/venture"
)

const (
	shutdownTimeout = 10 * time.Second

	eventMaxRetries     = 3
	eventRetryDelay     = time.Second
	eventDeadLetterPath = "logs/events_deadletter.jsonl"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	dbPool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	schemaValidator := validation.NewSchemaValidator()
	for dataPath, schemaPath := range map[string]string{
		config.ConfigPathEncounters: config.SchemaPathEncounters,
		config.ConfigPathMonsters:   config.SchemaPathMonsters,
		config.ConfigPathLootTables: config.SchemaPathLootTables,
	} {
		if err := schemaValidator.ValidateFile(dataPath, schemaPath); err != nil {
			slog.Error("Game data failed schema validation", "file", dataPath, "error", err)
			os.Exit(1)
		}
	}

	encounterCfg, err := encounter.LoadConfig(config.ConfigPathEncounters)
	if err != nil {
		slog.Error("Failed to load encounter configuration", "error", err)
		os.Exit(1)
	}

	bestiaryLoader, err := bestiary.NewLoader(config.ConfigPathMonsters, config.ConfigPathLootTables)
	if err != nil {
		slog.Error("Failed to load bestiary", "error", err)
		os.Exit(1)
	}

	eventBus := event.NewMemoryBus()
	publisher := event.NewResilientPublisher(eventBus, event.ResilientConfig{
		MaxRetries:     eventMaxRetries,
		RetryDelay:     eventRetryDelay,
		DeadLetterPath: eventDeadLetterPath,
	})

	eventMetrics := metrics.NewEventMetricsCollector()
	if err := eventMetrics.Register(eventBus); err != nil {
		slog.Error("Failed to register event metrics", "error", err)
		os.Exit(1)
	}

	actorRepo := postgres.NewActorRepository(dbPool)
	actorService := actor.NewService(actorRepo)

	cooldownService := cooldown.NewPostgresService(dbPool, cooldown.Config{DevMode: cfg.DevMode})
	boosts := status.NewMemoryProvider()

	ventureService := venture.NewService(
		encounterCfg,
		actorService,
		bestiaryLoader,
		cooldownService,
		boosts,
		publisher,
		cfg.GloamMoonForced,
	)

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, ventureService, actorService, boosts)

	go func() {
		slog.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
