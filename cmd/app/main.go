package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/upi-wallet/pkg/config"
	"github.com/chris/upi-wallet/pkg/events"
	"github.com/chris/upi-wallet/pkg/fixtures"
	"github.com/chris/upi-wallet/pkg/handlers"
	"github.com/chris/upi-wallet/pkg/storage/latency"
	"github.com/chris/upi-wallet/pkg/storage/memory"
	"github.com/chris/upi-wallet/pkg/websockets"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	// Amounts go over the wire as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	policy, _ := cfg.ResetPolicy()
	loc, _ := cfg.Location()

	snap, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		log.Fatalf("failed to load fixtures: %v", err)
	}
	store := latency.New(
		memory.New(snap, memory.WithResetPolicy(policy), memory.WithLocation(loc)),
		cfg.LatencyMin, cfg.LatencyMax,
	)

	var publisher events.Publisher = &events.NoOpPublisher{}
	if cfg.SQSQueueURL != "" {
		awsCfg, err := aws_config.LoadDefaultConfig(context.TODO())
		if err != nil {
			log.Fatalf("unable to load SDK config, %v", err)
		}
		publisher = events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL)
		logger.Info("publishing payment events to SQS", "queue_url", cfg.SQSQueueURL)
	}

	hub := websockets.NewHub()
	router := handlers.NewRouter(handlers.Dependencies{
		Store:       store,
		Events:      publisher,
		Connections: hub,
		Publisher:   hub,
		Location:    loc,
		Logger:      logger,
	})

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", "addr", server.Addr, "daily_reset_policy", policy, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
