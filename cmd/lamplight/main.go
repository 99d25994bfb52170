// Package main is the entry point for Lamplight.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/lamplight/internal/game"
	"github.com/samdwyer/lamplight/internal/logger"
	"github.com/samdwyer/lamplight/internal/telemetry"
)

func main() {
	os.Exit(run())
}

// run wires up logging and telemetry and plays the game. It returns the
// process exit code so deferred cleanup runs before main exits.
func run() int {
	// Load .env file for local development
	// This makes HONEYCOMB_LAMPLIGHT_API_KEY and LAMPLIGHT_* available
	envErr := godotenv.Load()

	closeLog, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closeLog()

	if envErr != nil {
		// Not fatal - env vars might be set directly
		logger.Log.WithError(envErr).Debug(".env file not loaded")
	}

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Telemetry setup failed; running without observability.")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				logger.Log.WithError(err).Error("Error shutting down telemetry.")
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		logger.Log.WithError(err).Error("Invalid configuration.")
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	// Create and run game
	g, err := game.New(cfg)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to initialize game.")
		fmt.Fprintf(os.Stderr, "Failed to initialize game: %v\n", err)
		return 1
	}

	if err := g.Run(ctx); err != nil {
		logger.Log.WithError(err).Error("Game error.")
		fmt.Fprintf(os.Stderr, "Game error: %v\n", err)
		return 1
	}
	return 0
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
// The endpoint is only set when an API key is present, so telemetry stays off
// otherwise.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_LAMPLIGHT_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_LAMPLIGHT_DATASET")
	if dataset == "" {
		dataset = "lamplight" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
