// Package main is the entry point for dungeoncrawl.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	// Load .env file for local development. Not fatal: env vars might be
	// set directly.
	envErr := godotenv.Load()

	logFile, err := logger.Init()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log := logger.Log.WithField("component", "main")
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded.")
	}

	setupOTelEnv()

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		// The game still works without traces.
		log.WithError(err).Warn("Telemetry setup failed, running without tracing.")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.WithError(err).Error("Telemetry shutdown failed.")
			}
		}()
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		fatal(log, err, "Invalid configuration.")
	}
	actors, err := gamedata.LoadActors()
	if err != nil {
		fatal(log, err, "Failed to load actor definitions.")
	}
	log.WithFields(logrus.Fields{
		"seed":      cfg.Seed,
		"width":     cfg.Width,
		"height":    cfg.Height,
		"generator": cfg.Generator,
		"tracing":   telemetry.Enabled(),
	}).Info("Starting.")

	g, err := game.New(ctx, cfg, actors)
	if err != nil {
		fatal(log, err, "Failed to initialize game.")
	}

	runErr := g.Run(ctx)
	g.Close()
	if runErr != nil {
		fatal(log, runErr, "Game error.")
	}
}

// fatal logs err and also prints it, since the log may be going nowhere.
func fatal(log *logrus.Entry, err error, msg string) {
	log.WithError(err).Error(msg)
	fmt.Fprintf(os.Stderr, "%s %v\n", msg, err)
	os.Exit(1)
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is
// configured and no endpoint has been set explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_API_KEY")
	if apiKey == "" || telemetry.Enabled() {
		return
	}

	dataset := os.Getenv("HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
