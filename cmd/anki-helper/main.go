package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kpauljoseph/ankihelper/internal/anki"
	"github.com/kpauljoseph/ankihelper/internal/config"
	"github.com/kpauljoseph/ankihelper/internal/server"
	"github.com/kpauljoseph/ankihelper/internal/translate"
	"github.com/kpauljoseph/ankihelper/pkg/logger"
	"github.com/kpauljoseph/ankihelper/pkg/version"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file (optional)")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(
		logger.WithPrefix("[anki-helper] "),
		logger.WithVerbose(*verbose),
	)

	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	log.Info("Starting %s", version.GetVersionInfo())

	cfg, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, config.ErrMissingAPIKey) {
			log.Fatal("%v", err)
		}
		log.Fatal("Error loading config: %v", err)
	}

	log.Debug("AnkiConnect URL: %s", cfg.AnkiConnectURL)
	log.Debug("Deck name: %s", cfg.DeckName)
	log.Debug("Chat model: %s", cfg.OpenAI.Model)

	translator := translate.New(
		translate.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL),
		cfg.OpenAI.Model,
		log,
	)

	ankiService := anki.NewService(cfg.AnkiConnectURL, log)

	log.Debug("Checking Anki connection...")
	if v, err := ankiService.CheckConnection(context.Background()); err != nil {
		log.Info("Anki is not reachable yet, cards cannot be added until it is: %v", err)
	} else {
		log.Info("Connected to AnkiConnect (version %d)", v)
	}

	srv := server.New(cfg, translator, ankiService, log)

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal("Server error: %v", err)
		}
	}()

	<-shutdownChan
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server shutdown error: %v", err)
	}
}
