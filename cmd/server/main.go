package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"terminus-veil/internal/agent"
	"terminus-veil/internal/engine"
	"terminus-veil/internal/infrastructure/storage"
	"terminus-veil/internal/server"
	"terminus-veil/internal/version"
	"terminus-veil/pkg/logger"
	"terminus-veil/pkg/utils"

	"github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath string
		seed       int64
		replayPath string
		autoplay   int
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML config (optional)")
	flag.Int64Var(&seed, "seed", 0, "Dungeon seed (0 keeps config/env value)")
	flag.StringVar(&replayPath, "replay", "", "Path to .tvrp journal to simulate")
	flag.IntVar(&autoplay, "autoplay", 0, "Let the bot play N actions headlessly and print the result")
	flag.Parse()

	cfg, err := engine.LoadConfig(configPath)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	logger.Init(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logger.Log.Info("Starting Terminus Veil...")
	logger.Log.Info(version.Get().String())

	switch {
	case replayPath != "":
		runReplay(replayPath, cfg)
	case autoplay > 0:
		runAutoplay(autoplay, cfg)
	default:
		runServer(cfg)
	}
}

// runReplay проигрывает журнал и печатает итоговый снимок.
func runReplay(path string, cfg engine.Config) {
	logger.Log.Info("Mode: Replay Simulation")

	journal, err := storage.NewReplayService(cfg.ReplayDir).Load(path)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load replay")
	}

	game, err := engine.Replay(*journal, cfg)
	if err != nil {
		logger.Log.WithError(err).Error("Replay diverged")
	}
	if game != nil {
		printJSON(game.BuildState())
	}
}

func runAutoplay(steps int, cfg engine.Config) {
	logger.Log.WithFields(logrus.Fields{"seed": cfg.Seed, "steps": steps}).Info("Mode: Autoplay")

	session := engine.NewSession("autoplay", cfg)
	session.AutoAdvance = true

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum := agent.NewBot(session, utils.NewSource(cfg.Seed)).Run(ctx, steps)

	journal := session.Journal()
	if path, err := storage.NewReplayService(cfg.ReplayDir).Save(session.ID, &journal); err != nil {
		logger.Log.WithError(err).Warn("Failed to save autoplay journal")
	} else {
		logger.Log.WithField("path", path).Info("Autoplay journal saved")
	}

	printJSON(sum)
}

func runServer(cfg engine.Config) {
	srv := server.New(cfg)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Log.WithError(err).Fatal("Server start error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	logger.Log.Info("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.WithError(err).Warn("Shutdown error")
	}

	logger.Log.Info("Done.")
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		logger.Log.WithError(err).Error("marshal output")
		return
	}
	fmt.Println(string(data))
}
