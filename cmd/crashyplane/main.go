package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/shvbsle/crashyplane/internal/assets"
	"github.com/shvbsle/crashyplane/internal/audio"
	"github.com/shvbsle/crashyplane/internal/config"
	"github.com/shvbsle/crashyplane/internal/engine"
	"github.com/shvbsle/crashyplane/internal/frontend"
	"github.com/shvbsle/crashyplane/internal/frontend/console"
	"github.com/shvbsle/crashyplane/internal/frontend/tui"
	"github.com/shvbsle/crashyplane/internal/game"
	"github.com/shvbsle/crashyplane/internal/highscores"
	"github.com/shvbsle/crashyplane/internal/log"
)

// newAudio opens the sound device, falling back to silence when muted or
// when no device is available.
func newAudio(cfg *config.Config) (engine.Audio, func()) {
	if cfg.Mute {
		return engine.SilentAudio{}, func() {}
	}
	player, err := audio.New(cfg.Volume)
	if err != nil {
		log.G().Warn("audio unavailable, continuing without sound", "error", err)
		return engine.SilentAudio{}, func() {}
	}
	return player, player.Close
}

// loadHighScores opens the persisted leaderboard. Any failure leaves an
// in-memory table so a broken data dir never blocks playing.
func loadHighScores() *highscores.Table {
	path, err := highscores.Path()
	if err != nil {
		log.G().Warn("high scores will not be saved", "error", err)
		return highscores.New("")
	}
	table, err := highscores.Load(path)
	if err != nil {
		log.G().Warn("could not load high scores", "path", path, "error", err)
		return highscores.New("")
	}
	log.G().Debug("high scores loaded", "path", path, "best", table.Best())
	return table
}

func main() {
	// Parse CLI flags
	configFlag := flag.String("config", "", "Path to the config file. Defaults to the XDG config dir.")
	frontendFlag := flag.String("frontend", "", "Frontend to run (console, tui). Overrides the config file.")
	logLevelFlag := flag.String("log-level", "", "Set log level (debug, info, warn, error). Defaults to info.")
	flag.Parse()

	// Determine log level from flag (defaults to info if empty)
	logLevel := parseLogLevel(*logLevelFlag)

	configPath := *configFlag
	if configPath == "" {
		path, err := config.Path()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			configPath = path
			if err := config.CreateDefaultConfig(configPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not create default config: %v\n", err)
			}
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *frontendFlag != "" {
		cfg.Frontend = strings.ToLower(*frontendFlag)
	}

	// Setup logging with custom path from config (if specified)
	logFile, err := setupLogging(logLevel, cfg.LogFilePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not setup logging: %v\n", err)
	} else if logFile != nil {
		defer func() {
			if closeErr := logFile.Close(); closeErr != nil {
				log.G().Error("failed to close log file", "error", closeErr)
			}
		}()
	}

	log.G().Info("configuration loaded", "frontend", cfg.Frontend, "fps", cfg.FPS, "mute", cfg.Mute)

	registry := frontend.NewRegistry()
	registry.Register(console.New(cfg.FPS))
	registry.Register(tui.NewFrontend(cfg.FPS))

	fe, err := registry.Resolve(cfg.Frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v (available: %s)\n", err, strings.Join(registry.CommandSuggestions(), ", "))
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sound, closeAudio := newAudio(cfg)
	defer closeAudio()

	director := engine.NewDirector(engine.Config{
		Frame:  game.Frame,
		Assets: assets.Default(),
		Audio:  sound,
		Rand:   rand.New(rand.NewSource(seed)),
	})
	scene := game.NewScene(game.WithScoreBoard(loadHighScores()))
	if err := director.Present(scene, engine.Transition{}); err != nil {
		log.G().Error("could not start game", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.G().Info("launching frontend", "frontend", fe.Name(), "seed", seed)
	if err := fe.Launch(director); err != nil {
		log.G().Error("frontend failed", "frontend", fe.Name(), "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log.G().Info("crashyplane exiting")
}
