package main

import (
	"errors"
	"flag"
	"os"

	"lanternwalk/internal/config"
	"lanternwalk/internal/game"
	"lanternwalk/internal/graphics"
	"lanternwalk/internal/logger"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the YAML config file")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)
	log := logger.New(logger.Options{Level: cfg.Logging.Level, File: cfg.Logging.File, Stderr: true})
	defer log.Close()
	if cfgErr != nil {
		log.Warn("config unreadable, using defaults", "error", cfgErr)
	}

	g, err := game.New(cfg, *configPath, log)
	if err != nil {
		log.Error("startup failed", "error", err)
		os.Exit(1)
	}

	opts := graphics.Options{
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Title:      cfg.Window.Title,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
		FixedStep:  cfg.Window.FixedStep,
	}
	err = graphics.Run(opts, graphics.Loop{
		Update: g.Update,
		Draw:   g.Draw,
		Resize: g.Resize,
		Close:  g.Close,
	})
	if errors.Is(err, graphics.ErrNoSurface) {
		log.Error("cannot start", "error", err)
		log.Close()
		os.Exit(1)
	}
}
