package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"hive_go/internal/config"
	"hive_go/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	radius := flag.Int("radius", 0, "board radius (overrides the config file)")
	debug := flag.Bool("debug", false, "debug overlay, debug logging and the C clipboard key")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	if *radius != 0 {
		cfg.Board.Radius = *radius
	}
	if *debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}

	logger, err := cfg.Logger(os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("set up logging")
	}

	screen, err := ui.NewGameScreen(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("create game screen")
	}
	ebiten.SetVsyncEnabled(true)
	ebiten.SetTPS(30)
	ebiten.SetWindowSize(cfg.Display.WindowWidth, cfg.Display.WindowHeight)
	ebiten.SetWindowTitle("Hive")

	if err := ebiten.RunGame(screen); err != nil {
		logger.Fatal().Err(err).Msg("run game")
	}
}
