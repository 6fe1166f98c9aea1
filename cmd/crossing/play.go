package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

var flagSprites string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. The board appears once the sprites are loaded.

Controls:
  Arrows/WASD/HJKL  - Move one cell
  Enter/Space       - Start
  X                 - Stop
  R                 - Reset
  Ctrl+S            - Save a screenshot to ~/.crossing/screenshots
  ?                 - Toggle full help
  Q/Ctrl+C          - Quit

Examples:
  crossing play
  crossing play --seed 42
  crossing play --config ./my-crossing.yaml --sprites ./my-sprites.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to a custom sprite catalog YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg, source, err := config.LoadCrossing(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	runErr := tui.Run(cfg, gameCfg, tui.Options{
		Logger:      logger,
		SpritesPath: flagSprites,
	})

	// Close log before potential exit
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
