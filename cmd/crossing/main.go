// crossing is a road crossing arcade game for the terminal.
//
// Usage:
//
//	crossing play      - Play the game
//	crossing config    - Print the effective configuration
//	crossing sprites   - List the sprite catalog
//
// Global flags:
//
//	--fps <rate>          - Set frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Use a custom config YAML
//	--log-file <path>     - Write logs to a file (default: discard)
//	--log-level <level>   - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Crossing - get across the road in your terminal",
	Long: `Crossing is a terminal arcade game. Walk from the grass to the water
while bugs race along the stone rows. Three hits and the game is over.

Available commands:
  play     - Play the game
  config   - Print the effective configuration
  sprites  - List the sprite catalog

Examples:
  crossing play
  crossing play --seed 42 --log-file crossing.log --log-level debug
  crossing config --default > configs/crossing.yaml
  crossing sprites`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(spritesCmd)
}
