package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/assets"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

var spritesCmd = &cobra.Command{
	Use:   "sprites",
	Short: "List the sprite catalog",
	Long: `Shows every sprite with its source image size and terminal look.
Widths drive the collision math, so a custom catalog changes gameplay.

Examples:
  crossing sprites
  crossing sprites --sprites ./my-sprites.yaml`,
	Args: cobra.NoArgs,
	Run:  runSprites,
}

func init() {
	spritesCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to a custom sprite catalog YAML")
}

func runSprites(cmd *cobra.Command, args []string) {
	catalog := assets.NewCatalog()

	var err error
	if flagSprites == "" {
		err = catalog.LoadDefault()
	} else {
		err = catalog.LoadFile(flagSprites)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sprites: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Sprites:")
	fmt.Println()
	fmt.Println(tui.SpriteTable(catalog.List()))
	fmt.Println()
	fmt.Println("Run 'crossing play' to play.")
}
