package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-crossing/internal/assets"
)

// SpriteTable renders the sprite catalog as a static table.
func SpriteTable(sprites []assets.Sprite) string {
	columns := []table.Column{
		{Title: "ID", Width: 14},
		{Title: "Size", Width: 9},
		{Title: "Kind", Width: 6},
		{Title: "Look", Width: 8},
		{Title: "Colors", Width: 26},
	}

	rows := make([]table.Row, 0, len(sprites))
	for _, s := range sprites {
		kind, look := "entity", s.Glyph
		if s.IsTile() {
			kind, look = "tile", string(s.Fill)
		}
		rows = append(rows, table.Row{
			s.ID,
			fmt.Sprintf("%gx%g", s.Width, s.Height),
			kind,
			fmt.Sprintf("%q", look),
			fmt.Sprintf("%s on %s", s.Color, s.Background),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+2), // Header and its border
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
