// Package assets provides the sprite catalog: image dimensions used by the
// game's layout and collision math, plus the glyphs the terminal renderer draws.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

//go:embed sprites.yaml
var defaultSpritesYAML []byte

// ErrUnknownSprite is returned when a required sprite id is not in the catalog.
var ErrUnknownSprite = errors.New("assets: unknown sprite")

// Sprite describes one image.
type Sprite struct {
	ID         string
	Width      float64 // Source image width in pixels
	Height     float64 // Source image height in pixels
	Glyph      string  // Text drawn for entity sprites
	Fill       rune    // Rune repeated across a cell for tile sprites
	Color      core.Color
	Background core.Color
}

// IsTile reports whether the sprite is a background tile.
func (s Sprite) IsTile() bool {
	return s.Fill != 0
}

// yamlCatalog is the on-disk layout of a catalog file.
type yamlCatalog struct {
	Sprites []yamlSprite `yaml:"sprites"`
}

type yamlSprite struct {
	ID         string  `yaml:"id"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Glyph      string  `yaml:"glyph,omitempty"`
	Fill       string  `yaml:"fill,omitempty"`
	Color      string  `yaml:"color,omitempty"`
	Background string  `yaml:"background,omitempty"`
}

// Catalog is the resource provider for sprites. Until Load succeeds it
// reports zero widths and holds readiness callbacks.
type Catalog struct {
	mu        sync.Mutex
	sprites   map[string]Sprite
	loaded    bool
	callbacks []func()
}

// NewCatalog creates an empty, not yet loaded catalog.
func NewCatalog() *Catalog {
	return &Catalog{sprites: make(map[string]Sprite)}
}

// LoadDefault loads the embedded sprite catalog.
func (c *Catalog) LoadDefault() error {
	return c.Load(defaultSpritesYAML)
}

// LoadFile loads a sprite catalog from disk.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("assets: failed to read %s: %w", path, err)
	}
	return c.Load(data)
}

// Load parses a catalog and marks it loaded. Readiness callbacks run once,
// after the lock is released. A failed load leaves the catalog untouched.
func (c *Catalog) Load(data []byte) error {
	sprites, err := parseCatalog(data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.sprites = sprites
	c.loaded = true
	pending := c.callbacks
	c.callbacks = nil
	c.mu.Unlock()

	for _, fn := range pending {
		fn()
	}
	return nil
}

// OnAllLoaded registers fn to run when the catalog is loaded.
// If it already is, fn runs immediately.
func (c *Catalog) OnAllLoaded(fn func()) {
	c.mu.Lock()
	if !c.loaded {
		c.callbacks = append(c.callbacks, fn)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	fn()
}

// Loaded reports whether a catalog has been loaded.
func (c *Catalog) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// ImageWidth returns the pixel width of a sprite, or 0 if unknown.
func (c *Catalog) ImageWidth(id string) float64 {
	s, ok := c.Sprite(id)
	if !ok {
		return 0
	}
	return s.Width
}

// Sprite looks up a sprite by id.
func (c *Catalog) Sprite(id string) (Sprite, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.sprites[id]
	return s, ok
}

// Require checks that every id is present.
func (c *Catalog) Require(ids ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		if _, ok := c.sprites[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownSprite, id)
		}
	}
	return nil
}

// List returns all sprites sorted by id.
func (c *Catalog) List() []Sprite {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]Sprite, 0, len(c.sprites))
	for _, s := range c.sprites {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// parseCatalog decodes and validates catalog YAML.
func parseCatalog(data []byte) (map[string]Sprite, error) {
	var raw yamlCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("assets: failed to parse catalog: %w", err)
	}
	if len(raw.Sprites) == 0 {
		return nil, errors.New("assets: catalog has no sprites")
	}

	sprites := make(map[string]Sprite, len(raw.Sprites))
	for i, ys := range raw.Sprites {
		if ys.ID == "" {
			return nil, fmt.Errorf("assets: sprite %d has no id", i)
		}
		if _, dup := sprites[ys.ID]; dup {
			return nil, fmt.Errorf("assets: duplicate sprite %q", ys.ID)
		}
		if ys.Width <= 0 || ys.Height <= 0 {
			return nil, fmt.Errorf("assets: sprite %q needs positive width and height", ys.ID)
		}

		fg, err := core.ParseColor(ys.Color)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", ys.ID, err)
		}
		bg, err := core.ParseColor(ys.Background)
		if err != nil {
			return nil, fmt.Errorf("assets: sprite %q: %w", ys.ID, err)
		}

		var fill rune
		if ys.Fill != "" {
			runes := []rune(ys.Fill)
			if len(runes) != 1 {
				return nil, fmt.Errorf("assets: sprite %q fill must be a single character", ys.ID)
			}
			fill = runes[0]
		}
		if fill == 0 && ys.Glyph == "" {
			return nil, fmt.Errorf("assets: sprite %q needs a glyph or a fill", ys.ID)
		}

		sprites[ys.ID] = Sprite{
			ID:         ys.ID,
			Width:      ys.Width,
			Height:     ys.Height,
			Glyph:      ys.Glyph,
			Fill:       fill,
			Color:      fg,
			Background: bg,
		}
	}
	return sprites, nil
}
