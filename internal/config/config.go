// Package config loads brailleplot.toml.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"

	"brailleplot/internal/braille"
)

// FileName is the name Find looks for.
const FileName = "brailleplot.toml"

// Config holds the render settings shared by the CLI and the viewer.
type Config struct {
	// Width and Height are the canvas size in cells.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// Border draws the box-drawing frame around the canvas.
	Border bool `toml:"border"`

	// Color enables SGR escapes. When false, output is plain braille.
	Color bool `toml:"color"`

	// Blend is "overwrite" or "keep-first".
	Blend string `toml:"blend"`

	// Palette lists colors cycled through by dataset layers and scenes.
	// Entries are ANSI names ("bright-cyan") or hex ("#ff8800").
	Palette []string `toml:"palette"`

	// Title is printed centered above the frame. Empty means none.
	Title string `toml:"title"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:   60,
		Height:  15,
		Border:  true,
		Color:   true,
		Blend:   "overwrite",
		Palette: []string{"cyan", "#ff8800", "magenta"},
	}
}

// Load returns Default overlaid with the keys set in the TOML file at path.
// Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "parsing %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errors.Errorf("parsing %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, path)
	}
	return cfg, nil
}

// Find searches for brailleplot.toml starting from dir and walking up to
// parent directories. It returns ("", Default(), nil) if none is found.
func Find(dir string) (string, Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", Config{}, errors.Wrap(err, "resolving config dir")
	}
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(path)
			if err != nil {
				return "", Config{}, err
			}
			return path, cfg, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", Default(), nil
		}
		dir = parent
	}
}

// Validate checks sizes, blend mode and palette entries.
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("negative size %dx%d", c.Width, c.Height)
	}
	if _, err := c.BlendMode(); err != nil {
		return err
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// BlendMode parses Blend.
func (c Config) BlendMode() (braille.BlendMode, error) {
	return braille.ParseBlendMode(c.Blend)
}

// Colors parses Palette. With Color off every entry is NoColor, so callers
// can draw unconditionally.
func (c Config) Colors() ([]braille.Color, error) {
	out := make([]braille.Color, 0, len(c.Palette))
	for i, s := range c.Palette {
		clr, err := braille.ParseColor(s)
		if err != nil {
			return nil, errors.Wrapf(err, "palette[%d]", i)
		}
		if !c.Color {
			clr = braille.NoColor
		}
		out = append(out, clr)
	}
	return out, nil
}

// Render frames cv with the configured border and title. With Color off the
// SGR escapes are stripped, keeping text overrides and the frame.
func (c Config) Render(cv *braille.Canvas) string {
	out := cv.RenderWithOptions(c.Border, c.Title)
	if !c.Color {
		out = ansi.Strip(out)
	}
	return out
}
