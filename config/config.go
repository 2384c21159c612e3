// Package config loads chooser settings from TOML with koanf.
package config

import (
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/pkg/errors"

	"github.com/vaclav-dvorak/go-mandel-histogram/palette"
)

const histogramChooser = "histogram"

// ErrGridSize is returned when a grid does not match the configured size.
var ErrGridSize = errors.New("config: grid size mismatch")

// Config is the [palette] section.
type Config struct {
	Threshold int    `koanf:"threshold"`
	Policy    string `koanf:"policy"`
	Ratio     string `koanf:"ratio"`
	Chooser   string `koanf:"chooser"`
	Width     int    `koanf:"width"`
	Height    int    `koanf:"height"`
}

var defaults = map[string]interface{}{
	"palette.threshold": 2500,
	"palette.policy":    "centered",
	"palette.ratio":     "float",
	"palette.chooser":   histogramChooser,
	"palette.width":     800,
	"palette.height":    800,
}

// Load reads a TOML file on top of the defaults.
func Load(path string) (Config, error) {
	return load(file.Provider(path))
}

// Parse reads TOML bytes on top of the defaults.
func Parse(data []byte) (Config, error) {
	return load(rawbytes.Provider(data))
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	conf, err := load(nil)
	if err != nil {
		panic(err)
	}
	return conf
}

func load(p koanf.Provider) (Config, error) {
	var conf Config
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return conf, errors.Wrap(err, "config: loading defaults")
	}
	if p != nil {
		if err := k.Load(p, toml.Parser()); err != nil {
			return conf, errors.Wrap(err, "config: loading")
		}
	}
	if err := k.Unmarshal("palette", &conf); err != nil {
		return conf, errors.Wrap(err, "config: parsing")
	}
	return conf, conf.Validate()
}

// Validate checks every field without building anything.
func (c Config) Validate() error {
	if c.Threshold <= 0 {
		return errors.Errorf("config: threshold must be positive, got %d", c.Threshold)
	}
	if c.Width < 0 || c.Height < 0 {
		return errors.Errorf("config: negative grid size %dx%d", c.Width, c.Height)
	}
	if _, err := palette.ParsePolicy(c.Policy); err != nil {
		return err
	}
	if _, err := palette.ParseRatioMode(c.Ratio); err != nil {
		return err
	}
	if c.Chooser != histogramChooser {
		if _, ok := palette.Palettes[c.Chooser]; !ok {
			return errors.Wrapf(palette.ErrUnknownPalette, "%q", c.Chooser)
		}
	}
	return nil
}

// NewChooser builds the configured ColorChooser. Gradient choosers ignore the
// grid contents but the size is still checked.
func (c Config) NewChooser(grid palette.Grid) (palette.ColorChooser, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	w, h := grid.Dims()
	if (c.Width > 0 && w != c.Width) || (c.Height > 0 && h != c.Height) {
		return nil, errors.Wrapf(ErrGridSize, "got %dx%d, want %dx%d", w, h, c.Width, c.Height)
	}

	if c.Chooser != histogramChooser {
		g, err := palette.NewGradient(c.Chooser, c.Threshold)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	policy, _ := palette.ParsePolicy(c.Policy)
	ratio, _ := palette.ParseRatioMode(c.Ratio)
	ch, err := palette.New(grid,
		palette.WithThreshold(c.Threshold),
		palette.WithPolicy(policy),
		palette.WithRatioMode(ratio),
	)
	if err != nil {
		return nil, err
	}
	return ch, nil
}
