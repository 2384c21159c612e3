package palette

import (
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RatioMode selects how location/max is evaluated.
type RatioMode int

const (
	// FloatRatio divides in floating point.
	FloatRatio RatioMode = iota
	// TruncatedRatio divides integers before converting, which sends every
	// location below max to 0.
	TruncatedRatio
)

func (m RatioMode) String() string {
	switch m {
	case FloatRatio:
		return "float"
	case TruncatedRatio:
		return "truncated"
	}
	return fmt.Sprintf("RatioMode(%d)", int(m))
}

// ParseRatioMode accepts the names returned by RatioMode.String.
func ParseRatioMode(name string) (RatioMode, error) {
	switch name {
	case "float", "":
		return FloatRatio, nil
	case "truncated":
		return TruncatedRatio, nil
	}
	return 0, errors.Wrapf(ErrUnknownRatio, "%q", name)
}

// Black is used for the threshold and for unknown keys.
var Black = color.RGBA{A: 255}

// Table maps iteration counts to colors.
type Table map[int]color.RGBA

// Synthesize turns every spectrum location into a color. The key equal to
// threshold is always Black.
func Synthesize(s *Spectrum, threshold int, mode RatioMode) (Table, error) {
	if mode != FloatRatio && mode != TruncatedRatio {
		return nil, errors.Wrapf(ErrUnknownRatio, "%v", mode)
	}
	if s.Max() <= 0 {
		return nil, ErrDegenerateSpectrum
	}

	t := make(Table, len(s.keys))
	for _, k := range s.keys {
		if k == threshold {
			t[k] = Black
			continue
		}
		loc, _ := s.Location(k)
		t[k] = spectrumColor(ratio(loc, s.Max(), mode))
	}
	return t, nil
}

func ratio(loc, max int, mode RatioMode) float64 {
	var r float64
	if mode == TruncatedRatio {
		r = float64(loc / max)
	} else {
		r = float64(loc) / float64(max)
	}
	return math.Max(0, math.Min(1, r))
}

// spectrumColor fades blue out and red in as r goes 0 → 1, with green
// peaking at r = 0.5.
func spectrumColor(r float64) color.RGBA {
	c := colorful.Color{
		R: math.Sin(r * math.Pi / 2),
		G: math.Sin(r * math.Pi),
		B: math.Cos(r * math.Pi / 2),
	}
	red, green, blue := c.Clamped().RGB255()
	return color.RGBA{R: red, G: green, B: blue, A: 255}
}
