package palette

import (
	"image/color"
	"math"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Palettes are the named stop lists usable with NewGradient.
var Palettes = map[string][]color.RGBA{
	"ultra": {
		{0, 7, 100, 255},
		{32, 107, 203, 255},
		{237, 255, 255, 255},
		{255, 170, 0, 255},
		{0, 2, 0, 255},
	},
	"fire": {
		{0, 0, 0, 255},
		{128, 0, 0, 255},
		{255, 96, 0, 255},
		{255, 224, 64, 255},
		{255, 255, 255, 255},
	},
	"ocean": {
		{0, 16, 32, 255},
		{0, 64, 128, 255},
		{0, 160, 192, 255},
		{224, 255, 255, 255},
	},
	"gray": {
		{0, 0, 0, 255},
		{255, 255, 255, 255},
	},
}

// PaletteNames lists the keys of Palettes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Gradient spreads a palette linearly over [0, threshold) and blends
// neighbouring stops with a cosine curve. Unlike Chooser it needs no grid.
type Gradient struct {
	stops     []color.RGBA
	threshold int
}

var _ ColorChooser = (*Gradient)(nil)

// NewGradient looks up a named palette.
func NewGradient(name string, threshold int) (*Gradient, error) {
	stops, ok := Palettes[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownPalette, "%q", name)
	}
	if threshold <= 0 {
		return nil, errors.Wrapf(ErrDegenerateSpectrum, "threshold %d", threshold)
	}
	return &Gradient{stops: stops, threshold: threshold}, nil
}

// ColorOf returns Black for iter >= threshold.
func (g *Gradient) ColorOf(iter int) color.RGBA {
	if iter >= g.threshold {
		return Black
	}
	if iter < 0 {
		iter = 0
	}
	i, frac := math.Modf(float64(len(g.stops)-1) * float64(iter) / float64(g.threshold))
	return cosineInterpolation(g.stops[int(i)], g.stops[int(i)+1], frac)
}

func cosineInterpolation(c1, c2 color.RGBA, mu float64) color.RGBA {
	from := colorful.Color{R: float64(c1.R) / 255, G: float64(c1.G) / 255, B: float64(c1.B) / 255}
	to := colorful.Color{R: float64(c2.R) / 255, G: float64(c2.G) / 255, B: float64(c2.B) / 255}
	mu2 := (1 - math.Cos(mu*math.Pi)) / 2.0
	r, g, b := from.BlendRgb(to, mu2).Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
