package palette

import "github.com/pkg/errors"

var (
	ErrEmptyGrid          = errors.New("palette: empty iteration grid")
	ErrRaggedGrid         = errors.New("palette: ragged iteration grid")
	ErrNegativeCount      = errors.New("palette: negative iteration count")
	ErrAboveThreshold     = errors.New("palette: iteration count above threshold")
	ErrUnknownPolicy      = errors.New("palette: unknown spectrum policy")
	ErrUnknownRatio       = errors.New("palette: unknown ratio mode")
	ErrDegenerateSpectrum = errors.New("palette: spectrum has no extent")
	ErrUnknownPalette     = errors.New("palette: unknown gradient palette")
)
