package palette

import (
	"image/color"
	"log"

	"github.com/pkg/errors"
)

// ColorChooser returns the color for an iteration count.
type ColorChooser interface {
	ColorOf(iter int) color.RGBA
}

// Option configures New.
type Option func(*options)

type options struct {
	threshold int
	policy    Policy
	ratio     RatioMode
	logger    *log.Logger
}

// WithThreshold sets the never-escaped iteration count. Defaults to the
// largest count in the grid.
func WithThreshold(threshold int) Option {
	return func(o *options) { o.threshold = threshold }
}

// WithPolicy sets the spectrum policy. Defaults to FrequencyCentered.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// WithRatioMode sets the ratio mode. Defaults to FloatRatio.
func WithRatioMode(m RatioMode) Option {
	return func(o *options) { o.ratio = m }
}

// WithLogger redirects unknown-key diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Chooser colors iteration counts by histogram position. It is read-only
// after New and safe for concurrent use.
type Chooser struct {
	threshold int
	hist      *Histogram
	spectrum  *Spectrum
	table     Table
	logger    *log.Logger
}

var _ ColorChooser = (*Chooser)(nil)

// New builds the histogram, spectrum and color table for grid.
func New(grid Grid, opts ...Option) (*Chooser, error) {
	o := options{threshold: -1, logger: log.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	hist, err := BuildHistogram(grid)
	if err != nil {
		return nil, err
	}
	if o.threshold < 0 {
		o.threshold = hist.Max()
	} else if hist.Max() > o.threshold {
		return nil, errors.Wrapf(ErrAboveThreshold, "%d > %d", hist.Max(), o.threshold)
	}

	spectrum, err := Allocate(hist, o.policy)
	if err != nil {
		return nil, err
	}
	table, err := Synthesize(spectrum, o.threshold, o.ratio)
	if err != nil {
		return nil, err
	}

	return &Chooser{
		threshold: o.threshold,
		hist:      hist,
		spectrum:  spectrum,
		table:     table,
		logger:    o.logger,
	}, nil
}

// ColorOf returns the color for iter. Counts that were not in the grid
// get Black and a log line.
func (c *Chooser) ColorOf(iter int) color.RGBA {
	if col, ok := c.table[iter]; ok {
		return col
	}
	if iter != c.threshold {
		c.logger.Printf("palette: unknown iteration count %d, using black", iter)
	}
	return Black
}

// Threshold returns the never-escaped iteration count.
func (c *Chooser) Threshold() int { return c.threshold }

func (c *Chooser) Histogram() *Histogram { return c.hist }

func (c *Chooser) Spectrum() *Spectrum { return c.spectrum }

// Table returns a copy of the color table.
func (c *Chooser) Table() Table {
	t := make(Table, len(c.table))
	for k, v := range c.table {
		t[k] = v
	}
	return t
}
