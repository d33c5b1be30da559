// Package style applies caller overrides for font size and line width to a
// working figure before it is rendered.
package style

import (
	"math"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

// Policy says how a list of line widths maps onto the lines of a figure.
type Policy int

const (
	// PolicyNone leaves widths untouched.
	PolicyNone Policy = iota
	// PolicyElementwise gives line i width i.
	PolicyElementwise
	// PolicyBroadcast gives every line the first width.
	PolicyBroadcast
)

func (p Policy) String() string {
	switch p {
	case PolicyElementwise:
		return "elementwise"
	case PolicyBroadcast:
		return "broadcast"
	default:
		return "none"
	}
}

// ChoosePolicy picks the width policy for nLines lines and nWidths widths.
// Equal counts pair up; any other non-empty list broadcasts its first value.
func ChoosePolicy(nLines, nWidths int) Policy {
	switch {
	case nWidths == 0:
		return PolicyNone
	case nWidths == nLines:
		return PolicyElementwise
	default:
		return PolicyBroadcast
	}
}

// ApplyFontSize sets the tick label size of every axis and the size of every
// free-floating text. A size <= 0 leaves the figure unchanged.
func ApplyFontSize(f *figure.Figure, size float64) {
	if size <= 0 {
		return
	}
	for _, ax := range f.Axes {
		ax.FontSize = size
	}
	for _, t := range f.AllTexts() {
		t.FontSize = size
	}
}

// ApplyLineWidth sets line widths, in points, following [ChoosePolicy].
// lines is usually [figure.Figure.Lines], which fixes the pairing order.
func ApplyLineWidth(lines []*figure.Line, widths []float64) Policy {
	p := ChoosePolicy(len(lines), len(widths))
	switch p {
	case PolicyElementwise:
		for i, l := range lines {
			l.Width = widths[i]
		}
	case PolicyBroadcast:
		for _, l := range lines {
			l.Width = widths[0]
		}
	}
	return p
}

// Options are the style overrides of an export.
type Options struct {
	FontSize   float64   // points; 0 keeps the figure's sizes
	LineWidths []float64 // points; see ApplyLineWidth
}

// Validate rejects a negative font size and non-positive line widths.
func (o Options) Validate() error {
	if o.FontSize < 0 || math.IsNaN(o.FontSize) || math.IsInf(o.FontSize, 0) {
		return errors.New(errors.ErrCodeInvalidInput, "font size must not be negative, got %g", o.FontSize)
	}
	return errors.ValidatePositive("line width", o.LineWidths...)
}

// Apply applies both overrides to f and returns the width policy used.
func (o Options) Apply(f *figure.Figure) Policy {
	ApplyFontSize(f, o.FontSize)
	return ApplyLineWidth(f.Lines(), o.LineWidths)
}
