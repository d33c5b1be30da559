// Package materialize produces owned working copies of export targets.
//
// A target is never modified by an export. Instead it is copied into a
// [Working] figure that the export may restyle and render freely, and that
// must be closed when the export is done. [Scope] closes every working figure
// of a run at once, so a failing run leaves nothing behind.
package materialize

import (
	"sync/atomic"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/geometry"
)

var live atomic.Int64

// Live reports how many working figures have been created and not closed.
func Live() int { return int(live.Load()) }

// Working is a figure owned by an export run.
type Working struct {
	fig    *figure.Figure
	closed bool
}

func newWorking(f *figure.Figure) *Working {
	live.Add(1)
	return &Working{fig: f}
}

// Figure returns the owned figure, or nil after Close.
func (w *Working) Figure() *figure.Figure { return w.fig }

// Closed reports whether Close has been called.
func (w *Working) Closed() bool { return w.closed }

// Close releases the figure. Closing twice is a no-op.
func (w *Working) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.fig = nil
	live.Add(-1)
	return nil
}

// Materialize returns an owned figure for t.
//
// A figure target is deep-copied. An axis target becomes a new single-axis
// figure whose paper is the axis's outer box (its box grown by LooseInset),
// with the axis placed at the inset offset so labels keep their room.
func Materialize(t figure.Target) (*Working, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}

	clone, err := t.Figure().Clone()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "copy figure")
	}
	if t.Kind() == figure.TargetFigure {
		return newWorking(clone), nil
	}

	i := clone.AxisIndex(t.Axis().Handle)
	if i < 0 {
		return nil, errors.New(errors.ErrCodeInvalidTarget, "axis %s not found in its figure", t.Axis().Handle)
	}
	ax := clone.Axes[i]

	box := geometry.ToCentimeters(ax.Position, clone.PaperSize)
	in := ax.LooseInset
	paper := figure.Size{
		Width:  box.W + in.Left + in.Right,
		Height: box.H + in.Bottom + in.Top,
	}
	if err := errors.ValidatePositive("axis size", paper.Width, paper.Height); err != nil {
		return nil, err
	}
	ax.Position = geometry.ToNormalized(figure.Rect{X: in.Left, Y: in.Bottom, W: box.W, H: box.H}, paper)

	return newWorking(&figure.Figure{
		Handle:            figure.NewHandle(),
		PaperSize:         paper,
		Axes:              []*figure.Axis{ax},
		BackgroundVisible: clone.BackgroundVisible,
		BackgroundColor:   clone.BackgroundColor,
	}), nil
}

// Isolate copies axis index of src into a fresh figure holding only its
// graphical content. The paper is exactly geom's box, the axis fills it, and
// frame, ticks, grid and both backgrounds are hidden. Automatic limits are
// frozen from the data so the rendered content and the reported limits agree.
func Isolate(src *figure.Figure, index int, geom geometry.AxisGeometry) (*Working, error) {
	if index < 0 || index >= len(src.Axes) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "axis index %d out of range [0, %d)", index, len(src.Axes))
	}
	if err := errors.ValidatePositive("axis size", geom.Width, geom.Height); err != nil {
		return nil, err
	}

	clone, err := src.Clone()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "copy figure")
	}
	ax := clone.Axes[index]
	ax.FreezeLimits()
	ax.Position = figure.FullRect
	ax.LooseInset = figure.Insets{}
	ax.Visible = false
	ax.ShowTicks = false
	ax.BackgroundVisible = false
	ax.XGrid = false
	ax.YGrid = false

	return newWorking(&figure.Figure{
		Handle:            figure.NewHandle(),
		PaperSize:         figure.Size{Width: geom.Width, Height: geom.Height},
		Axes:              []*figure.Axis{ax},
		BackgroundVisible: false,
	}), nil
}

// Scope tracks the working figures of one run.
type Scope struct {
	tracked []*Working
}

// Materialize is [Materialize] tracked by s.
func (s *Scope) Materialize(t figure.Target) (*Working, error) {
	w, err := Materialize(t)
	if err != nil {
		return nil, err
	}
	return s.Track(w), nil
}

// Isolate is [Isolate] tracked by s.
func (s *Scope) Isolate(src *figure.Figure, index int, geom geometry.AxisGeometry) (*Working, error) {
	w, err := Isolate(src, index, geom)
	if err != nil {
		return nil, err
	}
	return s.Track(w), nil
}

// Track adds w to the scope and returns it.
func (s *Scope) Track(w *Working) *Working {
	s.tracked = append(s.tracked, w)
	return w
}

// Len is the number of tracked figures, closed or not.
func (s *Scope) Len() int { return len(s.tracked) }

// Close closes every tracked figure.
func (s *Scope) Close() error {
	for _, w := range s.tracked {
		w.Close()
	}
	s.tracked = nil
	return nil
}
