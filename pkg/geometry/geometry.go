// Package geometry converts between physical and normalized units and
// resolves the paper and per-axis dimensions used by an export.
//
// Paper sizes and axis boxes are in centimeters. Axis positions inside a
// figure are normalized to the paper. Line widths and fonts are in points.
package geometry

import (
	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

const (
	// CmPerInch is the number of centimeters in an inch.
	CmPerInch = 2.54
	// PointsPerInch is the number of PostScript points in an inch.
	PointsPerInch = 72.0

	// InsetPadding is added to every side of an axis's tight inset so that
	// text descenders are not clipped.
	InsetPadding = 0.01
)

// CmToPoints converts centimeters to points.
func CmToPoints(cm float64) float64 { return cm / CmPerInch * PointsPerInch }

// PointsToCm converts points to centimeters.
func PointsToCm(pt float64) float64 { return pt / PointsPerInch * CmPerInch }

// ToCentimeters scales a normalized rectangle to the paper.
func ToCentimeters(r figure.Rect, paper figure.Size) figure.Rect {
	return figure.Rect{
		X: r.X * paper.Width,
		Y: r.Y * paper.Height,
		W: r.W * paper.Width,
		H: r.H * paper.Height,
	}
}

// ToNormalized expresses a rectangle in centimeters relative to the paper.
func ToNormalized(r figure.Rect, paper figure.Size) figure.Rect {
	return figure.Rect{
		X: r.X / paper.Width,
		Y: r.Y / paper.Height,
		W: r.W / paper.Width,
		H: r.H / paper.Height,
	}
}

// ResolvePaperSize returns the export paper size. Without a request it is
// the figure's own paper size; a request must be exactly two positive values
// (width, height) in centimeters.
func ResolvePaperSize(f *figure.Figure, requested []float64) (figure.Size, error) {
	if len(requested) == 0 {
		if err := errors.ValidatePositive("figure paper size", f.PaperSize.Width, f.PaperSize.Height); err != nil {
			return figure.Size{}, err
		}
		return f.PaperSize, nil
	}
	if len(requested) != 2 {
		return figure.Size{}, errors.New(errors.ErrCodeInvalidInput, "paper size needs width and height, got %d values", len(requested))
	}
	if err := errors.ValidatePositive("paper size", requested...); err != nil {
		return figure.Size{}, err
	}
	return figure.Size{Width: requested[0], Height: requested[1]}, nil
}

// Measurer reports the margin an axis needs around a box of the given size
// (in centimeters) for its tick labels, axis labels and title.
type Measurer interface {
	TightInset(ax *figure.Axis, width, height float64) (figure.Insets, error)
}

// AxisGeometry is the resolved box of one axis.
type AxisGeometry struct {
	X, Y          float64 // bottom-left corner on the paper, cm
	Width, Height float64 // axis box, cm
	Inset         figure.Insets
}

// OuterWidth is the box width plus the horizontal inset.
func (g AxisGeometry) OuterWidth() float64 { return g.Width + g.Inset.Left + g.Inset.Right }

// OuterHeight is the box height plus the vertical inset.
func (g AxisGeometry) OuterHeight() float64 { return g.Height + g.Inset.Bottom + g.Inset.Top }

// ResolveAxisGeometry converts the axis position to centimeters on a paper
// of the given size and measures its tight inset. The inset, padded by
// [InsetPadding], becomes the axis's LooseInset so later rendering reserves
// that space.
func ResolveAxisGeometry(ax *figure.Axis, paper figure.Size, m Measurer) (AxisGeometry, error) {
	box := ToCentimeters(ax.Position, paper)
	if err := errors.ValidatePositive("axis size", box.W, box.H); err != nil {
		return AxisGeometry{}, err
	}

	tight, err := m.TightInset(ax, box.W, box.H)
	if err != nil {
		return AxisGeometry{}, err
	}
	inset := tight.Pad(InsetPadding)
	ax.LooseInset = inset

	return AxisGeometry{
		X:      box.X,
		Y:      box.Y,
		Width:  box.W,
		Height: box.H,
		Inset:  inset,
	}, nil
}
