package figure

import (
	"github.com/matzehuels/plotsplit/pkg/errors"
)

// TargetKind tells which element a [Target] refers to.
type TargetKind int

const (
	// TargetNone is the zero value; it is never a valid target.
	TargetNone TargetKind = iota
	// TargetFigure exports a whole figure.
	TargetFigure
	// TargetAxis exports one axis of a figure.
	TargetAxis
)

func (k TargetKind) String() string {
	switch k {
	case TargetFigure:
		return "figure"
	case TargetAxis:
		return "axis"
	default:
		return "none"
	}
}

// Target is either Figure(ref) or Axis(ref). An axis target also remembers
// its owning figure, which supplies the paper size.
type Target struct {
	kind   TargetKind
	figure *Figure
	axis   *Axis
}

// FigureTarget returns a target for the whole figure.
func FigureTarget(f *Figure) Target {
	return Target{kind: TargetFigure, figure: f}
}

// AxisTarget returns a target for ax, which must belong to f.
func AxisTarget(f *Figure, ax *Axis) Target {
	return Target{kind: TargetAxis, figure: f, axis: ax}
}

// Kind returns the variant.
func (t Target) Kind() TargetKind { return t.kind }

// Figure returns the figure, or the owning figure of an axis target.
func (t Target) Figure() *Figure { return t.figure }

// Axis returns the axis of an axis target and nil otherwise.
func (t Target) Axis() *Axis { return t.axis }

// Validate checks that the target points at something exportable.
func (t Target) Validate() error {
	switch t.kind {
	case TargetFigure:
		if t.figure == nil {
			return errors.New(errors.ErrCodeInvalidTarget, "figure target has no figure")
		}
	case TargetAxis:
		if t.figure == nil || t.axis == nil {
			return errors.New(errors.ErrCodeInvalidTarget, "axis target has no axis")
		}
		if t.figure.AxisIndex(t.axis.Handle) < 0 {
			return errors.New(errors.ErrCodeInvalidTarget, "axis %s does not belong to figure %s", t.axis.Handle, t.figure.Handle)
		}
	default:
		return errors.New(errors.ErrCodeInvalidTarget, "target is neither a figure nor an axis")
	}
	return nil
}

// ResolveTarget maps a handle to a target within f. The empty handle and the
// figure's own handle select the figure; an axis handle selects that axis.
// Any other handle, including line and text handles, is an INVALID_TARGET.
func ResolveTarget(f *Figure, h Handle) (Target, error) {
	if f == nil {
		return Target{}, errors.New(errors.ErrCodeInvalidTarget, "no figure")
	}
	if h == "" || h == f.Handle {
		return FigureTarget(f), nil
	}
	if i := f.AxisIndex(h); i >= 0 {
		return AxisTarget(f, f.Axes[i]), nil
	}
	return Target{}, errors.New(errors.ErrCodeInvalidTarget, "handle %s is neither a figure nor an axis", h)
}
