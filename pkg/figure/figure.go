package figure

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// Handle identifies a figure element. Handles are UUID strings.
type Handle string

// NewHandle mints a fresh random handle.
func NewHandle() Handle {
	return Handle(uuid.NewString())
}

// Size is a width/height pair in centimeters.
type Size struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

// Rect is an axis-aligned rectangle. Its unit depends on context.
type Rect struct {
	X float64 `json:"x" toml:"x"`
	Y float64 `json:"y" toml:"y"`
	W float64 `json:"w" toml:"w"`
	H float64 `json:"h" toml:"h"`
}

// FullRect covers the whole parent in normalized units.
var FullRect = Rect{X: 0, Y: 0, W: 1, H: 1}

// Insets are margins around a rectangle, in centimeters.
type Insets struct {
	Left   float64 `json:"left" toml:"left"`
	Bottom float64 `json:"bottom" toml:"bottom"`
	Right  float64 `json:"right" toml:"right"`
	Top    float64 `json:"top" toml:"top"`
}

// Pad returns the insets grown by d on every side.
func (in Insets) Pad(d float64) Insets {
	return Insets{Left: in.Left + d, Bottom: in.Bottom + d, Right: in.Right + d, Top: in.Top + d}
}

// IsZero reports whether all four margins are zero.
func (in Insets) IsZero() bool {
	return in == Insets{}
}

// Range is a closed numeric interval. A zero-width range means "automatic":
// the limits are taken from the data when the axis is materialized.
type Range struct {
	Min float64 `json:"min" toml:"min"`
	Max float64 `json:"max" toml:"max"`
}

// IsAuto reports whether the range should be computed from data.
func (r Range) IsAuto() bool { return r.Min == r.Max }

// Line is a plotted curve.
type Line struct {
	Handle Handle    `json:"handle" toml:"handle"`
	X      []float64 `json:"x" toml:"x"`
	Y      []float64 `json:"y" toml:"y"`
	Width  float64   `json:"width,omitempty" toml:"width"`   // points; 0 = engine default
	Color  string    `json:"color,omitempty" toml:"color"`   // hex, e.g. "#1f77b4"
	Marker string    `json:"marker,omitempty" toml:"marker"` // glyph name, "" = none
	Fill   string    `json:"fill,omitempty" toml:"fill"`     // hex fill below the curve
	Label  string    `json:"label,omitempty" toml:"label"`
}

// Text is a free-floating annotation. Figure texts use normalized paper
// coordinates; axis texts use data coordinates.
type Text struct {
	Handle   Handle  `json:"handle" toml:"handle"`
	String   string  `json:"string" toml:"string"`
	X        float64 `json:"x" toml:"x"`
	Y        float64 `json:"y" toml:"y"`
	FontSize float64 `json:"font_size,omitempty" toml:"font_size"`
}

// Axis is a rectangular plot region.
type Axis struct {
	Handle     Handle  `json:"handle" toml:"handle"`
	Position   Rect    `json:"position" toml:"position"`
	XLim       Range   `json:"xlim" toml:"xlim"`
	YLim       Range   `json:"ylim" toml:"ylim"`
	XGrid      bool    `json:"xgrid,omitempty" toml:"xgrid"`
	YGrid      bool    `json:"ygrid,omitempty" toml:"ygrid"`
	Title      string  `json:"title,omitempty" toml:"title"`
	XLabel     string  `json:"xlabel,omitempty" toml:"xlabel"`
	YLabel     string  `json:"ylabel,omitempty" toml:"ylabel"`
	Lines      []*Line `json:"lines,omitempty" toml:"lines"`
	Texts      []*Text `json:"texts,omitempty" toml:"texts"`
	FontSize   float64 `json:"font_size,omitempty" toml:"font_size"`
	LooseInset Insets  `json:"loose_inset" toml:"loose_inset"`

	// Decorations. All three are on for a freshly created axis.
	Visible           bool `json:"visible" toml:"visible"`
	ShowTicks         bool `json:"show_ticks" toml:"show_ticks"`
	BackgroundVisible bool `json:"background_visible" toml:"background_visible"`
}

// NewAxis returns a visible axis filling the whole figure.
func NewAxis() *Axis {
	return &Axis{
		Handle:            NewHandle(),
		Position:          FullRect,
		Visible:           true,
		ShowTicks:         true,
		BackgroundVisible: true,
	}
}

// AddLine appends a curve and returns it.
func (ax *Axis) AddLine(x, y []float64) *Line {
	l := &Line{Handle: NewHandle(), X: x, Y: y}
	ax.Lines = append(ax.Lines, l)
	return l
}

// AddText appends an annotation at data coordinates (x, y).
func (ax *Axis) AddText(x, y float64, s string) *Text {
	t := &Text{Handle: NewHandle(), String: s, X: x, Y: y}
	ax.Texts = append(ax.Texts, t)
	return t
}

// DataLimits returns the bounding ranges of all finite line data.
// ok is false when the axis has no finite points.
func (ax *Axis) DataLimits() (x, y Range, ok bool) {
	x = Range{Min: math.Inf(1), Max: math.Inf(-1)}
	y = x
	for _, l := range ax.Lines {
		n := min(len(l.X), len(l.Y))
		for i := 0; i < n; i++ {
			xv, yv := l.X[i], l.Y[i]
			if !finite(xv) || !finite(yv) {
				continue
			}
			x.Min, x.Max = math.Min(x.Min, xv), math.Max(x.Max, xv)
			y.Min, y.Max = math.Min(y.Min, yv), math.Max(y.Max, yv)
			ok = true
		}
	}
	if !ok {
		return Range{}, Range{}, false
	}
	return x, y, true
}

// FreezeLimits replaces automatic limits with the data extent, so that the
// limits written next to a rendered axis are the ones actually used.
// An axis without data gets the unit interval.
func (ax *Axis) FreezeLimits() {
	if !ax.XLim.IsAuto() && !ax.YLim.IsAuto() {
		return
	}
	x, y, ok := ax.DataLimits()
	if !ok {
		x, y = Range{Min: 0, Max: 1}, Range{Min: 0, Max: 1}
	}
	if ax.XLim.IsAuto() {
		ax.XLim = widen(x)
	}
	if ax.YLim.IsAuto() {
		ax.YLim = widen(y)
	}
}

// widen turns a degenerate data range into a usable interval.
func widen(r Range) Range {
	if r.Min == r.Max {
		return Range{Min: r.Min - 1, Max: r.Max + 1}
	}
	return r
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Figure is the root visual container.
type Figure struct {
	Handle            Handle  `json:"handle" toml:"handle"`
	PaperSize         Size    `json:"paper_size" toml:"paper_size"`
	Axes              []*Axis `json:"axes" toml:"axes"`
	Texts             []*Text `json:"texts,omitempty" toml:"texts"`
	BackgroundVisible bool    `json:"background_visible" toml:"background_visible"`
	BackgroundColor   string  `json:"background_color,omitempty" toml:"background_color"`
}

// DefaultPaperSize is the paper size of a new figure (a 4:3 canvas).
var DefaultPaperSize = Size{Width: 16, Height: 12}

// New creates an empty figure with the default paper size and a visible
// background.
func New() *Figure {
	return &Figure{
		Handle:            NewHandle(),
		PaperSize:         DefaultPaperSize,
		BackgroundVisible: true,
	}
}

// AddAxis appends a new full-size axis and returns it.
func (f *Figure) AddAxis() *Axis {
	ax := NewAxis()
	f.Axes = append(f.Axes, ax)
	return ax
}

// AddText appends a figure-level annotation at normalized (x, y).
func (f *Figure) AddText(x, y float64, s string) *Text {
	t := &Text{Handle: NewHandle(), String: s, X: x, Y: y}
	f.Texts = append(f.Texts, t)
	return t
}

// Lines returns every line in discovery order: axes in order, then each
// axis's lines in order.
func (f *Figure) Lines() []*Line {
	var out []*Line
	for _, ax := range f.Axes {
		out = append(out, ax.Lines...)
	}
	return out
}

// AllTexts returns figure texts followed by each axis's texts.
func (f *Figure) AllTexts() []*Text {
	out := append([]*Text(nil), f.Texts...)
	for _, ax := range f.Axes {
		out = append(out, ax.Texts...)
	}
	return out
}

// AxisIndex returns the index of the axis with handle h, or -1.
func (f *Figure) AxisIndex(h Handle) int {
	for i, ax := range f.Axes {
		if ax.Handle == h {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy made by serializing the figure and decoding it
// again. Handles are preserved, and so are NaN and infinite samples, which
// mark gaps in a line. Empty slices come back nil.
func (f *Figure) Clone() (*Figure, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("encode figure: %w", err)
	}
	var out Figure
	if err := gob.NewDecoder(&buf).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode figure: %w", err)
	}
	return &out, nil
}

// EnsureHandles assigns handles to elements that lack one. Figures read from
// hand-written files usually need this.
func (f *Figure) EnsureHandles() {
	if f.Handle == "" {
		f.Handle = NewHandle()
	}
	fill := func(ts []*Text) {
		for _, t := range ts {
			if t.Handle == "" {
				t.Handle = NewHandle()
			}
		}
	}
	fill(f.Texts)
	for _, ax := range f.Axes {
		if ax.Handle == "" {
			ax.Handle = NewHandle()
		}
		for _, l := range ax.Lines {
			if l.Handle == "" {
				l.Handle = NewHandle()
			}
		}
		fill(ax.Texts)
	}
}

// UnmarshalJSON decodes an axis, defaulting omitted decoration flags and
// position to those of [NewAxis].
func (ax *Axis) UnmarshalJSON(data []byte) error {
	type plain Axis
	p := plain{
		Position:          FullRect,
		Visible:           true,
		ShowTicks:         true,
		BackgroundVisible: true,
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*ax = Axis(p)
	return nil
}

// UnmarshalJSON decodes a figure, defaulting omitted fields to those of [New].
func (f *Figure) UnmarshalJSON(data []byte) error {
	type plain Figure
	p := plain{
		PaperSize:         DefaultPaperSize,
		BackgroundVisible: true,
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*f = Figure(p)
	return nil
}
