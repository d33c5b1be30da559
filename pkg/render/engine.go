package render

import (
	"image/color"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/geometry"
)

// defaultTextSize is the size of figure annotations without a font size.
const defaultTextSize = 12.0

// Option configures an Engine.
type Option func(*Engine)

// WithDefaultFontSize sets the font size, in points, used for axes and texts
// that do not set their own. Zero keeps gonum's defaults.
func WithDefaultFontSize(pt float64) Option {
	return func(e *Engine) { e.defaultFontSize = pt }
}

// WithPalette sets the color of the i-th uncolored line of an axis.
func WithPalette(p func(i int) color.Color) Option {
	return func(e *Engine) { e.palette = p }
}

// Engine renders figures with gonum/plot. The zero value is not usable; use
// NewEngine. An Engine holds no per-figure state and may be reused.
type Engine struct {
	defaultFontSize float64
	palette         func(i int) color.Color
}

// NewEngine creates an engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{palette: defaultPalette}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Save renders f to path, inferring the format from the extension.
// The file is created or truncated.
func (e *Engine) Save(f *figure.Figure, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	c, err := e.draw(f, format)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "create %s", path)
	}
	if _, err := c.WriteTo(out); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeFileWrite, err, "write %s", path)
	}
	if err := out.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "close %s", path)
	}
	return nil
}

// Render writes f to w in the given format.
func (e *Engine) Render(f *figure.Figure, format string, w io.Writer) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeUnsupportedOutput, "unsupported output format: %q", format)
	}
	c, err := e.draw(f, format)
	if err != nil {
		return err
	}
	if _, err := c.WriteTo(w); err != nil {
		return errors.Wrap(errors.ErrCodeRenderFailed, err, "write %s", format)
	}
	return nil
}

// TightInset measures the margins gonum lays out around the data area of ax
// on a width x height (cm) region. A hidden axis has none.
func (e *Engine) TightInset(ax *figure.Axis, width, height float64) (figure.Insets, error) {
	p, _, err := e.buildPlot(ax)
	if err != nil {
		return figure.Insets{}, errors.Wrap(errors.ErrCodeRenderFailed, err, "axis %s", ax.Handle)
	}
	if !ax.Visible {
		// Hidden axes are drawn edge to edge by drawData.
		return figure.Insets{}, nil
	}
	c := draw.NewCanvas(new(recorder.Canvas), cmLength(width), cmLength(height))
	da := p.DataCanvas(c)
	return figure.Insets{
		Left:   lengthCm(da.Min.X - c.Min.X),
		Bottom: lengthCm(da.Min.Y - c.Min.Y),
		Right:  lengthCm(c.Max.X - da.Max.X),
		Top:    lengthCm(c.Max.Y - da.Max.Y),
	}, nil
}

func (e *Engine) draw(f *figure.Figure, format string) (vg.CanvasWriterTo, error) {
	if err := errors.ValidatePositive("paper size", f.PaperSize.Width, f.PaperSize.Height); err != nil {
		return nil, err
	}
	c, err := draw.NewFormattedCanvas(cmLength(f.PaperSize.Width), cmLength(f.PaperSize.Height), format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnsupportedOutput, err, "create %s canvas", format)
	}
	if err := e.drawFigure(draw.New(c), f); err != nil {
		return nil, err
	}
	return c, nil
}

// drawFigure draws the background, the axes and the figure texts of f on dc,
// which spans the whole paper.
func (e *Engine) drawFigure(dc draw.Canvas, f *figure.Figure) error {
	if f.BackgroundVisible {
		bg, err := parseColor(f.BackgroundColor, color.White)
		if err != nil {
			return err
		}
		dc.SetColor(bg)
		dc.Fill(dc.Rectangle.Path())
	}

	for i, ax := range f.Axes {
		p, data, err := e.buildPlot(ax)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "axis %d", i+1)
		}
		c := axisCanvas(dc, ax, f.PaperSize)
		if ax.Visible {
			p.Draw(c)
		} else {
			drawData(c, ax, p, data)
		}
	}

	for _, t := range f.Texts {
		dc.FillText(e.textStyle(t.FontSize), vg.Point{
			X: dc.Min.X + vg.Length(t.X)*(dc.Max.X-dc.Min.X),
			Y: dc.Min.Y + vg.Length(t.Y)*(dc.Max.Y-dc.Min.Y),
		}, t.String)
	}
	return nil
}

// axisCanvas is the region of dc given to ax: its box grown by the loose
// inset and clipped to the paper. A hidden axis gets its box alone.
func axisCanvas(dc draw.Canvas, ax *figure.Axis, paper figure.Size) draw.Canvas {
	box := geometry.ToCentimeters(ax.Position, paper)
	in := ax.LooseInset
	if !ax.Visible {
		in = figure.Insets{}
	}
	x0 := max(box.X-in.Left, 0)
	y0 := max(box.Y-in.Bottom, 0)
	x1 := min(box.X+box.W+in.Right, paper.Width)
	y1 := min(box.Y+box.H+in.Top, paper.Height)
	return draw.Canvas{
		Canvas: dc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: dc.Min.X + cmLength(x0), Y: dc.Min.Y + cmLength(y0)},
			Max: vg.Point{X: dc.Min.X + cmLength(x1), Y: dc.Min.Y + cmLength(y1)},
		},
	}
}

func (e *Engine) textStyle(size float64) text.Style {
	pt := e.fontSize(size)
	if pt <= 0 {
		pt = defaultTextSize
	}
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(pt)),
		Handler: plot.DefaultTextHandler,
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
	}
}

func cmLength(cm float64) vg.Length { return vg.Length(cm) * vg.Centimeter }

func lengthCm(l vg.Length) float64 { return float64(l / vg.Centimeter) }
