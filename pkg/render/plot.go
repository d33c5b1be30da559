package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotsplit/pkg/figure"
)

// glyphs maps marker names to gonum glyph shapes.
var glyphs = map[string]draw.GlyphDrawer{
	"circle":   draw.CircleGlyph{},
	"o":        draw.CircleGlyph{},
	"ring":     draw.RingGlyph{},
	"square":   draw.SquareGlyph{},
	"s":        draw.SquareGlyph{},
	"box":      draw.BoxGlyph{},
	"triangle": draw.TriangleGlyph{},
	"^":        draw.TriangleGlyph{},
	"pyramid":  draw.PyramidGlyph{},
	"cross":    draw.CrossGlyph{},
	"x":        draw.CrossGlyph{},
	"plus":     draw.PlusGlyph{},
	"+":        draw.PlusGlyph{},
}

// buildPlot converts an axis to a gonum plot. It also returns the plotters
// that draw the data, so that hidden axes can be drawn without the plot's
// layout. Limits are applied after the plotters are added because plot.Add
// widens the axes to fit the data.
func (e *Engine) buildPlot(ax *figure.Axis) (*plot.Plot, []plot.Plotter, error) {
	p := plot.New()

	if ax.BackgroundVisible {
		p.BackgroundColor = color.White
	} else {
		p.BackgroundColor = color.Transparent
	}

	if ax.Visible && (ax.XGrid || ax.YGrid) {
		g := plotter.NewGrid()
		if !ax.XGrid {
			g.Vertical.Color = nil
		}
		if !ax.YGrid {
			g.Horizontal.Color = nil
		}
		p.Add(g)
	}

	var data []plot.Plotter
	for i, l := range ax.Lines {
		ps, err := e.linePlotters(l, i)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		data = append(data, ps...)
	}

	if len(ax.Texts) > 0 {
		labels, err := e.axisLabels(ax)
		if err != nil {
			return nil, nil, err
		}
		data = append(data, labels)
	}
	p.Add(data...)

	lim := *ax
	lim.FreezeLimits()
	p.X.Min, p.X.Max = lim.XLim.Min, lim.XLim.Max
	p.Y.Min, p.Y.Max = lim.YLim.Min, lim.YLim.Max

	e.applyFonts(p, ax)

	if ax.Visible {
		p.Title.Text = ax.Title
		p.X.Label.Text = ax.XLabel
		p.Y.Label.Text = ax.YLabel
		if !ax.ShowTicks {
			hideTicks(&p.X)
			hideTicks(&p.Y)
		}
	}
	return p, data, nil
}

// drawData draws the plotters of a hidden axis with the axis limits on the
// edges of c. Plot.Draw would shrink the data area by the glyph boxes of
// the plotters, which moves the data off the limits the markup declares.
func drawData(c draw.Canvas, ax *figure.Axis, p *plot.Plot, data []plot.Plotter) {
	if ax.BackgroundVisible {
		c.SetColor(p.BackgroundColor)
		c.Fill(c.Rectangle.Path())
	}
	for _, pl := range data {
		pl.Plot(c, p)
	}
}

// linePlotters returns the line and, when the line has a marker, its scatter.
func (e *Engine) linePlotters(l *figure.Line, i int) ([]plot.Plotter, error) {
	xys := finitePoints(l)
	if len(xys) == 0 {
		return nil, nil
	}

	stroke, err := parseColor(l.Color, e.palette(i))
	if err != nil {
		return nil, err
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	line.Color = stroke
	if l.Width > 0 {
		line.Width = vg.Points(l.Width)
	}
	if l.Fill != "" {
		fill, err := parseColor(l.Fill, nil)
		if err != nil {
			return nil, err
		}
		line.FillColor = fill
	}
	out := []plot.Plotter{line}

	if l.Marker != "" {
		shape, ok := glyphs[l.Marker]
		if !ok {
			return nil, fmt.Errorf("unknown marker %q", l.Marker)
		}
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Shape = shape
		sc.GlyphStyle.Color = stroke
		out = append(out, sc)
	}
	return out, nil
}

// axisLabels draws the axis's data-space annotations.
func (e *Engine) axisLabels(ax *figure.Axis) (*plotter.Labels, error) {
	data := plotter.XYLabels{
		XYs:    make(plotter.XYs, len(ax.Texts)),
		Labels: make([]string, len(ax.Texts)),
	}
	for i, t := range ax.Texts {
		data.XYs[i].X, data.XYs[i].Y = t.X, t.Y
		data.Labels[i] = t.String
	}
	labels, err := plotter.NewLabels(data)
	if err != nil {
		return nil, fmt.Errorf("annotations: %w", err)
	}
	for i, t := range ax.Texts {
		if size := e.fontSize(t.FontSize); size > 0 {
			labels.TextStyle[i].Font.Size = vg.Points(size)
		}
	}
	return labels, nil
}

// applyFonts sets the tick label size and scales axis labels and the title
// with it.
func (e *Engine) applyFonts(p *plot.Plot, ax *figure.Axis) {
	size := e.fontSize(ax.FontSize)
	if size <= 0 {
		return
	}
	pt := vg.Points(size)
	p.X.Tick.Label.Font.Size = pt
	p.Y.Tick.Label.Font.Size = pt
	p.X.Label.TextStyle.Font.Size = pt
	p.Y.Label.TextStyle.Font.Size = pt
	p.Title.TextStyle.Font.Size = vg.Points(size * 1.1)
}

func (e *Engine) fontSize(size float64) float64 {
	if size > 0 {
		return size
	}
	return e.defaultFontSize
}

// finitePoints drops NaN and infinite samples; gonum rejects them.
func finitePoints(l *figure.Line) plotter.XYs {
	n := min(len(l.X), len(l.Y))
	xys := make(plotter.XYs, 0, n)
	for j := 0; j < n; j++ {
		x, y := l.X[j], l.Y[j]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
	}
	return xys
}

func hideTicks(a *plot.Axis) {
	a.Tick.Marker = plot.ConstantTicks([]plot.Tick{})
	a.Tick.Length = 0
}
