// Package render draws figures to files through gonum.org/v1/plot.
//
// # Overview
//
// plotsplit does not rasterize anything itself. This package is the graphics
// engine collaborator: it turns each [figure.Axis] into a gonum [plot.Plot],
// draws every axis of a figure into its own region of one vg canvas, and
// writes the canvas in the format implied by the destination extension.
//
//	e := render.NewEngine()
//	if err := e.Save(fig, "plot.pdf"); err != nil {
//	    return err
//	}
//
// # Formats
//
// [FormatFromPath] maps the extension to a gonum canvas format. Supported:
// eps, jpg, jpeg, pdf, png, svg, tex, tif and tiff. Anything else fails with
// UNSUPPORTED_OUTPUT before a file is created.
//
// # Decorations
//
// An axis with Visible=false is drawn without axis lines, ticks, labels,
// title, grid or padding, so its data area is exactly its box: the x and y
// limits land on the box edges. Split export relies on this to align the
// graphics with the frame drawn by the typesetting side.
//
// # Measuring
//
// [Engine.TightInset] lays an axis out on a recording canvas and reports the
// distance between the axis box and the data area, which is the margin taken
// by tick labels, axis labels and the title.
//
// [figure.Axis]: github.com/matzehuels/plotsplit/pkg/figure.Axis
// [plot.Plot]: gonum.org/v1/plot.Plot
package render
