// Package io provides file import and export for figures.
//
// # Overview
//
// Figures are stored as JSON (the format written by [ExportJSON] and used
// for round trips) or as hand-authored TOML. Both describe the same model:
//
//	{
//	  "paper_size": {"width": 10, "height": 8},
//	  "axes": [{
//	    "xlim": {"min": -10, "max": 10},
//	    "ylim": {"min": 0, "max": 100},
//	    "xgrid": true,
//	    "title": "Response",
//	    "lines": [{"x": [-10, 0, 10], "y": [0, 50, 100], "width": 1.5}]
//	  }]
//	}
//
// The TOML equivalent uses [[axes]] and [[axes.lines]] tables:
//
//	[paper_size]
//	width = 10
//	height = 8
//
//	[[axes]]
//	title = "Response"
//	xgrid = true
//	xlim = { min = -10, max = 10 }
//
//	[[axes.lines]]
//	x = [-10, 0, 10]
//	y = [0, 50, 100]
//
// Omitted fields take the defaults of [figure.New] and [figure.NewAxis];
// missing handles are minted on import.
//
// # Import
//
// [ImportFigure] dispatches on the file extension (".json" or ".toml").
// [ReadJSON] and [ReadTOML] decode from any reader.
//
// # Export
//
// [ExportJSON] and [WriteJSON] write indented JSON that [ReadJSON] reads back
// identically, handles included.
//
// [figure.New]: github.com/matzehuels/plotsplit/pkg/figure.New
// [figure.NewAxis]: github.com/matzehuels/plotsplit/pkg/figure.NewAxis
package io
