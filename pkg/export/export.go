// Package export writes figures to files.
//
// [Split] is the main entry point. Every axis of the target becomes a pair
// of files: a transparent PDF holding only the plotted content, and a
// pgfplots fragment that draws the frame, ticks, grid and labels around it.
// The fragment's width, height and limits are the ones the PDF was rendered
// with, so the two line up exactly when typeset.
//
//	opts := export.Options{Target: figure.FigureTarget(fig), PaperSize: []float64{10, 8}}
//	res, err := export.Split(ctx, "figs/response", opts)
//	// figs/response.pdf, figs/response.tikz
//
// With more than one axis the files are numbered "-1" to "-M" and the result
// carries a MULTI_AXIS advisory.
//
// [Direct] renders the target to a single image instead.
//
// Neither function modifies the target. Both work on owned copies that are
// disposed on every exit path.
package export

import (
	"time"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/geometry"
	"github.com/matzehuels/plotsplit/pkg/markup"
)

// Pair is the output of one axis of a split export.
type Pair struct {
	Index    int    // 1-based axis index
	Graphics string // PDF path
	Markup   string // fragment path
	Geometry geometry.AxisGeometry
	Meta     markup.AxisMeta
}

// Result contains the outputs of a split export.
type Result struct {
	// Base is the path prefix the files were written under. It differs from
	// the requested base when the version policy picked a new one.
	Base string

	// Pairs are the written file pairs in axis order.
	Pairs []Pair

	// Advisories are the non-fatal notices of the run.
	Advisories []errors.Advisory

	// Duration is the wall time of the run.
	Duration time.Duration
}

// Files returns every written path, graphics before markup per pair.
func (r *Result) Files() []string {
	files := make([]string, 0, 2*len(r.Pairs))
	for _, p := range r.Pairs {
		files = append(files, p.Graphics, p.Markup)
	}
	return files
}

func (r *Result) fileCount() int {
	if r == nil {
		return 0
	}
	return 2 * len(r.Pairs)
}
