// Package pkg provides the libraries behind plotsplit.
//
// # Overview
//
// plotsplit exports plots for LaTeX documents in two parts: a transparent PDF
// per axis that holds only the plotted data, and a pgfplots fragment that
// draws the axis frame, ticks, grid and labels around that PDF. The fragment
// is typeset by the document, so the plot uses the document's own fonts.
//
// The typical data flow:
//
//	Figure file (.json / .toml)
//	         ↓
//	    [io] package (decode, fill defaults)
//	         ↓
//	    [materialize] package (working copy of the target)
//	         ↓
//	    [style] + [geometry] packages (fonts, line widths, axis boxes)
//	         ↓
//	    [render] package (chrome-free PDF per axis)
//	         ↓
//	    [markup] package (pgfplots fragment per axis)
//
// [export] ties these steps together.
//
// # Quick Start
//
//	fig, err := io.ImportFigure("response.json")
//	if err != nil {
//	    return err
//	}
//	res, err := export.Split(ctx, "figs/response", export.Options{
//	    Target:    figure.FigureTarget(fig),
//	    PaperSize: []float64{10, 8},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, f := range res.Files() {
//	    fmt.Println(f)
//	}
//
// # Main Packages
//
// [figure] - The in-memory figure model: figures, axes, lines, texts and the
// export [figure.Target].
//
// [export] - Split export (PDF + markup pairs) and direct export (one image
// in any supported format), with naming and versioning of output files.
//
// [render] - The gonum/plot based render engine. It also measures how much
// room an axis needs for its ticks and labels.
//
// [markup] - The pgfplots fragment and the relative path it embeds.
//
// [geometry] - Unit conversion and axis box resolution.
//
// [style] - Font size and line width overrides.
//
// [materialize] - Working copies that never alias the caller's figure.
//
// [errors] - Coded errors shared by all packages.
//
// [observability] - Hooks around exports and renders.
//
// # Testing
//
//	go test ./pkg/...
//
// [figure]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/figure
// [export]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/export
// [render]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/render
// [markup]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/markup
// [geometry]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/geometry
// [style]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/style
// [materialize]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/materialize
// [errors]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/observability
// [io]: https://pkg.go.dev/github.com/matzehuels/plotsplit/pkg/io
package pkg
