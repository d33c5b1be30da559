package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/export"
	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/io"
	"github.com/matzehuels/plotsplit/pkg/render"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output    string    // base path (split) or image path (direct)
	direct    bool      // render one image instead of PDF + markup pairs
	size      []float64 // paper size in cm: width,height
	fontSize  float64   // font size in pt (0 = unchanged)
	lineWidth []float64 // line width(s) in pt
	axis      string    // axis handle or 1-based index; empty = whole figure
	pick      bool      // choose the axis interactively
	policy    string    // overwrite or version
	ext       string    // markup extension
	verify    bool      // check PDF page sizes after writing
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export [figure]",
		Short: "Export a figure file as PDF graphics plus pgfplots markup",
		Long: `Export reads a figure (.json or .toml) and writes, for every axis, a
transparent PDF with the plotted data and a pgfplots fragment that draws the
axis around it. Figures with several axes produce numbered pairs.

With --direct the figure is rendered to a single image instead; the format
follows the extension of --output (eps, jpg, pdf, png, svg, tex, tif).`,
		Example: `  plotsplit export fig.json -o figs/response --size 10,8
  plotsplit export fig.toml --axis 2 --line-width 1.5
  plotsplit export fig.json --direct -o preview.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(path)
			if err != nil {
				return err
			}
			opts.applyConfig(cfg, cmd.Flags().Changed)
			ctx := withLogger(cmd.Context(), c.Logger)
			return runExport(ctx, printer{w: cmd.OutOrStdout()}, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: input path without extension)")
	cmd.Flags().BoolVar(&opts.direct, "direct", false, "render a single image instead of split pairs")
	cmd.Flags().Float64SliceVar(&opts.size, "size", nil, "paper size in cm: width,height")
	cmd.Flags().Float64Var(&opts.fontSize, "font-size", 0, "font size in pt for tick labels and texts")
	cmd.Flags().Float64SliceVar(&opts.lineWidth, "line-width", nil, "line width in pt: one value, or one per line")
	cmd.Flags().StringVar(&opts.axis, "axis", "", "export one axis, by 1-based index or handle")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose the axis interactively")
	cmd.Flags().StringVar(&opts.policy, "policy", "", "existing files: overwrite (default), version")
	cmd.Flags().StringVar(&opts.ext, "ext", "", "markup file extension (default .tikz)")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "check that every PDF matches its markup")

	return cmd
}

// applyConfig fills options whose flag was not set from cfg.
func (o *exportOpts) applyConfig(cfg Config, changed func(name string) bool) {
	if !changed("size") && len(cfg.PaperSize) > 0 {
		o.size = cfg.PaperSize
	}
	if !changed("font-size") {
		o.fontSize = cfg.FontSize
	}
	if !changed("line-width") && len(cfg.LineWidth) > 0 {
		o.lineWidth = cfg.LineWidth
	}
	if !changed("policy") {
		o.policy = cfg.Policy
	}
	if !changed("ext") {
		o.ext = cfg.MarkupExt
	}
	if !changed("verify") {
		o.verify = cfg.Verify
	}
}

func runExport(ctx context.Context, p printer, input string, opts exportOpts) error {
	logger := loggerFromContext(ctx)
	fig, err := io.ImportFigure(input)
	if err != nil {
		return err
	}
	logger.Debug("loaded figure", "path", input, "axes", len(fig.Axes), "lines", len(fig.Lines()))

	var target figure.Target
	if opts.pick {
		target, err = pickTarget(fig)
	} else {
		target, err = resolveTarget(fig, opts.axis)
	}
	if err != nil {
		return err
	}

	eo := export.Options{
		Target:     target,
		PaperSize:  opts.size,
		FontSize:   opts.fontSize,
		LineWidths: opts.lineWidth,
		MarkupExt:  opts.ext,
		Policy:     export.Policy(opts.policy),
		Verify:     opts.verify,
		Logger:     logger,
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input))
		if opts.direct {
			output += "." + render.FormatPDF
		}
	}

	prog := newProgress(logger)
	if opts.direct {
		written, err := export.Direct(ctx, output, eo)
		if err != nil {
			return err
		}
		prog.done("Rendered figure")
		p.success("Exported %s", target.Kind())
		p.file(written)
		return nil
	}

	res, err := export.Split(ctx, output, eo)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Exported %d %s", len(res.Pairs), plural(len(res.Pairs), "axis", "axes")))

	p.success("Wrote %d %s", len(res.Pairs), plural(len(res.Pairs), "pair", "pairs"))
	for _, f := range res.Files() {
		p.file(f)
	}
	return nil
}

// resolveTarget selects the whole figure for an empty selector, axis n for a
// 1-based index n, and otherwise the element with that handle.
func resolveTarget(fig *figure.Figure, sel string) (figure.Target, error) {
	if n, err := strconv.Atoi(sel); err == nil {
		if n < 1 || n > len(fig.Axes) {
			return figure.Target{}, errors.New(errors.ErrCodeInvalidTarget, "axis %d out of range (figure has %d)", n, len(fig.Axes))
		}
		return figure.AxisTarget(fig, fig.Axes[n-1]), nil
	}
	return figure.ResolveTarget(fig, figure.Handle(sel))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
