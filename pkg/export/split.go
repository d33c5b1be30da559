package export

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/geometry"
	"github.com/matzehuels/plotsplit/pkg/markup"
	"github.com/matzehuels/plotsplit/pkg/materialize"
	"github.com/matzehuels/plotsplit/pkg/observability"
)

// Split exports every axis of the target as a PDF plus markup pair under
// base. A trailing markup or ".pdf" extension on base is ignored.
//
// The run stops at the first error. Files written before it are kept, and
// every working copy is closed.
func Split(ctx context.Context, base string, opts Options) (res *Result, err error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if err := errors.ValidateOutputPath(base); err != nil {
		return nil, err
	}
	base = SplitBase(base, opts.MarkupExt)
	logger := opts.Logger
	hooks := observability.Export()

	defer func() {
		hooks.OnExportComplete(ctx, ModeSplit, res.fileCount(), time.Since(start), err)
	}()

	var scope materialize.Scope
	defer scope.Close()

	src, err := scope.Materialize(opts.Target)
	if err != nil {
		return nil, err
	}
	fig := src.Figure()

	total := len(fig.Axes)
	if total == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure has no axes")
	}
	paper, err := geometry.ResolvePaperSize(fig, opts.PaperSize)
	if err != nil {
		return nil, err
	}
	fig.PaperSize = paper

	policy := opts.Style().Apply(fig)
	logger.Debug("applied style", "font_size", opts.FontSize, "line_widths", policy)

	hooks.OnExportStart(ctx, ModeSplit, total)
	out := &Result{Base: base}

	if total > 1 {
		adv := errors.Advisory{
			Code:    errors.AdvisoryMultiAxis,
			Message: fmt.Sprintf("figure has %d axes; each axis is exported as its own file pair", total),
		}
		logger.Warn(adv.Message, "code", adv.Code)
		hooks.OnAdvisory(ctx, adv)
		out.Advisories = append(out.Advisories, adv)
	}

	if opts.Policy == PolicyVersion {
		out.Base = versionBase(base, func(b string) []string {
			return runFiles(b, opts.MarkupExt, total)
		})
		if out.Base != base {
			logger.Info("keeping earlier files", "base", out.Base)
		}
	}

	for i := range fig.Axes {
		pair, err := splitAxis(ctx, &scope, fig, i, out.Base, opts)
		if err != nil {
			return nil, fmt.Errorf("axis %d: %w", i+1, err)
		}
		out.Pairs = append(out.Pairs, pair)
		hooks.OnAxisExported(ctx, pair.Index, pair.Graphics, pair.Markup)
		logger.Debug("exported axis", "graphics", pair.Graphics, "markup", pair.Markup)
	}

	out.Duration = time.Since(start)
	return out, nil
}

// splitAxis renders and describes axis i of fig. fig is the run's own copy;
// its axis gets frozen limits and a loose inset.
func splitAxis(ctx context.Context, scope *materialize.Scope, fig *figure.Figure, i int, base string, opts Options) (Pair, error) {
	total := len(fig.Axes)
	ax := fig.Axes[i]
	pair := Pair{
		Index:    i + 1,
		Graphics: GraphicsPath(base, i+1, total),
		Markup:   MarkupPath(base, opts.MarkupExt, i+1, total),
	}

	geom, err := geometry.ResolveAxisGeometry(ax, fig.PaperSize, opts.Engine)
	if err != nil {
		return Pair{}, err
	}
	ax.FreezeLimits()
	pair.Geometry = geom
	pair.Meta = markup.MetaFromAxis(ax, geom.Width, geom.Height)
	opts.Logger.Debug("resolved axis geometry",
		"axis", pair.Index,
		"width", geom.Width,
		"height", geom.Height,
		"inset", geom.Inset)

	iso, err := scope.Isolate(fig, i, geom)
	if err != nil {
		return Pair{}, err
	}
	defer iso.Close()

	if err := save(ctx, opts.Engine, iso.Figure(), pair.Graphics); err != nil {
		return Pair{}, err
	}
	if opts.Verify {
		if err := Verify(pair); err != nil {
			return Pair{}, err
		}
	}

	rel, err := markup.Relative(pair.Markup, pair.Graphics)
	if err != nil {
		return Pair{}, err
	}
	if err := opts.Writer.WriteMarkup(pair.Markup, markup.Emit(pair.Meta, rel)); err != nil {
		return Pair{}, err
	}
	return pair, nil
}

// save runs the engine between render hooks.
func save(ctx context.Context, e Engine, f *figure.Figure, path string) error {
	hooks := observability.Render()
	start := time.Now()
	hooks.OnRenderStart(ctx, path)
	err := e.Save(f, path)
	hooks.OnRenderComplete(ctx, path, time.Since(start), err)
	return err
}
