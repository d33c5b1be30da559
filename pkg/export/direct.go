package export

import (
	"context"
	"time"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/geometry"
	"github.com/matzehuels/plotsplit/pkg/materialize"
	"github.com/matzehuels/plotsplit/pkg/observability"
	"github.com/matzehuels/plotsplit/pkg/render"
)

// Direct renders the target, decorations included, to a single file whose
// format follows the extension of path. It returns the path written, which
// differs from path only under [PolicyVersion].
func Direct(ctx context.Context, path string, opts Options) (written string, err error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", err
	}
	if err := errors.ValidateOutputPath(path); err != nil {
		return "", err
	}
	if _, err := render.FormatFromPath(path); err != nil {
		return "", err
	}
	hooks := observability.Export()

	defer func() {
		files := 0
		if err == nil {
			files = 1
		}
		hooks.OnExportComplete(ctx, ModeDirect, files, time.Since(start), err)
	}()

	var scope materialize.Scope
	defer scope.Close()

	w, err := scope.Materialize(opts.Target)
	if err != nil {
		return "", err
	}
	fig := w.Figure()
	hooks.OnExportStart(ctx, ModeDirect, len(fig.Axes))

	paper, err := geometry.ResolvePaperSize(fig, opts.PaperSize)
	if err != nil {
		return "", err
	}
	fig.PaperSize = paper
	opts.Style().Apply(fig)

	written = path
	if opts.Policy == PolicyVersion {
		written = versionPath(path)
	}
	if err := save(ctx, opts.Engine, fig, written); err != nil {
		return "", err
	}
	opts.Logger.Info("exported figure", "path", written)
	return written, nil
}
