package export

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/geometry"
	"github.com/matzehuels/plotsplit/pkg/markup"
	"github.com/matzehuels/plotsplit/pkg/render"
	"github.com/matzehuels/plotsplit/pkg/style"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultMarkupExt is the extension of markup fragments.
	DefaultMarkupExt = ".tikz"

	// GraphicsExt is the extension of split graphics files. Split exports
	// always produce PDF.
	GraphicsExt = ".pdf"

	// DefaultPolicy replaces files left by an earlier run.
	DefaultPolicy = PolicyOverwrite
)

// Export modes, as reported to hooks.
const (
	ModeSplit  = "split"
	ModeDirect = "direct"
)

// Policy decides what happens to files of an earlier run at the same base.
type Policy string

const (
	// PolicyOverwrite replaces existing files.
	PolicyOverwrite Policy = "overwrite"
	// PolicyVersion writes to the first "<base>_v<N>" (N >= 2) for which
	// none of the run's files exist yet.
	PolicyVersion Policy = "version"
)

// ValidPolicies is the set of supported overwrite policies.
var ValidPolicies = map[Policy]bool{
	PolicyOverwrite: true,
	PolicyVersion:   true,
}

// Engine is the graphics collaborator: it saves figures, inferring the
// format from the path, and measures axis insets.
type Engine interface {
	Save(f *figure.Figure, path string) error
	geometry.Measurer
}

// =============================================================================
// Options
// =============================================================================

// Options configures an export.
type Options struct {
	// Target is the figure or axis to export.
	Target figure.Target

	// PaperSize overrides the paper size, {width, height} in cm.
	PaperSize []float64

	// FontSize sets tick labels and texts, in points. 0 keeps them.
	FontSize float64

	// LineWidths sets line widths in points: one value for every line, or
	// one value per line in discovery order.
	LineWidths []float64

	// MarkupExt is the extension of split markup files, with the dot.
	MarkupExt string

	// Policy handles files of a previous run.
	Policy Policy

	// Verify re-reads every split PDF and checks its page size against the
	// markup.
	Verify bool

	// Runtime collaborators
	Engine Engine
	Writer markup.Writer
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.Target.Validate(); err != nil {
		return err
	}
	if len(o.PaperSize) > 0 {
		if len(o.PaperSize) != 2 {
			return errors.New(errors.ErrCodeInvalidInput, "paper size needs width and height, got %d values", len(o.PaperSize))
		}
		if err := errors.ValidatePositive("paper size", o.PaperSize...); err != nil {
			return err
		}
	}
	if err := o.Style().Validate(); err != nil {
		return err
	}

	if o.MarkupExt == "" {
		o.MarkupExt = DefaultMarkupExt
	}
	if err := errors.ValidateExtension(o.MarkupExt); err != nil {
		return err
	}
	if o.Policy == "" {
		o.Policy = DefaultPolicy
	}
	if !ValidPolicies[o.Policy] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid policy: %q (must be one of: overwrite, version)", o.Policy)
	}

	if o.Engine == nil {
		o.Engine = render.NewEngine()
	}
	if o.Writer == nil {
		o.Writer = markup.FileWriter{}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Style returns the style overrides of o.
func (o *Options) Style() style.Options {
	return style.Options{FontSize: o.FontSize, LineWidths: o.LineWidths}
}
