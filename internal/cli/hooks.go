package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotsplit/pkg/observability"
)

// RenderTimer logs the duration of every graphics engine call at debug level.
type RenderTimer struct {
	observability.NoopRenderHooks
	logger *log.Logger
}

// NewRenderTimer returns render hooks that log to l.
func NewRenderTimer(l *log.Logger) *RenderTimer {
	return &RenderTimer{logger: l}
}

func (r *RenderTimer) OnRenderComplete(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		r.logger.Debug("render failed", "path", path, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	r.logger.Debug("rendered", "path", path, "duration", d.Round(time.Millisecond))
}
