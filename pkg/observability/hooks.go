// Package observability provides hooks for metrics, tracing, and logging.
//
// The export library reports what it does through hook interfaces instead
// of depending on a metrics or tracing backend. Consumers register hooks at
// startup; the defaults do nothing.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetExportHooks(&myExportHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Export().OnExportStart(ctx, "split", axes)
//	// ... export ...
//	observability.Export().OnExportComplete(ctx, "split", pairs, duration, err)
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/matzehuels/plotsplit/pkg/errors"
)

// =============================================================================
// Export Hooks
// =============================================================================

// ExportHooks receives events from split and direct exports.
type ExportHooks interface {
	// OnExportStart is called once a run knows how many axes it exports.
	OnExportStart(ctx context.Context, mode string, axes int)

	// OnAxisExported is called after the graphics and markup of axis index
	// (1-based) are written.
	OnAxisExported(ctx context.Context, index int, graphics, markup string)

	// OnAdvisory is called for every non-fatal notice of a run.
	OnAdvisory(ctx context.Context, a errors.Advisory)

	// OnExportComplete is called when a run ends, successfully or not.
	OnExportComplete(ctx context.Context, mode string, files int, duration time.Duration, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events around graphics engine calls.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, path string)
	OnRenderComplete(ctx context.Context, path string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopExportHooks is a no-op implementation of ExportHooks.
type NoopExportHooks struct{}

func (NoopExportHooks) OnExportStart(context.Context, string, int)                          {}
func (NoopExportHooks) OnAxisExported(context.Context, int, string, string)                 {}
func (NoopExportHooks) OnAdvisory(context.Context, errors.Advisory)                         {}
func (NoopExportHooks) OnExportComplete(context.Context, string, int, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, string)                         {}
func (NoopRenderHooks) OnRenderComplete(context.Context, string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	exportHooks ExportHooks = NoopExportHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetExportHooks registers custom export hooks.
// This should be called once at application startup before any export.
func SetExportHooks(h ExportHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		exportHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Export returns the registered export hooks.
func Export() ExportHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return exportHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	exportHooks = NoopExportHooks{}
	renderHooks = NoopRenderHooks{}
}
