// Package figure provides the in-memory plot model exported by plotsplit.
//
// # Overview
//
// A [Figure] is the root canvas. It has a physical paper size in centimeters,
// one or more [Axis] regions, and optional free-floating [Text] annotations.
// Each Axis owns its [Line] curves, coordinate limits, grid flags and labels.
//
// Every element carries a [Handle], a UUID minted by the constructors. Callers
// name the thing they want exported with a handle, and [ResolveTarget] turns
// it into a [Target]: either the whole figure or one of its axes. The
// resolution happens once at the entry point, so downstream code switches on
// [Target.Kind] instead of probing types again.
//
// # Coordinates
//
//   - Figure.PaperSize is in centimeters.
//   - Axis.Position is normalized: {0,0,1,1} covers the whole paper with the
//     origin at the bottom-left corner.
//   - Axis.LooseInset is in centimeters; it is the margin the axis reserves
//     around its box for tick labels and titles.
//   - Line.Width and all font sizes are in points.
//
// # Ownership
//
// Export code never mutates a caller's figure. It works on copies made with
// [Figure.Clone], which round-trips through encoding/gob so that no slice or pointer
// is shared with the original.
//
// [Target.Kind]: Target.Kind
package figure
