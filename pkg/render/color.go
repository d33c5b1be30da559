package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/plotutil"

	"github.com/matzehuels/plotsplit/pkg/errors"
)

// parseColor decodes a "#rrggbb" or "#rgb" string. The empty string yields
// def.
func parseColor(s string, def color.Color) (color.Color, error) {
	if s == "" {
		return def, nil
	}
	if s == "none" || s == "transparent" {
		return color.Transparent, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid color %q", s)
	}
	return c, nil
}

// defaultPalette colors the i-th line of an axis when it has no color.
func defaultPalette(i int) color.Color {
	return plotutil.Color(i)
}
