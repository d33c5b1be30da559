package render

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/plotsplit/pkg/errors"
)

// Format constants for the canvases gonum can write.
const (
	FormatEPS  = "eps"
	FormatJPG  = "jpg"
	FormatJPEG = "jpeg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatTeX  = "tex"
	FormatTIF  = "tif"
	FormatTIFF = "tiff"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatEPS:  true,
	FormatJPG:  true,
	FormatJPEG: true,
	FormatPDF:  true,
	FormatPNG:  true,
	FormatSVG:  true,
	FormatTeX:  true,
	FormatTIF:  true,
	FormatTIFF: true,
}

// FormatFromPath returns the output format implied by the extension of path.
// The match is case-insensitive.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "", errors.New(errors.ErrCodeUnsupportedOutput, "no file extension in %q", path)
	}
	if !ValidFormats[ext] {
		return "", errors.New(errors.ErrCodeUnsupportedOutput, "unsupported output format: %q (must be one of: eps, jpg, pdf, png, svg, tex, tif)", ext)
	}
	return ext, nil
}
