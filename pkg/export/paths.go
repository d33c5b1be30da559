package export

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SplitBase strips a trailing markup or graphics extension from output, so
// "figs/out.tikz", "figs/out.pdf" and "figs/out" all name base "figs/out".
func SplitBase(output, markupExt string) string {
	ext := filepath.Ext(output)
	if ext == "" {
		return output
	}
	if strings.EqualFold(ext, markupExt) || strings.EqualFold(ext, GraphicsExt) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// GraphicsPath is the PDF of axis index (1-based) out of total.
func GraphicsPath(base string, index, total int) string {
	return base + suffix(index, total) + GraphicsExt
}

// MarkupPath is the markup fragment of axis index (1-based) out of total.
func MarkupPath(base, ext string, index, total int) string {
	return base + suffix(index, total) + ext
}

func suffix(index, total int) string {
	if total <= 1 {
		return ""
	}
	return "-" + strconv.Itoa(index)
}

// runFiles lists every file a split run over total axes writes at base.
func runFiles(base, ext string, total int) []string {
	files := make([]string, 0, 2*total)
	for i := 1; i <= total; i++ {
		files = append(files, GraphicsPath(base, i, total), MarkupPath(base, ext, i, total))
	}
	return files
}

// versionBase returns base if none of files(base) exist, and otherwise the
// first "<base>_v<N>", N >= 2, with no existing file.
func versionBase(base string, files func(base string) []string) string {
	if !anyExists(files(base)) {
		return base
	}
	for v := 2; ; v++ {
		candidate := base + "_v" + strconv.Itoa(v)
		if !anyExists(files(candidate)) {
			return candidate
		}
	}
}

// versionPath is versionBase for a single file, keeping its extension.
func versionPath(path string) string {
	ext := filepath.Ext(path)
	base := versionBase(strings.TrimSuffix(path, ext), func(b string) []string {
		return []string{b + ext}
	})
	return base + ext
}

func anyExists(paths []string) bool {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
