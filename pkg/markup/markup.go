// Package markup emits the pgfplots fragment that reproduces an axis frame
// around a separately rendered graphics file.
//
// The fragment is a tikzpicture holding one axis whose options come in a
// fixed order:
//
//	\begin{tikzpicture}
//	\begin{axis}[%
//	scale only axis,
//	ymajorgrids,
//	xmajorgrids,
//	width=10cm,
//	height=8cm,
//	title={},
//	ylabel={},
//	xlabel={},
//	xmin=-10, xmax=10,
//	ymin=0, ymax=100
//	]
//	\addplot graphics[xmin=-10,xmax=10,ymin=0,ymax=100] {out.pdf};
//	\end{axis}
//	\end{tikzpicture}
//
// The grid lines appear only for axes that have them. Labels are emitted
// verbatim so they may carry TeX markup.
package markup

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

// AxisMeta is what the fragment needs to know about an axis.
type AxisMeta struct {
	Width, Height float64 // cm, equal to the paired graphics page
	XLim, YLim    figure.Range
	XGrid, YGrid  bool
	Title         string
	XLabel        string
	YLabel        string
}

// MetaFromAxis collects the metadata of ax drawn in a width x height box.
// The axis limits must already be frozen.
func MetaFromAxis(ax *figure.Axis, width, height float64) AxisMeta {
	return AxisMeta{
		Width:  width,
		Height: height,
		XLim:   ax.XLim,
		YLim:   ax.YLim,
		XGrid:  ax.XGrid,
		YGrid:  ax.YGrid,
		Title:  ax.Title,
		XLabel: ax.XLabel,
		YLabel: ax.YLabel,
	}
}

// Emit renders the fragment for meta embedding the graphics file at the
// given path, which is written as is.
func Emit(meta AxisMeta, graphics string) string {
	xmin, xmax := num(meta.XLim.Min), num(meta.XLim.Max)
	ymin, ymax := num(meta.YLim.Min), num(meta.YLim.Max)

	var b strings.Builder
	b.WriteString("\\begin{tikzpicture}\n")
	b.WriteString("\\begin{axis}[%\n")
	b.WriteString("scale only axis,\n")
	if meta.YGrid {
		b.WriteString("ymajorgrids,\n")
	}
	if meta.XGrid {
		b.WriteString("xmajorgrids,\n")
	}
	b.WriteString("width=" + num(meta.Width) + "cm,\n")
	b.WriteString("height=" + num(meta.Height) + "cm,\n")
	b.WriteString("title={" + meta.Title + "},\n")
	b.WriteString("ylabel={" + meta.YLabel + "},\n")
	b.WriteString("xlabel={" + meta.XLabel + "},\n")
	b.WriteString("xmin=" + xmin + ", xmax=" + xmax + ",\n")
	b.WriteString("ymin=" + ymin + ", ymax=" + ymax + "\n")
	b.WriteString("]\n")
	b.WriteString("\\addplot graphics[xmin=" + xmin + ",xmax=" + xmax + ",ymin=" + ymin + ",ymax=" + ymax + "] {" + graphics + "};\n")
	b.WriteString("\\end{axis}\n")
	b.WriteString("\\end{tikzpicture}\n")
	return b.String()
}

// Relative returns graphicsPath relative to the directory of markupPath,
// with forward slashes, which is how TeX resolves \addplot graphics.
func Relative(markupPath, graphicsPath string) (string, error) {
	base, err := filepath.Abs(filepath.Dir(markupPath))
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", markupPath)
	}
	target, err := filepath.Abs(graphicsPath)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", graphicsPath)
	}
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "relate %s to %s", graphicsPath, markupPath)
	}
	return filepath.ToSlash(rel), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
