package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotsplit/pkg/figure"
	"github.com/matzehuels/plotsplit/pkg/geometry"
	"github.com/matzehuels/plotsplit/pkg/io"
)

// inspectCommand creates the inspect command, which lists the axes of a
// figure file with the handles export --axis accepts.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [figure]",
		Short: "List the axes of a figure file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fig, err := io.ImportFigure(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			p := printer{w: w}
			p.keyValue("figure", string(fig.Handle))
			p.keyValue("paper", fmt.Sprintf("%s x %s cm", num(fig.PaperSize.Width), num(fig.PaperSize.Height)))
			p.keyValue("axes", strconv.Itoa(len(fig.Axes)))
			fmt.Fprintln(w, axisTable(fig))
			return nil
		},
	}
}

var axisHeaders = []string{"#", "Handle", "Title", "Box (cm)", "X", "Y", "Lines", "Grid"}

// axisRows describes every axis of fig, one row per axis.
func axisRows(fig *figure.Figure) [][]string {
	rows := make([][]string, 0, len(fig.Axes))
	for i, ax := range fig.Axes {
		box := geometry.ToCentimeters(ax.Position, fig.PaperSize)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			string(ax.Handle),
			titleOrDash(ax.Title),
			num(box.W) + " x " + num(box.H),
			rangeString(ax.XLim),
			rangeString(ax.YLim),
			strconv.Itoa(len(ax.Lines)),
			gridString(ax),
		})
	}
	return rows
}

func axisTable(fig *figure.Figure) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(axisHeaders...).
		Rows(axisRows(fig)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 1 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

func rangeString(r figure.Range) string {
	if r.IsAuto() {
		return "auto"
	}
	return "[" + num(r.Min) + ", " + num(r.Max) + "]"
}

func gridString(ax *figure.Axis) string {
	switch {
	case ax.XGrid && ax.YGrid:
		return "x,y"
	case ax.XGrid:
		return "x"
	case ax.YGrid:
		return "y"
	default:
		return "—"
	}
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
