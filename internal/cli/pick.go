package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/plotsplit/pkg/errors"
	"github.com/matzehuels/plotsplit/pkg/figure"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// AxisPickerModel - Interactive target selection
// =============================================================================

// AxisPickerModel is the bubbletea model for choosing an export target.
// Row 0 is the whole figure; row i is axis i.
type AxisPickerModel struct {
	Figure    *figure.Figure
	Cursor    int
	Done      bool
	Cancelled bool
}

// NewAxisPickerModel creates a picker over the axes of fig.
func NewAxisPickerModel(fig *figure.Figure) AxisPickerModel {
	return AxisPickerModel{Figure: fig}
}

// Target returns the selected target.
func (m AxisPickerModel) Target() figure.Target {
	if m.Cursor == 0 {
		return figure.FigureTarget(m.Figure)
	}
	return figure.AxisTarget(m.Figure, m.Figure.Axes[m.Cursor-1])
}

func (m AxisPickerModel) Init() tea.Cmd {
	return nil
}

func (m AxisPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.Cancelled = true
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Figure.Axes) {
				m.Cursor++
			}
		case "enter":
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m AxisPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Export Target"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := []string{fmt.Sprintf("whole figure  %s", listDimStyle.Render(fmt.Sprintf("%d axes", len(m.Figure.Axes))))}
	for i, ax := range m.Figure.Axes {
		rows = append(rows, fmt.Sprintf("axis %d  %-20s %s", i+1, titleOrDash(ax.Title),
			listDimStyle.Render(fmt.Sprintf("%d lines", len(ax.Lines)))))
	}

	for i, row := range rows {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + row))
		} else {
			b.WriteString(listNormalStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// pickTarget runs the picker and returns the chosen target.
func pickTarget(fig *figure.Figure) (figure.Target, error) {
	final, err := tea.NewProgram(NewAxisPickerModel(fig)).Run()
	if err != nil {
		return figure.Target{}, fmt.Errorf("axis picker: %w", err)
	}
	m := final.(AxisPickerModel)
	if !m.Done {
		return figure.Target{}, errors.New(errors.ErrCodeInvalidTarget, "no target selected")
	}
	return m.Target(), nil
}

func titleOrDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
