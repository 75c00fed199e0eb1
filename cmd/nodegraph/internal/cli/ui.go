package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/go-drift/nodegraph/pkg/graphnode"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// renderTable draws rows under headers. Row selected (or -1) is highlighted.
func renderTable(headers []string, rows [][]string, selected int) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case row == selected:
				return styleSelected
			default:
				return styleValue
			}
		}).
		Render()
}

func printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, styleTitle.Render(fmt.Sprintf(format, args...)))
}

// childLabel names a child for display.
func childLabel(c graphnode.Child, index int) string {
	if b, ok := c.(*graphnode.Box); ok && b.Label != "" {
		return b.Label
	}
	return "#" + strconv.Itoa(index)
}

// slotChildren returns the visible children of n in slot order.
func slotChildren(n *graphnode.GraphNode) []graphnode.Child {
	var out []graphnode.Child
	for _, c := range n.Children() {
		if c.Visible() {
			out = append(out, c)
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
