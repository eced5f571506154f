package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styles are rebuilt from CurrentTheme on every View so theme switches show
// up on the next frame.
type styles struct {
	canvas, stats, header, label, value, graph, help lipgloss.Style
	running, paused, recording                       lipgloss.Style
}

func themed(t Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2).Foreground(t.Scene),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(46),
		header:    lipgloss.NewStyle().Foreground(t.Header).Bold(true).MarginBottom(1),
		label:     lipgloss.NewStyle().Foreground(t.Label).Width(14),
		value:     lipgloss.NewStyle().Foreground(t.Value),
		graph:     lipgloss.NewStyle().Foreground(t.Graph),
		help:      lipgloss.NewStyle().Foreground(t.Label).MarginTop(1),
		running:   lipgloss.NewStyle().Foreground(t.Running).Bold(true),
		paused:    lipgloss.NewStyle().Foreground(t.Paused).Bold(true),
		recording: lipgloss.NewStyle().Foreground(t.Record).Bold(true).Blink(true),
	}
}

// ProgressBar renders a bar of width cells filled to ratio.
func ProgressBar(ratio float64, width int) string {
	ratio = max(0, min(1, ratio))
	filled := int(ratio * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat("-", width-filled) + "]"
}

// Divider returns a horizontal rule of width cells.
func Divider(width int) string {
	return strings.Repeat("─", width)
}
