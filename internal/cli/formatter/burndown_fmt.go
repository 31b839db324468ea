package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ssctools/ssctrack/internal/stats"
)

const burndownBarWidth = 40

// FormatBurndown renders the ideal-vs-actual trajectory as horizontal bars:
// one row per sampled day, actual in green over the dashed ideal marker.
func FormatBurndown(points []stats.BurndownPoint) string {
	if len(points) == 0 {
		return Dim("No trajectory to draw.") + "\n"
	}

	// Scale bars against the series maximum.
	max := 0
	for _, p := range points {
		if p.Ideal > max {
			max = p.Ideal
		}
		if p.Actual != nil && *p.Actual > max {
			max = *p.Actual
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	b.WriteString(Header("Burndown: chapters remaining") + "\n")
	for _, p := range points {
		line := fmt.Sprintf("%s  %s ideal %3d", p.Day.Format("Jan 02"), renderBar(p.Ideal, max, StyleDim), p.Ideal)
		if p.Actual != nil {
			line += fmt.Sprintf("   %s actual %3d", renderBar(*p.Actual, max, StyleGreen), *p.Actual)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + Dim("Actual remaining vs the ideal linear path to the exam date.") + "\n")
	return b.String()
}

func renderBar(value, max int, style lipgloss.Style) string {
	filled := value * burndownBarWidth / max
	if filled > burndownBarWidth {
		filled = burndownBarWidth
	}
	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, burndownBarWidth-filled))
}
