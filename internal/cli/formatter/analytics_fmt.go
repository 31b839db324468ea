package formatter

import (
	"fmt"
	"strings"

	"github.com/ssctools/ssctrack/internal/stats"
)

// AnalyticsSummary is the Analytics view-model.
type AnalyticsSummary struct {
	Streak         int
	Velocity       float64
	Projection     stats.Projection
	ChaptersPerDay float64
	Distribution   stats.StatusDistribution
	Daily          []stats.DayCount
}

// FormatAnalytics renders the derived study metrics.
func FormatAnalytics(a AnalyticsSummary) string {
	var b strings.Builder

	rows := [][]string{
		{"Current streak", fmt.Sprintf("%d days", a.Streak)},
		{"Study velocity", fmt.Sprintf("%.1f ch/day", a.Velocity)},
		{"Projected finish", FormatProjection(a.Projection)},
		{"Required pace", formatPace(a.ChaptersPerDay)},
	}
	b.WriteString(RenderTable([]string{"METRIC", "VALUE"}, rows))
	b.WriteString("\n")

	d := a.Distribution
	b.WriteString(fmt.Sprintf("%s %s / %s / %s\n",
		Bold("Status:"),
		StyleGreen.Render(fmt.Sprintf("%d completed", d.Completed)),
		StyleYellow.Render(fmt.Sprintf("%d in progress", d.InProgress)),
		Dim(fmt.Sprintf("%d not started", d.NotStarted)),
	))

	if len(a.Daily) > 0 {
		b.WriteString("\n" + Header("Activity (last days)") + "\n")
		for _, day := range a.Daily {
			b.WriteString(fmt.Sprintf("%s  %s %d\n",
				day.Day.Format("Jan 02"),
				StyleGreen.Render(strings.Repeat(filledBlock, day.Count)),
				day.Count,
			))
		}
	}

	return RenderBox("Analytics", b.String())
}

// FormatProjection renders a projected finish date or its sentinel.
func FormatProjection(p stats.Projection) string {
	switch p.Kind {
	case stats.ProjectionDate:
		return p.Date.Format("Jan 2, 2006")
	case stats.ProjectionDone:
		return StyleGreen.Render("DONE")
	default:
		return Dim("N/A")
	}
}
