package formatter

import (
	"testing"
	"time"

	"github.com/ssctools/ssctrack/internal/stats"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnalytics(t *testing.T) {
	out := FormatAnalytics(AnalyticsSummary{
		Streak:         3,
		Velocity:       0.4,
		Projection:     stats.Projection{Kind: stats.ProjectionDate, Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
		ChaptersPerDay: 2.9,
		Distribution:   stats.StatusDistribution{Completed: 5, InProgress: 2, NotStarted: 111},
		Daily: []stats.DayCount{
			{Day: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC), Count: 2},
		},
	})

	assert.Contains(t, out, "3 days")
	assert.Contains(t, out, "0.4 ch/day")
	assert.Contains(t, out, "Feb 1, 2026")
	assert.Contains(t, out, "5 completed")
	assert.Contains(t, out, "Jan 09")
}

func TestFormatProjection_Sentinels(t *testing.T) {
	assert.Contains(t, FormatProjection(stats.Projection{Kind: stats.ProjectionDone}), "DONE")
	assert.Contains(t, FormatProjection(stats.Projection{Kind: stats.ProjectionUnknown}), "N/A")
}

func TestFormatBurndown(t *testing.T) {
	actual := 100
	points := []stats.BurndownPoint{
		{Day: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), Ideal: 118, Actual: &actual},
		{Day: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC), Ideal: 0},
	}
	out := FormatBurndown(points)
	assert.Contains(t, out, "Jan 03")
	assert.Contains(t, out, "actual 100")
	assert.Contains(t, out, "ideal   0")

	assert.Contains(t, FormatBurndown(nil), "No trajectory")
}
