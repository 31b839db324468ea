package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/stats"
)

const analyticsDailyDays = 7

// analyticsView renders pace metrics and the burndown chart in one screen.
type analyticsView struct {
	app     *App
	content string
}

func newAnalyticsView(app *App) *analyticsView {
	v := &analyticsView{app: app}
	v.reload()
	return v
}

func (v *analyticsView) ID() ViewID    { return ViewAnalytics }
func (v *analyticsView) Title() string { return "Analytics" }

func (v *analyticsView) ShortHelp() []key.Binding { return nil }

func (v *analyticsView) Init() tea.Cmd { return nil }

func (v *analyticsView) reload() {
	snap := v.app.Progress.Snapshot()
	now := v.app.now()

	summary := formatter.AnalyticsSummary{
		Streak:         stats.CurrentStreak(snap.Chapters, now),
		Velocity:       stats.Velocity(snap.Chapters, now),
		Projection:     stats.ProjectedFinish(snap.Chapters, now),
		ChaptersPerDay: stats.ChaptersPerDay(snap.Chapters, snap.ExamDate, now),
		Distribution:   stats.Distribution(snap.Chapters),
		Daily:          stats.DailyCompletions(snap.Chapters, now, analyticsDailyDays),
	}

	var b strings.Builder
	b.WriteString(formatter.FormatAnalytics(summary))

	points, err := stats.Burndown(snap.Chapters, snap.ExamDate, now)
	switch err {
	case nil:
		b.WriteString("\n")
		b.WriteString(formatter.FormatBurndown(points))
	case stats.ErrNoExamDate:
		b.WriteString("\n  " + formatter.Dim("Set an exam date to see the burndown chart."))
	default:
		b.WriteString("\n  " + formatter.StyleRed.Render(err.Error()))
	}

	v.content = b.String()
}

func (v *analyticsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(refreshMsg); ok {
		v.reload()
	}
	return v, nil
}

func (v *analyticsView) View() string {
	return v.content
}
