package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/service"
	"github.com/ssctools/ssctrack/internal/stats"
)

// dashboardView is the home screen of the TUI: exam countdown, overall
// progress, and a selectable per-subject breakdown.
type dashboardView struct {
	app  *App
	snap service.Snapshot
	rows []stats.SubjectRow

	cursor int
}

func newDashboardView(app *App) *dashboardView {
	v := &dashboardView{app: app}
	v.reload()
	return v
}

func (v *dashboardView) ID() ViewID    { return ViewDashboard }
func (v *dashboardView) Title() string { return "Dashboard" }

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "chapters")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "analytics")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "exam date")),
		key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset")),
	}
}

func (v *dashboardView) Init() tea.Cmd { return nil }

// reload pulls a fresh snapshot from the store. The store is in-memory so
// this is cheap enough to run on every mutation.
func (v *dashboardView) reload() {
	v.snap = v.app.Progress.Snapshot()
	v.rows = stats.SubjectBreakdown(v.app.Catalog, v.snap.Chapters)
	if v.cursor >= len(v.rows) {
		v.cursor = max(0, len(v.rows)-1)
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.rows)-1 {
				v.cursor++
			}
		case "enter":
			if v.cursor < len(v.rows) {
				return v, pushView(newChaptersView(v.app, v.rows[v.cursor].Subject))
			}
		case "a":
			return v, pushView(newAnalyticsView(v.app))
		case "e":
			return v, pushView(newExamDateFormView(v.app))
		case "R":
			return v, pushView(newResetFormView(v.app))
		}
	}
	return v, nil
}

func (v *dashboardView) View() string {
	var b strings.Builder

	now := v.app.now()
	remaining := stats.RemainingDays(v.snap.ExamDate, now)
	overall := stats.Overall(v.snap.Chapters)
	pace := stats.ChaptersPerDay(v.snap.Chapters, v.snap.ExamDate, now)

	b.WriteString("  " + formatter.FormatExamDate(v.snap.ExamDate, now))
	b.WriteString("\n\n")
	b.WriteString("  " + formatter.Bold("Overall") + "  " + formatter.RenderProgress(overall, 30))
	if remaining > 0 && pace > 0 {
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("pace needed: %.1f chapters/day", pace)))
	}
	b.WriteString("\n\n")

	for i, row := range v.rows {
		// Pad before styling so ANSI escape codes don't skew the columns.
		label := fmt.Sprintf("%-26s", row.Subject.Icon+" "+row.Subject.Name)
		marker := "  "
		name := formatter.SubjectStyle(row.Subject).Render(label)
		if i == v.cursor {
			marker = formatter.Bold("› ")
			name = formatter.Bold(label)
		}
		line := fmt.Sprintf("  %s%s %s %s",
			marker,
			name,
			formatter.RenderProgress(row.Progress.Percentage, 20),
			formatter.Dim(fmt.Sprintf("%d/%d", row.Progress.Completed, row.Progress.Total)),
		)
		b.WriteString(line + "\n")
	}

	return b.String()
}
