package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/ssctools/ssctrack/internal/stats"
)

const statusProgressBarWidth = 12

// StatusSummary is the Dashboard view-model.
type StatusSummary struct {
	Rows          []stats.SubjectRow
	Overall       int
	RemainingDays int
	ChaptersPerDay float64
	ExamDate      string
}

// FormatStatus renders the per-subject table with the overall summary.
func FormatStatus(s StatusSummary) string {
	var b strings.Builder

	headers := []string{"SUBJECT", "CHAPTERS", "PROGRESS"}
	rows := make([][]string, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, []string{
			SubjectStyle(r.Subject).Render(r.Subject.Name),
			fmt.Sprintf("%d/%d", r.Progress.Completed, r.Progress.Total),
			RenderProgress(r.Progress.Percentage, statusProgressBarWidth),
		})
	}
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Overall:"), RenderProgress(s.Overall, statusProgressBarWidth)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Exam in:"), formatRemaining(s.RemainingDays, s.ExamDate)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Required pace:"), formatPace(s.ChaptersPerDay)))

	return RenderBox("Study Status", b.String())
}

func formatRemaining(days int, examDate string) string {
	if examDate == "" {
		return StyleYellow.Render("exam date not configured")
	}
	when := ""
	if t, err := domain.ParseExamDate(examDate); err == nil {
		when = Dim(" (" + t.Format("Mon, Jan 2 2006") + ")")
	}
	if days == 0 {
		return StyleRed.Render("0 days") + when
	}
	return fmt.Sprintf("%d days%s", days, when)
}

func formatPace(perDay float64) string {
	if perDay == 0 {
		return Dim("--")
	}
	return fmt.Sprintf("%.1f chapters/day", perDay)
}

// FormatChapters renders one subject's chapter list.
func FormatChapters(subject domain.Subject, chapters []domain.Chapter, progress stats.SubjectProgress) string {
	var b strings.Builder

	b.WriteString(SubjectStyle(subject).Bold(true).Render(subject.Name))
	b.WriteString("  " + RenderProgress(progress.Percentage, statusProgressBarWidth) + "\n\n")

	headers := []string{"ID", "TITLE", "STATUS", "COMPLETED"}
	rows := make([][]string, 0, len(chapters))
	for _, c := range chapters {
		completed := Dim("--")
		if c.CompletedAt != nil {
			completed = c.CompletedAt.Local().Format("Jan 2 15:04")
		}
		rows = append(rows, []string{
			Dim(c.ID),
			c.Title,
			StatusPill(c.Status),
			completed,
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return b.String()
}

// FormatExamDate renders the configured exam date with its countdown.
func FormatExamDate(examDate string, now time.Time) string {
	if examDate == "" {
		return StyleYellow.Render("No exam date configured.") + " Set one with: ssctrack exam-date YYYY-MM-DD\n"
	}
	days := stats.RemainingDays(examDate, now)
	out := fmt.Sprintf("%s %s\n", Bold("Exam date:"), examDate)
	out += fmt.Sprintf("%s %d\n", Bold("Days remaining:"), days)
	return out
}
