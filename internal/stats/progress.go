// Package stats derives read-only metrics from a progress snapshot.
// Every function is pure: results are recomputed from scratch on each call
// and the inputs are never mutated. The clock is always passed in.
package stats

import (
	"math"

	"github.com/ssctools/ssctrack/internal/domain"
)

// SubjectProgress is the completion summary for one subject.
type SubjectProgress struct {
	Completed  int
	Total      int
	Percentage int
}

// SubjectProgressFor summarizes the chapters belonging to subjectID.
func SubjectProgressFor(chapters []domain.Chapter, subjectID string) SubjectProgress {
	var p SubjectProgress
	for _, c := range chapters {
		if c.SubjectID != subjectID {
			continue
		}
		p.Total++
		if c.Completed() {
			p.Completed++
		}
	}
	p.Percentage = percentage(p.Completed, p.Total)
	return p
}

// Overall returns the completion percentage across all chapters.
func Overall(chapters []domain.Chapter) int {
	return percentage(countCompleted(chapters), len(chapters))
}

// StatusDistribution counts chapters per status.
type StatusDistribution struct {
	Completed  int
	InProgress int
	NotStarted int
}

func Distribution(chapters []domain.Chapter) StatusDistribution {
	var d StatusDistribution
	for _, c := range chapters {
		switch c.Status {
		case domain.StatusCompleted:
			d.Completed++
		case domain.StatusInProgress:
			d.InProgress++
		default:
			d.NotStarted++
		}
	}
	return d
}

// SubjectRow pairs a catalog subject with its progress, in catalog order.
type SubjectRow struct {
	Subject  domain.Subject
	Progress SubjectProgress
}

// SubjectBreakdown builds one row per catalog subject.
func SubjectBreakdown(catalog *domain.Catalog, chapters []domain.Chapter) []SubjectRow {
	subjects := catalog.Subjects()
	rows := make([]SubjectRow, 0, len(subjects))
	for _, s := range subjects {
		rows = append(rows, SubjectRow{
			Subject:  s,
			Progress: SubjectProgressFor(chapters, s.ID),
		})
	}
	return rows
}

func countCompleted(chapters []domain.Chapter) int {
	n := 0
	for _, c := range chapters {
		if c.Completed() {
			n++
		}
	}
	return n
}

func percentage(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
