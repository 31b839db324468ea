package stats

import (
	"math"
	"sort"
	"time"

	"github.com/ssctools/ssctrack/internal/domain"
)

const (
	velocityWindowDays = 7
	streakLookbackDays = 365
)

// midnight truncates t to midnight in its own location.
func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// RemainingDays is the whole-day count from now to the exam date, both
// truncated to midnight in now's location. Zero when the exam date is
// unset, unparseable, or already past.
func RemainingDays(examDate string, now time.Time) int {
	if examDate == "" {
		return 0
	}
	exam, err := domain.ParseExamDate(examDate)
	if err != nil {
		return 0
	}
	today := midnight(now)
	examDay := midnight(exam.In(now.Location()))
	days := int(math.Ceil(examDay.Sub(today).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// ChaptersPerDay is the pace required to finish the remaining chapters by
// the exam date, to one decimal place. Zero when no days remain.
func ChaptersPerDay(chapters []domain.Chapter, examDate string, now time.Time) float64 {
	days := RemainingDays(examDate, now)
	if days <= 0 {
		return 0
	}
	remaining := len(chapters) - countCompleted(chapters)
	return round1(float64(remaining) / float64(days))
}

// CurrentStreak counts consecutive calendar days with at least one chapter
// completion, walking backward from today. A quiet today does not break the
// streak; any earlier gap does. Bounded to a year of look-back.
func CurrentStreak(chapters []domain.Chapter, now time.Time) int {
	days := make(map[time.Time]bool)
	for _, c := range chapters {
		if c.Completed() && c.CompletedAt != nil {
			days[midnight(c.CompletedAt.In(now.Location()))] = true
		}
	}

	streak := 0
	today := midnight(now)
	for i := 0; i < streakLookbackDays; i++ {
		day := today.AddDate(0, 0, -i)
		switch {
		case days[day]:
			streak++
		case i == 0:
			// Today is skipped, not counted and not a stopper.
		default:
			return streak
		}
	}
	return streak
}

// Velocity is the chapter completion rate over the trailing seven-day
// window (by timestamp, not calendar day), to one decimal place.
func Velocity(chapters []domain.Chapter, now time.Time) float64 {
	cutoff := now.Add(-velocityWindowDays * 24 * time.Hour)
	recent := 0
	for _, c := range chapters {
		if c.Completed() && c.CompletedAt != nil && c.CompletedAt.After(cutoff) {
			recent++
		}
	}
	return round1(float64(recent) / velocityWindowDays)
}

// ProjectionKind discriminates the projected-finish result.
type ProjectionKind string

const (
	// ProjectionDate means Date carries a meaningful projection.
	ProjectionDate ProjectionKind = "date"
	// ProjectionDone means nothing remains to project.
	ProjectionDone ProjectionKind = "done"
	// ProjectionUnknown means there is no recent velocity to project from.
	ProjectionUnknown ProjectionKind = "unknown"
)

type Projection struct {
	Kind ProjectionKind
	Date time.Time
}

// ProjectedFinish extrapolates the completion date from current velocity.
func ProjectedFinish(chapters []domain.Chapter, now time.Time) Projection {
	velocity := Velocity(chapters, now)
	remaining := len(chapters) - countCompleted(chapters)

	if velocity > 0 {
		daysNeeded := int(math.Ceil(float64(remaining) / velocity))
		return Projection{Kind: ProjectionDate, Date: midnight(now).AddDate(0, 0, daysNeeded)}
	}
	if remaining == 0 {
		return Projection{Kind: ProjectionDone}
	}
	return Projection{Kind: ProjectionUnknown}
}

// DayCount is a per-calendar-day completion tally.
type DayCount struct {
	Day   time.Time
	Count int
}

// DailyCompletions groups completions by calendar day (in now's location)
// and returns the most recent `limit` active days, oldest first.
func DailyCompletions(chapters []domain.Chapter, now time.Time, limit int) []DayCount {
	counts := make(map[time.Time]int)
	for _, c := range chapters {
		if c.Completed() && c.CompletedAt != nil {
			counts[midnight(c.CompletedAt.In(now.Location()))]++
		}
	}

	days := make([]time.Time, 0, len(counts))
	for day := range counts {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if limit > 0 && len(days) > limit {
		days = days[len(days)-limit:]
	}

	out := make([]DayCount, 0, len(days))
	for _, day := range days {
		out = append(out, DayCount{Day: day, Count: counts[day]})
	}
	return out
}
