package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ssctools/ssctrack/internal/domain"
)

// ErrNoExamDate is returned when a burndown is requested without a
// configured exam date.
var ErrNoExamDate = errors.New("no exam date configured")

// ErrInvalidTimeline is returned when the exam date falls before the series
// start; there is no meaningful trajectory to draw.
var ErrInvalidTimeline = errors.New("exam date precedes tracking window")

// BurndownPoint is one day on the ideal-vs-actual trajectory. Actual is nil
// for days past tomorrow, where only the ideal line continues.
type BurndownPoint struct {
	Day    time.Time
	Ideal  int
	Actual *int
}

// Burndown generates one point per day from the series start to the exam
// date inclusive. The start is the earlier of the first completion and
// seven days before now. Ideal decays linearly from the full chapter count
// to zero at the exam date; Actual walks the sorted completion timestamps.
func Burndown(chapters []domain.Chapter, examDate string, now time.Time) ([]BurndownPoint, error) {
	if examDate == "" {
		return nil, ErrNoExamDate
	}
	end, err := domain.ParseExamDate(examDate)
	if err != nil {
		return nil, fmt.Errorf("burndown: %w", err)
	}

	var completions []time.Time
	for _, c := range chapters {
		if c.Completed() && c.CompletedAt != nil {
			completions = append(completions, *c.CompletedAt)
		}
	}
	sort.Slice(completions, func(i, j int) bool { return completions[i].Before(completions[j]) })

	start := now.Add(-7 * 24 * time.Hour)
	if len(completions) > 0 && completions[0].Before(start) {
		start = completions[0]
	}

	if end.Before(start) {
		return nil, ErrInvalidTimeline
	}

	total := len(chapters)
	duration := end.Sub(start)
	actualCutoff := now.Add(24 * time.Hour)

	var points []BurndownPoint
	remaining := total
	next := 0
	for t := start; !t.After(end); t = t.Add(24 * time.Hour) {
		for next < len(completions) && !completions[next].After(t) {
			remaining--
			next++
		}

		ideal := 0
		if duration > 0 {
			elapsed := t.Sub(start)
			ideal = int(math.Round(float64(total) * (1 - float64(elapsed)/float64(duration))))
			if ideal < 0 {
				ideal = 0
			}
		}

		p := BurndownPoint{Day: t, Ideal: ideal}
		if !t.After(actualCutoff) {
			actual := remaining
			if actual < 0 {
				actual = 0
			}
			p.Actual = &actual
		}
		points = append(points, p)
	}

	return points, nil
}
