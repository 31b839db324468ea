package testutil

import (
	"fmt"
	"time"

	"github.com/ssctools/ssctrack/internal/domain"
)

// Chapter options
type ChapterOption func(*domain.Chapter)

func WithStatus(s domain.ChapterStatus) ChapterOption {
	return func(c *domain.Chapter) {
		c.Status = s
	}
}

// WithCompletedAt marks the chapter COMPLETED at the given time.
func WithCompletedAt(at time.Time) ChapterOption {
	return func(c *domain.Chapter) {
		c.Status = domain.StatusCompleted
		t := at
		c.CompletedAt = &t
	}
}

func WithTitle(title string) ChapterOption {
	return func(c *domain.Chapter) {
		c.Title = title
	}
}

// NewTestChapter builds a chapter with the deterministic id for
// (subjectID, number), NOT_STARTED unless options say otherwise.
func NewTestChapter(subjectID string, number int, opts ...ChapterOption) domain.Chapter {
	c := domain.Chapter{
		ID:        domain.ChapterID(subjectID, number),
		SubjectID: subjectID,
		Number:    number,
		Title:     fmt.Sprintf("Chapter %d", number),
		Status:    domain.StatusNotStarted,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// CompletedOn spreads completions across calendar days: one completed test
// chapter per entry, stamped at the given times.
func CompletedOn(subjectID string, times ...time.Time) []domain.Chapter {
	chapters := make([]domain.Chapter, 0, len(times))
	for i, at := range times {
		chapters = append(chapters, NewTestChapter(subjectID, i+1, WithCompletedAt(at)))
	}
	return chapters
}
