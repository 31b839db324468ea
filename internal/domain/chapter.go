package domain

import (
	"fmt"
	"time"
)

type ChapterStatus string

const (
	StatusNotStarted ChapterStatus = "NOT_STARTED"
	StatusInProgress ChapterStatus = "IN_PROGRESS"
	StatusCompleted  ChapterStatus = "COMPLETED"
)

// ValidChapterStatuses is the canonical set of accepted status strings.
var ValidChapterStatuses = map[ChapterStatus]bool{
	StatusNotStarted: true,
	StatusInProgress: true,
	StatusCompleted:  true,
}

func (s ChapterStatus) Valid() bool {
	return ValidChapterStatuses[s]
}

// Next returns the status that follows s in the single-step UI cycle:
// NOT_STARTED → IN_PROGRESS → COMPLETED → NOT_STARTED.
func (s ChapterStatus) Next() ChapterStatus {
	switch s {
	case StatusNotStarted:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

type Chapter struct {
	ID          string
	SubjectID   string
	Number      int
	Title       string
	Status      ChapterStatus
	CompletedAt *time.Time
}

// ChapterID builds the deterministic chapter identifier for a subject and
// 1-based chapter number, e.g. "maths1-ch3".
func ChapterID(subjectID string, number int) string {
	return fmt.Sprintf("%s-ch%d", subjectID, number)
}

// SetStatus applies a status transition. CompletedAt carries the completion
// time exactly while the chapter is COMPLETED: it is stamped with now on
// entering COMPLETED and cleared on any transition away from it.
func (c *Chapter) SetStatus(status ChapterStatus, now time.Time) {
	c.Status = status
	if status == StatusCompleted {
		t := now
		c.CompletedAt = &t
		return
	}
	c.CompletedAt = nil
}

// Completed reports whether the chapter is done.
func (c *Chapter) Completed() bool {
	return c.Status == StatusCompleted
}
