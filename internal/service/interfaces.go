package service

import (
	"context"

	"github.com/ssctools/ssctrack/internal/domain"
)

// Snapshot is an immutable copy of the tracker state handed to readers.
// Mutating the store never aliases a snapshot already handed out.
type Snapshot struct {
	Chapters []domain.Chapter
	ExamDate string
}

// ProgressService owns the canonical in-memory tracker state and is the only
// component permitted to mutate it. Every mutation re-persists the whole
// state; persistence failures are logged, never surfaced from the mutation.
type ProgressService interface {
	// Initialize loads persisted state, falling back to catalog-generated
	// defaults when nothing is stored or the payload fails to parse.
	// It must complete before any other call; it is a no-op once loaded.
	Initialize(ctx context.Context) error
	Loaded() bool

	Chapters() []domain.Chapter
	Chapter(id string) (domain.Chapter, bool)
	ExamDate() string
	Snapshot() Snapshot

	SetExamDate(ctx context.Context, date string) error
	UpdateChapterStatus(ctx context.Context, chapterID string, status domain.ChapterStatus) error
	// CycleChapterStatus advances the chapter one step through the UI cycle
	// and returns the updated chapter.
	CycleChapterStatus(ctx context.Context, chapterID string) (domain.Chapter, error)
	// ResetAll discards all progress and restores the default exam date.
	// Confirmation is the caller's responsibility: this is irreversible.
	ResetAll(ctx context.Context) error
}
