package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/ssctools/ssctrack/internal/repository"
)

// ErrNotInitialized is returned by mutations attempted before Initialize has
// completed. Persisting before the initial load resolves would overwrite
// stored data with transient empty state.
var ErrNotInitialized = errors.New("progress store not initialized")

// ErrUnknownChapter is returned by CycleChapterStatus for ids outside the
// generated set. UpdateChapterStatus treats the same case as a no-op.
var ErrUnknownChapter = errors.New("unknown chapter")

type progressService struct {
	repo     repository.StateRepo
	catalog  *domain.Catalog
	observer StoreObserver
	now      func() time.Time

	loaded   bool
	chapters []domain.Chapter
	examDate string

	// index into chapters by id, rebuilt whenever the set is regenerated.
	byID map[string]int
}

// Option configures the progress service.
type Option func(*progressService)

// WithClock overrides the time source, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *progressService) {
		s.now = now
	}
}

// NewProgressService creates the progress store. A nil observer disables
// event logging.
func NewProgressService(repo repository.StateRepo, catalog *domain.Catalog, observer StoreObserver, opts ...Option) ProgressService {
	if observer == nil {
		observer = NoopStoreObserver{}
	}
	s := &progressService{
		repo:     repo,
		catalog:  catalog,
		observer: observer,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *progressService) Initialize(ctx context.Context) error {
	if s.loaded {
		return nil
	}

	payload, found, err := s.repo.Load(ctx)
	switch {
	case err != nil:
		// Unreadable storage degrades to defaults; the session goes on.
		s.observer.ObserveStore(ctx, StoreEvent{Op: "initialize", Err: err})
		s.adoptDefaults()
	case !found:
		s.adoptDefaults()
	default:
		chapters, examDate, decodeErr := decodeState(payload)
		if decodeErr != nil {
			// Corrupt payload is treated identically to "no saved data".
			// The stored entry is left untouched until the next mutation.
			s.observer.ObserveStore(ctx, StoreEvent{Op: "initialize", Err: decodeErr})
			s.adoptDefaults()
			break
		}
		if len(chapters) == 0 {
			chapters = s.catalog.GenerateChapters()
		}
		if examDate == "" {
			examDate = domain.DefaultExamDate
		}
		s.chapters = chapters
		s.examDate = examDate
		s.rebuildIndex()
	}

	s.loaded = true
	return nil
}

func (s *progressService) adoptDefaults() {
	s.chapters = s.catalog.GenerateChapters()
	s.examDate = domain.DefaultExamDate
	s.rebuildIndex()
}

func (s *progressService) rebuildIndex() {
	s.byID = make(map[string]int, len(s.chapters))
	for i, c := range s.chapters {
		s.byID[c.ID] = i
	}
}

func (s *progressService) Loaded() bool {
	return s.loaded
}

func (s *progressService) Chapters() []domain.Chapter {
	out := make([]domain.Chapter, len(s.chapters))
	copy(out, s.chapters)
	return out
}

func (s *progressService) Chapter(id string) (domain.Chapter, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Chapter{}, false
	}
	return s.chapters[i], true
}

func (s *progressService) ExamDate() string {
	return s.examDate
}

func (s *progressService) Snapshot() Snapshot {
	return Snapshot{Chapters: s.Chapters(), ExamDate: s.examDate}
}

func (s *progressService) SetExamDate(ctx context.Context, date string) error {
	if !s.loaded {
		return ErrNotInitialized
	}
	// Malformed input is rejected at the write boundary; past dates are
	// accepted and simply clamp the derived metrics to zero.
	if _, err := domain.ParseExamDate(date); err != nil {
		return err
	}
	s.examDate = date
	s.persist(ctx, "set_exam_date")
	return nil
}

func (s *progressService) UpdateChapterStatus(ctx context.Context, chapterID string, status domain.ChapterStatus) error {
	if !s.loaded {
		return ErrNotInitialized
	}
	if !status.Valid() {
		return fmt.Errorf("invalid chapter status %q", status)
	}
	i, ok := s.byID[chapterID]
	if !ok {
		// The id space is closed and generated internally; an unknown id is
		// a no-op rather than an error.
		return nil
	}
	s.chapters[i].SetStatus(status, s.now())
	s.persist(ctx, "update_chapter_status")
	return nil
}

func (s *progressService) CycleChapterStatus(ctx context.Context, chapterID string) (domain.Chapter, error) {
	if !s.loaded {
		return domain.Chapter{}, ErrNotInitialized
	}
	i, ok := s.byID[chapterID]
	if !ok {
		return domain.Chapter{}, fmt.Errorf("%w: %s", ErrUnknownChapter, chapterID)
	}
	s.chapters[i].SetStatus(s.chapters[i].Status.Next(), s.now())
	s.persist(ctx, "cycle_chapter_status")
	return s.chapters[i], nil
}

func (s *progressService) ResetAll(ctx context.Context) error {
	if !s.loaded {
		return ErrNotInitialized
	}
	s.adoptDefaults()
	s.persist(ctx, "reset_all")
	return nil
}

// persist writes the full state as one atomic unit. Best-effort: failures
// are logged and the in-memory mutation stands.
func (s *progressService) persist(ctx context.Context, op string) {
	payload, err := encodeState(s.chapters, s.examDate)
	if err != nil {
		s.observer.ObserveStore(ctx, StoreEvent{Op: op, Err: err})
		return
	}
	if err := s.repo.Save(ctx, payload); err != nil {
		s.observer.ObserveStore(ctx, StoreEvent{Op: op, Err: err})
	}
}
