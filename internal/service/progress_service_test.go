package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/ssctools/ssctrack/internal/repository"
	"github.com/ssctools/ssctrack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, repo repository.StateRepo) ProgressService {
	t.Helper()
	return NewProgressService(repo, domain.DefaultCatalog(), nil, WithClock(func() time.Time {
		return fixedNow
	}))
}

func TestInitialize_FreshDefaults(t *testing.T) {
	repo := &testutil.MemStateRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()

	require.False(t, svc.Loaded())
	require.NoError(t, svc.Initialize(ctx))
	require.True(t, svc.Loaded())

	chapters := svc.Chapters()
	assert.Len(t, chapters, 118)
	for _, c := range chapters {
		assert.Equal(t, domain.StatusNotStarted, c.Status)
		assert.Nil(t, c.CompletedAt)
	}
	assert.Equal(t, domain.DefaultExamDate, svc.ExamDate())

	// Defaults are not persisted until the first natural mutation.
	assert.Equal(t, 0, repo.SaveCalls)
}

func TestInitialize_CorruptPayloadFallsBack(t *testing.T) {
	repo := &testutil.MemStateRepo{Payload: []byte(`{"chapters": not json`), Found: true}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Initialize(context.Background()))
	assert.Len(t, svc.Chapters(), 118)
	assert.Equal(t, domain.DefaultExamDate, svc.ExamDate())
	// The stored entry is left untouched.
	assert.Equal(t, 0, repo.SaveCalls)
	assert.Equal(t, `{"chapters": not json`, string(repo.Payload))
}

func TestInitialize_UnknownStatusTreatedAsCorrupt(t *testing.T) {
	repo := &testutil.MemStateRepo{
		Payload: []byte(`{"chapters":[{"id":"maths1-ch1","subjectId":"maths1","number":1,"title":"Chapter 1","status":"DONE","completedAt":null}],"examDate":null}`),
		Found:   true,
	}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Initialize(context.Background()))
	assert.Len(t, svc.Chapters(), 118)
}

func TestInitialize_LoadErrorFallsBack(t *testing.T) {
	repo := &testutil.MemStateRepo{LoadErr: errors.New("disk on fire")}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Initialize(context.Background()))
	assert.True(t, svc.Loaded())
	assert.Len(t, svc.Chapters(), 118)
}

func TestInitialize_EmptyChaptersRegenerated(t *testing.T) {
	repo := &testutil.MemStateRepo{
		Payload: []byte(`{"chapters":[],"examDate":"2026-03-01T00:00:00.000Z"}`),
		Found:   true,
	}
	svc := newTestService(t, repo)

	require.NoError(t, svc.Initialize(context.Background()))
	assert.Len(t, svc.Chapters(), 118)
	// Stored exam date survives even when chapters were regenerated.
	assert.Equal(t, "2026-03-01T00:00:00.000Z", svc.ExamDate())
}

func TestMutationsBeforeInitialize(t *testing.T) {
	svc := newTestService(t, &testutil.MemStateRepo{})
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetExamDate(ctx, "2026-02-20"), ErrNotInitialized)
	assert.ErrorIs(t, svc.UpdateChapterStatus(ctx, "maths1-ch1", domain.StatusCompleted), ErrNotInitialized)
	assert.ErrorIs(t, svc.ResetAll(ctx), ErrNotInitialized)
	_, err := svc.CycleChapterStatus(ctx, "maths1-ch1")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestUpdateChapterStatus_CompletedAtLifecycle(t *testing.T) {
	repo := &testutil.MemStateRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	require.NoError(t, svc.UpdateChapterStatus(ctx, "maths1-ch3", domain.StatusCompleted))
	c, ok := svc.Chapter("maths1-ch3")
	require.True(t, ok)
	require.NotNil(t, c.CompletedAt)
	assert.Equal(t, fixedNow, *c.CompletedAt)
	assert.Equal(t, 1, repo.SaveCalls)

	require.NoError(t, svc.UpdateChapterStatus(ctx, "maths1-ch3", domain.StatusNotStarted))
	c, _ = svc.Chapter("maths1-ch3")
	assert.Nil(t, c.CompletedAt)

	// Leaving COMPLETED for IN_PROGRESS also clears the timestamp.
	require.NoError(t, svc.UpdateChapterStatus(ctx, "maths1-ch3", domain.StatusCompleted))
	require.NoError(t, svc.UpdateChapterStatus(ctx, "maths1-ch3", domain.StatusInProgress))
	c, _ = svc.Chapter("maths1-ch3")
	assert.Nil(t, c.CompletedAt)
}

func TestUpdateChapterStatus_Idempotent(t *testing.T) {
	svc := newTestService(t, &testutil.MemStateRepo{})
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	require.NoError(t, svc.UpdateChapterStatus(ctx, "history-ch1", domain.StatusCompleted))
	first, _ := svc.Chapter("history-ch1")
	require.NoError(t, svc.UpdateChapterStatus(ctx, "history-ch1", domain.StatusCompleted))
	second, _ := svc.Chapter("history-ch1")
	assert.Equal(t, first, second)
}

func TestUpdateChapterStatus_UnknownIDIsNoOp(t *testing.T) {
	repo := &testutil.MemStateRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	require.NoError(t, svc.UpdateChapterStatus(ctx, "physics-ch1", domain.StatusCompleted))
	assert.Equal(t, 0, repo.SaveCalls, "no-op must not persist")
}

func TestUpdateChapterStatus_InvalidStatusRejected(t *testing.T) {
	svc := newTestService(t, &testutil.MemStateRepo{})
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	err := svc.UpdateChapterStatus(ctx, "maths1-ch1", domain.ChapterStatus("FINISHED"))
	assert.Error(t, err)
}

func TestCycleChapterStatus(t *testing.T) {
	svc := newTestService(t, &testutil.MemStateRepo{})
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	c, err := svc.CycleChapterStatus(ctx, "science1-ch5")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, c.Status)

	c, err = svc.CycleChapterStatus(ctx, "science1-ch5")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, c.Status)
	require.NotNil(t, c.CompletedAt)

	c, err = svc.CycleChapterStatus(ctx, "science1-ch5")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNotStarted, c.Status)
	assert.Nil(t, c.CompletedAt)

	_, err = svc.CycleChapterStatus(ctx, "nope-ch9")
	assert.ErrorIs(t, err, ErrUnknownChapter)
}

func TestSetExamDate(t *testing.T) {
	repo := &testutil.MemStateRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	require.NoError(t, svc.SetExamDate(ctx, "2026-03-15"))
	assert.Equal(t, "2026-03-15", svc.ExamDate())
	assert.Equal(t, 1, repo.SaveCalls)

	// Past dates pass the boundary; metrics clamp downstream.
	require.NoError(t, svc.SetExamDate(ctx, "2020-01-01"))

	err := svc.SetExamDate(ctx, "soon")
	assert.Error(t, err)
	assert.Equal(t, "2020-01-01", svc.ExamDate(), "rejected write must not change state")
}

func TestResetAll(t *testing.T) {
	repo := &testutil.MemStateRepo{}
	svc := newTestService(t, repo)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	require.NoError(t, svc.UpdateChapterStatus(ctx, "maths1-ch3", domain.StatusCompleted))
	require.NoError(t, svc.SetExamDate(ctx, "2026-05-01"))

	require.NoError(t, svc.ResetAll(ctx))
	for _, c := range svc.Chapters() {
		assert.Equal(t, domain.StatusNotStarted, c.Status)
		assert.Nil(t, c.CompletedAt)
	}
	assert.Equal(t, domain.DefaultExamDate, svc.ExamDate())
}

func TestPersistFailure_MutationStands(t *testing.T) {
	repo := &testutil.MemStateRepo{SaveErr: errors.New("disk full")}
	svc := newTestService(t, repo)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	require.NoError(t, svc.UpdateChapterStatus(ctx, "maths1-ch3", domain.StatusCompleted))
	c, _ := svc.Chapter("maths1-ch3")
	assert.Equal(t, domain.StatusCompleted, c.Status)
}

func TestSnapshot_DoesNotAliasStore(t *testing.T) {
	svc := newTestService(t, &testutil.MemStateRepo{})
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	snap := svc.Snapshot()
	require.NoError(t, svc.UpdateChapterStatus(ctx, snap.Chapters[0].ID, domain.StatusCompleted))
	assert.Equal(t, domain.StatusNotStarted, snap.Chapters[0].Status)
}

func TestPersistenceRoundTrip_SQLite(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteStateRepo(database)
	ctx := context.Background()

	svc := newTestService(t, repo)
	require.NoError(t, svc.Initialize(ctx))
	require.NoError(t, svc.UpdateChapterStatus(ctx, "maths1-ch3", domain.StatusCompleted))
	require.NoError(t, svc.UpdateChapterStatus(ctx, "english-ch1", domain.StatusInProgress))
	require.NoError(t, svc.SetExamDate(ctx, "2026-03-15"))
	want := svc.Snapshot()

	// A second session over the same database sees identical state.
	reloaded := newTestService(t, repository.NewSQLiteStateRepo(database))
	require.NoError(t, reloaded.Initialize(ctx))
	assert.Equal(t, want, reloaded.Snapshot())
}
