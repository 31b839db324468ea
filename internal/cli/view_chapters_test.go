package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathsSubject(t *testing.T, app *App) domain.Subject {
	t.Helper()
	s, ok := app.Catalog.Subject("maths1")
	require.True(t, ok)
	return s
}

func TestChaptersView_ListsSubjectChaptersInOrder(t *testing.T) {
	app := testApp(t)
	v := newChaptersView(app, mathsSubject(t, app))

	require.Len(t, v.chapters, 6)
	for i, ch := range v.chapters {
		assert.Equal(t, i+1, ch.Number)
		assert.Equal(t, "maths1", ch.SubjectID)
	}

	out := v.View()
	assert.Contains(t, out, "Maths 1")
	assert.Contains(t, out, "Chapter 1")
	assert.Contains(t, out, "0/6")
}

func TestChaptersView_EnterCyclesSelectedChapter(t *testing.T) {
	app := testApp(t)
	v := newChaptersView(app, mathsSubject(t, app))
	v.Update(keyRunes('j'))
	v.Update(keyRunes('j'))

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	ch, ok := app.Progress.Chapter(domain.ChapterID("maths1", 3))
	require.True(t, ok)
	assert.Equal(t, domain.StatusInProgress, ch.Status)

	// The view reloads in place, so the change is visible immediately.
	assert.Equal(t, domain.StatusInProgress, v.chapters[2].Status)

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	ch, _ = app.Progress.Chapter(domain.ChapterID("maths1", 3))
	assert.Equal(t, domain.StatusCompleted, ch.Status)

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	ch, _ = app.Progress.Chapter(domain.ChapterID("maths1", 3))
	assert.Equal(t, domain.StatusNotStarted, ch.Status)
}

func TestChaptersView_SpaceAlsoCycles(t *testing.T) {
	app := testApp(t)
	v := newChaptersView(app, mathsSubject(t, app))

	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}})

	ch, _ := app.Progress.Chapter(domain.ChapterID("maths1", 1))
	assert.Equal(t, domain.StatusInProgress, ch.Status)
}

func TestChaptersView_ProgressHeaderTracksCompletions(t *testing.T) {
	app := testApp(t)
	v := newChaptersView(app, mathsSubject(t, app))

	v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 1, v.progress.Completed)
	assert.Contains(t, v.View(), "1/6")
}
