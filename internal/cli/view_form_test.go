package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormView_EscCancels(t *testing.T) {
	app := testApp(t)
	v := newExamDateFormView(app)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(popViewMsg)
	assert.True(t, ok)

	// Cancelling leaves the stored date untouched.
	assert.Equal(t, domain.DefaultExamDate, app.Progress.ExamDate())
}

func TestExamDateForm_SavesParsedDate(t *testing.T) {
	app := testApp(t)
	fv, ok := newExamDateFormView(app).(*formView)
	require.True(t, ok)
	assert.Equal(t, "Exam Date", fv.Title())
	assert.Equal(t, ViewForm, fv.ID())

	// The input is prefilled with the current date in YYYY-MM-DD form, so
	// submitting unchanged re-saves it in that format.
	require.NoError(t, fv.onDone())
	assert.Equal(t, "2026-02-20", app.Progress.ExamDate())
}

func TestResetForm_DecliningKeepsProgress(t *testing.T) {
	app := testApp(t)
	_, err := app.Progress.CycleChapterStatus(context.Background(), domain.ChapterID("english", 1))
	require.NoError(t, err)

	fv, ok := newResetFormView(app).(*formView)
	require.True(t, ok)

	// The confirm value defaults to false; completing without flipping it
	// must not reset anything.
	require.NoError(t, fv.onDone())
	ch, _ := app.Progress.Chapter(domain.ChapterID("english", 1))
	assert.Equal(t, domain.StatusInProgress, ch.Status)
}
