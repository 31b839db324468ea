package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDashboardView_RendersAllSubjects(t *testing.T) {
	app := testApp(t)
	v := newDashboardView(app)

	out := v.View()
	for _, s := range app.Catalog.Subjects() {
		assert.Contains(t, out, s.Name)
	}
	assert.Contains(t, out, "Overall")
}

func TestDashboardView_CursorMovesWithinBounds(t *testing.T) {
	app := testApp(t)
	v := newDashboardView(app)

	v.Update(keyRunes('k'))
	assert.Equal(t, 0, v.cursor)

	v.Update(keyRunes('j'))
	v.Update(keyRunes('j'))
	assert.Equal(t, 2, v.cursor)

	for i := 0; i < 20; i++ {
		v.Update(keyRunes('j'))
	}
	assert.Equal(t, len(app.Catalog.Subjects())-1, v.cursor)
}

func TestDashboardView_EnterPushesChapters(t *testing.T) {
	app := testApp(t)
	v := newDashboardView(app)
	v.Update(keyRunes('j')) // hindi

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg, ok := cmd().(pushViewMsg)
	require.True(t, ok)
	cv, ok := msg.view.(*chaptersView)
	require.True(t, ok)
	assert.Equal(t, "hindi", cv.subject.ID)
}

func TestDashboardView_ShortcutsPushViews(t *testing.T) {
	app := testApp(t)

	cases := []struct {
		key  rune
		want ViewID
	}{
		{'a', ViewAnalytics},
		{'e', ViewForm},
		{'R', ViewForm},
	}
	for _, tc := range cases {
		v := newDashboardView(app)
		_, cmd := v.Update(keyRunes(tc.key))
		require.NotNil(t, cmd, "key %q", tc.key)
		msg, ok := cmd().(pushViewMsg)
		require.True(t, ok, "key %q", tc.key)
		assert.Equal(t, tc.want, msg.view.ID(), "key %q", tc.key)
	}
}

func TestDashboardView_RefreshPicksUpMutations(t *testing.T) {
	app := testApp(t)
	v := newDashboardView(app)

	_, err := app.Progress.CycleChapterStatus(context.Background(), domain.ChapterID("english", 1))
	require.NoError(t, err)
	_, err = app.Progress.CycleChapterStatus(context.Background(), domain.ChapterID("english", 1))
	require.NoError(t, err)

	v.Update(refreshMsg{})
	assert.Equal(t, 1, v.rows[0].Progress.Completed)
}
