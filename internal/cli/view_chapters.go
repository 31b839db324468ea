package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/ssctools/ssctrack/internal/stats"
)

// chaptersView lists one subject's chapters and cycles their status in place.
type chaptersView struct {
	app      *App
	subject  domain.Subject
	chapters []domain.Chapter
	progress stats.SubjectProgress

	cursor int
	err    error
}

func newChaptersView(app *App, subject domain.Subject) *chaptersView {
	v := &chaptersView{app: app, subject: subject}
	v.reload()
	return v
}

func (v *chaptersView) ID() ViewID    { return ViewChapters }
func (v *chaptersView) Title() string { return v.subject.Name }

func (v *chaptersView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "cycle status")),
	}
}

func (v *chaptersView) Init() tea.Cmd { return nil }

func (v *chaptersView) reload() {
	snap := v.app.Progress.Snapshot()
	v.chapters = v.chapters[:0]
	for _, ch := range snap.Chapters {
		if ch.SubjectID == v.subject.ID {
			v.chapters = append(v.chapters, ch)
		}
	}
	sort.Slice(v.chapters, func(i, j int) bool {
		return v.chapters[i].Number < v.chapters[j].Number
	})
	v.progress = stats.SubjectProgressFor(snap.Chapters, v.subject.ID)
	if v.cursor >= len(v.chapters) {
		v.cursor = max(0, len(v.chapters)-1)
	}
}

func (v *chaptersView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshMsg:
		v.reload()
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.chapters)-1 {
				v.cursor++
			}
		case "enter", " ":
			if v.cursor < len(v.chapters) {
				_, err := v.app.Progress.CycleChapterStatus(context.Background(), v.chapters[v.cursor].ID)
				v.err = err
				v.reload()
			}
		}
	}
	return v, nil
}

func (v *chaptersView) View() string {
	var b strings.Builder

	title := formatter.SubjectStyle(v.subject).Render(v.subject.Icon + " " + v.subject.Name)
	b.WriteString("  " + title + "  " + formatter.RenderProgress(v.progress.Percentage, 24))
	b.WriteString(formatter.Dim(fmt.Sprintf("  %d/%d completed", v.progress.Completed, v.progress.Total)))
	b.WriteString("\n\n")

	for i, ch := range v.chapters {
		label := fmt.Sprintf("%-14s", ch.Title)
		marker := "  "
		if i == v.cursor {
			marker = formatter.Bold("› ")
			label = formatter.Bold(label)
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", marker, label, formatter.StatusPill(ch.Status)))
	}

	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()))
	}
	return b.String()
}
