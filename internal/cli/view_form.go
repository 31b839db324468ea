package cli

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/domain"
)

// ssctrackHuhTheme returns a huh theme built from the Gruvbox palette.
func ssctrackHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formView wraps a huh.Form as a View on the navigation stack. When the form
// completes, onDone runs synchronously against the store and the view pops;
// the pop triggers a refresh of the view underneath.
type formView struct {
	form     *huh.Form
	titleStr string
	onDone   func() error
	err      error
}

func newFormView(title string, form *huh.Form, onDone func() error) *formView {
	return &formView{
		form:     form,
		titleStr: title,
		onDone:   onDone,
	}
}

func (v *formView) ID() ViewID    { return ViewForm }
func (v *formView) Title() string { return v.titleStr }

func (v *formView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (v *formView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *formView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return v, popView
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}

	if v.form.State == huh.StateCompleted {
		if v.onDone != nil {
			if err := v.onDone(); err != nil {
				v.err = err
				return v, cmd
			}
		}
		return v, tea.Batch(cmd, popView)
	}

	return v, cmd
}

func (v *formView) View() string {
	if v.err != nil {
		return "  " + formatter.StyleRed.Render("Error: "+v.err.Error()) +
			"\n\n  " + formatter.Dim("Press esc to go back.")
	}
	return v.form.View()
}

// newExamDateFormView collects a new exam date and saves it.
func newExamDateFormView(app *App) View {
	value := app.Progress.ExamDate()
	if t, err := domain.ParseExamDate(value); err == nil {
		value = t.Format("2006-01-02")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Exam Date (YYYY-MM-DD)").
				Placeholder("2026-02-20").
				Value(&value).
				Validate(func(s string) error {
					_, err := domain.ParseExamDate(s)
					return err
				}),
		),
	).WithTheme(ssctrackHuhTheme()).WithShowHelp(false)

	return newFormView("Exam Date", form, func() error {
		return app.Progress.SetExamDate(context.Background(), value)
	})
}

// newResetFormView asks for confirmation before wiping all progress.
func newResetFormView(app *App) View {
	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset all progress? This cannot be undone.").
				Affirmative("Reset").
				Negative("Keep").
				Value(&confirmed),
		),
	).WithTheme(ssctrackHuhTheme()).WithShowHelp(false)

	return newFormView("Reset", form, func() error {
		if !confirmed {
			return nil
		}
		return app.Progress.ResetAll(context.Background())
	})
}
