package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
)

// appModel is the root bubbletea Model for the TUI. It manages a view stack:
// dashboard at the bottom, detail views pushed on top.
type appModel struct {
	app       *App
	viewStack []View
	width     int
	height    int
	quitting  bool
}

func newAppModel(app *App) appModel {
	return appModel{
		app:       app,
		viewStack: []View{newDashboardView(app)},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		// Forms own their keys entirely; everything else shares the
		// global quit/back bindings.
		if v := m.activeView(); v == nil || v.ID() != ViewForm {
			switch msg.String() {
			case "ctrl+c", "q":
				m.quitting = true
				return m, tea.Quit
			case "esc":
				if len(m.viewStack) > 1 {
					m.viewStack = m.viewStack[:len(m.viewStack)-1]
					return m, func() tea.Msg { return refreshMsg{} }
				}
				return m, nil
			}
		}

	case pushViewMsg:
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, func() tea.Msg { return refreshMsg{} }
	}

	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}
	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	v := m.activeView()
	if v == nil {
		return ""
	}

	header := formatter.StyleHeader.Render("SSCTRACK") + formatter.Dim(" › "+m.breadcrumb())
	footer := m.helpLine(v)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", v.View(), "", footer)
}

func (m appModel) breadcrumb() string {
	parts := make([]string, 0, len(m.viewStack))
	for _, v := range m.viewStack {
		parts = append(parts, v.Title())
	}
	return strings.Join(parts, " › ")
}

func (m appModel) helpLine(v View) string {
	bindings := v.ShortHelp()
	if len(m.viewStack) > 1 {
		bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")))

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		parts = append(parts, formatter.Bold(b.Help().Key)+" "+formatter.Dim(b.Help().Desc))
	}
	return strings.Join(parts, formatter.Dim("  •  "))
}
