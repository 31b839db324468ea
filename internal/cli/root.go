package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/ssctools/ssctrack/internal/service"
)

// App holds references to everything CLI commands and TUI views need.
type App struct {
	Progress service.ProgressService
	Catalog  *domain.Catalog

	// Now is the clock used for derived metrics; tests pin it.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. When true and no
	// subcommand is given, the root command opens the TUI.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "ssctrack" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "ssctrack",
		Short: "SSC board exam study-progress tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newStatusCmd(app),
		newSubjectsCmd(app),
		newChaptersCmd(app),
		newMarkCmd(app),
		newCycleCmd(app),
		newExamDateCmd(app),
		newAnalyticsCmd(app),
		newBurndownCmd(app),
		newResetCmd(app),
	)

	return root
}
