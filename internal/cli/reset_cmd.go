package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newResetCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all progress and restore defaults (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if !app.interactive() {
					return fmt.Errorf("refusing to reset without confirmation; pass --force")
				}
				confirmed, err := confirmReset()
				if err != nil {
					return err
				}
				if !confirmed {
					cmd.Println("Reset cancelled.")
					return nil
				}
			}

			if err := app.Progress.ResetAll(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("All progress cleared; exam date restored to default.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	return cmd
}

func confirmReset() (bool, error) {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Reset all progress?").
			Description("This purges every chapter's status and the exam date. It cannot be undone.").
			Affirmative("Reset").
			Negative("Cancel").
			Value(&confirmed),
	)).WithTheme(ssctrackHuhTheme())
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
