package cli

import (
	"github.com/spf13/cobra"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
)

func newExamDateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "exam-date [YYYY-MM-DD]",
		Short: "Show or set the target exam date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := app.Progress.SetExamDate(cmd.Context(), args[0]); err != nil {
					return err
				}
			}
			cmd.Print(formatter.FormatExamDate(app.Progress.ExamDate(), app.now()))
			return nil
		},
	}
}
