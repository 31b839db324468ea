package cli

import (
	"github.com/spf13/cobra"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/stats"
)

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show overall progress and the countdown to the exam",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Progress.Snapshot()
			now := app.now()

			cmd.Print(formatter.FormatStatus(formatter.StatusSummary{
				Rows:           stats.SubjectBreakdown(app.Catalog, snap.Chapters),
				Overall:        stats.Overall(snap.Chapters),
				RemainingDays:  stats.RemainingDays(snap.ExamDate, now),
				ChaptersPerDay: stats.ChaptersPerDay(snap.Chapters, snap.ExamDate, now),
				ExamDate:       snap.ExamDate,
			}))
			return nil
		},
	}
}
