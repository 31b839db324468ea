package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/stats"
)

// addDaysFlag registers the shared --days flag controlling how many active
// days of history a command shows.
func addDaysFlag(fs *pflag.FlagSet, days *int, def int) {
	fs.IntVar(days, "days", def, "How many recent active days to include")
}

func newAnalyticsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show streak, velocity, and the projected finish date",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Progress.Snapshot()
			now := app.now()

			cmd.Print(formatter.FormatAnalytics(formatter.AnalyticsSummary{
				Streak:         stats.CurrentStreak(snap.Chapters, now),
				Velocity:       stats.Velocity(snap.Chapters, now),
				Projection:     stats.ProjectedFinish(snap.Chapters, now),
				ChaptersPerDay: stats.ChaptersPerDay(snap.Chapters, snap.ExamDate, now),
				Distribution:   stats.Distribution(snap.Chapters),
				Daily:          stats.DailyCompletions(snap.Chapters, now, days),
			}))
			return nil
		},
	}

	addDaysFlag(cmd.Flags(), &days, 7)
	return cmd
}

func newBurndownCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "burndown",
		Short: "Show remaining chapters against the ideal path to the exam",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Progress.Snapshot()

			points, err := stats.Burndown(snap.Chapters, snap.ExamDate, app.now())
			if err != nil {
				return err
			}
			cmd.Print(formatter.FormatBurndown(points))
			return nil
		},
	}
}
