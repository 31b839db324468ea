package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/domain"
	"github.com/ssctools/ssctrack/internal/stats"
)

func newSubjectsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subjects",
		Short: "List subjects with their completion state",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := app.Progress.Snapshot()

			headers := []string{"ID", "SUBJECT", "CHAPTERS", "PROGRESS"}
			var rows [][]string
			for _, r := range stats.SubjectBreakdown(app.Catalog, snap.Chapters) {
				rows = append(rows, []string{
					formatter.Dim(r.Subject.ID),
					formatter.SubjectStyle(r.Subject).Render(r.Subject.Name),
					fmt.Sprintf("%d/%d", r.Progress.Completed, r.Progress.Total),
					formatter.RenderProgress(r.Progress.Percentage, 12),
				})
			}
			cmd.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newChaptersCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "chapters <subject-id>",
		Short: "List the chapters of one subject",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, ok := app.Catalog.Subject(args[0])
			if !ok {
				return fmt.Errorf("unknown subject %q (try: ssctrack subjects)", args[0])
			}

			snap := app.Progress.Snapshot()
			chapters := chaptersOf(snap.Chapters, subject.ID)
			progress := stats.SubjectProgressFor(snap.Chapters, subject.ID)

			cmd.Print(formatter.FormatChapters(subject, chapters, progress))
			return nil
		},
	}
}

func chaptersOf(chapters []domain.Chapter, subjectID string) []domain.Chapter {
	var out []domain.Chapter
	for _, c := range chapters {
		if c.SubjectID == subjectID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
