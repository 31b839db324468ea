package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssctools/ssctrack/internal/cli/formatter"
	"github.com/ssctools/ssctrack/internal/domain"
)

func newMarkCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "mark <chapter-id> <not-started|in-progress|completed>",
		Short: "Set a chapter's status directly",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := parseStatusArg(args[1])
			if err != nil {
				return err
			}
			chapterID := args[0]
			if _, ok := app.Progress.Chapter(chapterID); !ok {
				return fmt.Errorf("unknown chapter %q (ids look like maths1-ch3)", chapterID)
			}
			if err := app.Progress.UpdateChapterStatus(cmd.Context(), chapterID, status); err != nil {
				return err
			}

			c, _ := app.Progress.Chapter(chapterID)
			cmd.Printf("%s %s → %s\n", formatter.Bold(c.ID), c.Title, formatter.StatusPill(c.Status))
			return nil
		},
	}
}

func newCycleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "cycle <chapter-id>",
		Short: "Advance a chapter one step: not started → in progress → completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Progress.CycleChapterStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			cmd.Printf("%s %s → %s\n", formatter.Bold(c.ID), c.Title, formatter.StatusPill(c.Status))
			return nil
		},
	}
}

// parseStatusArg maps CLI-friendly spellings onto chapter statuses.
func parseStatusArg(s string) (domain.ChapterStatus, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "_", "-")) {
	case "not-started", "todo":
		return domain.StatusNotStarted, nil
	case "in-progress", "started":
		return domain.StatusInProgress, nil
	case "completed", "done":
		return domain.StatusCompleted, nil
	}
	return "", fmt.Errorf("unknown status %q: want not-started, in-progress, or completed", s)
}
