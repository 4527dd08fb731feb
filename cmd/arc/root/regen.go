package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/generate"
	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

func newRegenCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regen",
		Short: "Regenerate today's tasks from your preferences",
		Long: `Regenerate the daily task list by asking the text-generation service
for fresh tasks matching your focus areas, difficulty and time budget.

The existing list is replaced only on success; a failed call leaves your
tasks exactly as they were.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, log)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.RegenerateDailyTasks(ctx)
			if err != nil {
				if errors.Is(err, generate.ErrGeneration) {
					return fmt.Errorf("task generation failed — your tasks are unchanged; try again in a moment")
				}
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d tasks for today:\n", ui.Good.Render(ui.IconLoop+" Generated"), len(p.Tasks))
			for _, t := range p.Tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.TaskCheckbox(false), t.Title)
			}
			return nil
		},
	}

	return cmd
}
