package root

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/generate"
	"github.com/parthsharma232007/arc-ascension/internal/tui"
)

func newDashboardCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"board"},
		Short:   "Open the interactive dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, log)
			if err != nil {
				return err
			}
			defer cleanup()

			p, err := svc.Load(ctx)
			if err != nil {
				return err
			}
			// Daily check before entering the TUI; a generation failure is
			// non-fatal, the dashboard shows yesterday's list.
			if _, err := svc.EnsureDailyTasks(ctx, p); err != nil && !errors.Is(err, generate.ErrGeneration) {
				return err
			}

			return tui.RunDashboard(ctx, svc, cmd.OutOrStdout())
		},
	}

	return cmd
}
