package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/engine"
	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

func newDoCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <mission-id>",
		Short: "Complete a mission",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("mission id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, log)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteMission(ctx, args[0])
			if err != nil {
				return err
			}
			if res == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Nothing to do — unknown mission or already completed."))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" "+engine.FormatMissionToast(res)))
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevelUp, ui.Gold.Render(fmt.Sprintf("You reached level %d!", res.LevelAfter)))
			}
			return nil
		},
	}

	return cmd
}
