package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

func newLogoutCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear your profile and all progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, log)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Profile cleared. Run `arc onboard` to begin a new arc."))
			return nil
		},
	}

	return cmd
}
