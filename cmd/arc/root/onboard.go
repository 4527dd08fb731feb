package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/tui"
	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

func newOnboardCmd(log *zap.Logger) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "onboard",
		Short: "Run the onboarding questionnaire and create your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx, log)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.Load(ctx); err == nil && !reset {
				return fmt.Errorf("a profile already exists; use --reset to start over (this clears it)")
			}
			if reset {
				if err := svc.Logout(ctx); err != nil {
					return err
				}
			}

			p, err := tui.RunOnboarding(ctx, svc, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if p == nil {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Onboarding cancelled."))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s, your %s begins.\n",
				ui.Good.Render(ui.IconSparkle+" Welcome"),
				ui.ArcStyle(p.Arc).Render(p.Name),
				ui.ArcStyle(p.Arc).Render(p.Arc+" arc"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Run `arc status` to see your missions, or `arc dashboard` for the full view."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Clear any existing profile and start over")

	return cmd
}
