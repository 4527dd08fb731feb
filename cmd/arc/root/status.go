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

func newStatusCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your profile, progress and today's tasks",
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

			// Once-per-load daily check: a failed generation keeps
			// yesterday's list and is only a warning here.
			if regenerated, err := svc.EnsureDailyTasks(ctx, p); err != nil {
				if errors.Is(err, generate.ErrGeneration) {
					fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconWarn+" Couldn't generate today's tasks — run `arc regen` to retry."))
				} else {
					return err
				}
			} else if regenerated {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconLoop+" Fresh tasks generated for today."))
			}

			out := cmd.OutOrStdout()
			arcStyle := ui.ArcStyle(p.Arc)

			fmt.Fprintln(out, ui.Heading(ui.IconArc, "Arc Ascension"))
			fmt.Fprintf(out, "%s %s  %s\n", arcStyle.Render(p.Name), ui.Muted.Render("· "+p.Arc+" arc"), ui.Muted.Render(p.Avatar.Name+" ("+p.Avatar.Series+")"))
			fmt.Fprintln(out, ui.Muted.Render("“"+ui.RandomQuote(p.Arc)+"”"))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.LabelValue("Level", p.Level))
			fmt.Fprintf(out, "%s %s\n", ui.Key.Render("XP:"), fmt.Sprintf("%d/%d %s", p.XP, p.XPToNextLevel, ui.Bar(p.XP, p.XPToNextLevel, 30)))
			fmt.Fprintf(out, "%s %s\n", ui.Key.Render("Streak:"), fmt.Sprintf("%s %d days", ui.IconFlame, p.Streak))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Progress"))
			fmt.Fprintln(out, ui.Meter("Mental", p.MentalProgress, 100, 20))
			fmt.Fprintln(out, ui.Meter("Physical", p.PhysicalProgress, 100, 20))
			fmt.Fprintln(out, ui.Meter("Overall", p.OverallProgress, 100, 20))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconBolt+" Missions"))
			for _, m := range p.Missions {
				title := m.Title
				if m.Completed {
					title = ui.Muted.Render(title)
				}
				fmt.Fprintf(out, "%s %s %s %s\n", ui.TaskCheckbox(m.Completed), ui.Key.Render("#"+m.ID), title, ui.Gold.Render(fmt.Sprintf("+%d XP", m.XPReward)))
				fmt.Fprintf(out, "    %s\n", ui.Muted.Render(m.Description))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Daily Tasks"))
			if len(p.Tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none — run `arc regen` or `arc task add`)"))
			}
			for _, t := range p.Tasks {
				line := fmt.Sprintf("%s %s", ui.TaskCheckbox(t.Completed), t.Title)
				if t.Time != "" {
					line += " " + ui.Muted.Render("("+t.Time+")")
				}
				fmt.Fprintf(out, "%s  %s\n", line, ui.Muted.Render(t.ID))
			}

			return nil
		},
	}

	return cmd
}
