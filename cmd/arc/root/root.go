package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "arc",
	Short:         "Arc Ascension — local-first gamified personal-development tracker",
	Long:          "Arc Ascension tracks your transformation arc: XP, levels, streaks, missions and AI-generated daily tasks, all on your own machine.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute(log *zap.Logger) {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newOnboardCmd(log),
		newStatusCmd(log),
		newDoCmd(log),
		newTaskCmd(log),
		newRegenCmd(log),
		newDashboardCmd(log),
		newLogoutCmd(log),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
