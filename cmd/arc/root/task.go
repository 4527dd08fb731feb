package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/parthsharma232007/arc-ascension/internal/ui"
)

func newTaskCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage your daily tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(log),
		newTaskEditCmd(log),
		newTaskDoneCmd(log),
		newTaskRmCmd(log),
		newTaskListCmd(log),
	)
	return cmd
}

func newTaskAddCmd(log *zap.Logger) *cobra.Command {
	var timeLabel string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			t, err := svc.AddTask(ctx, args[0], timeLabel)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", ui.Good.Render(ui.IconPlus+" Added"), t.Title, ui.Muted.Render(t.ID))
			return nil
		},
	}

	cmd.Flags().StringVarP(&timeLabel, "time", "t", "", "Time label (e.g. \"10 min\")")
	return cmd
}

func newTaskEditCmd(log *zap.Logger) *cobra.Command {
	var timeLabel string

	cmd := &cobra.Command{
		Use:   "edit <id> <title>",
		Short: "Edit a task's title (and optional time label)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("task id and title are required")
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

			found, err := svc.EditTask(ctx, args[0], args[1], timeLabel)
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No task with that id."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Updated."))
			return nil
		},
	}

	cmd.Flags().StringVarP(&timeLabel, "time", "t", "", "Time label (e.g. \"10 min\")")
	return cmd
}

func newTaskDoneCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
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

			found, err := svc.ToggleTask(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No task with that id."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Toggled."))
			return nil
		},
	}

	return cmd
}

func newTaskRmCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
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

			found, err := svc.DeleteTask(ctx, args[0])
			if err != nil {
				return err
			}
			if !found {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("No task with that id."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(ui.IconDone+" Deleted."))
			return nil
		},
	}

	return cmd
}

func newTaskListCmd(log *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List today's tasks",
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
			if len(p.Tasks) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("(no tasks — run `arc regen` or `arc task add`)"))
				return nil
			}
			for _, t := range p.Tasks {
				line := fmt.Sprintf("%s %s", ui.TaskCheckbox(t.Completed), t.Title)
				if t.Time != "" {
					line += " " + ui.Muted.Render("("+t.Time+")")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", line, ui.Muted.Render(t.ID))
			}
			return nil
		},
	}

	return cmd
}
