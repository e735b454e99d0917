// AngelaMos | 2026
// tasks.go

package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
	"github.com/carterperez-dev/taskhabit/internal/ui"
)

func newAddCmd() *cobra.Command {
	var (
		description string
		category    string
		priority    string
		frequency   string
		habit       bool
		start       string
		end         string
		notifyBy    string
	)

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task or habit",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseCategory(category)
			if err != nil {
				return err
			}

			draft := lifecycle.Draft{
				Title:            args[0],
				Description:      description,
				Category:         c,
				Priority:         domain.Priority(priority),
				Frequency:        domain.Frequency(frequency),
				IsHabit:          habit,
				StartTime:        start,
				EndTime:          end,
				NotificationType: domain.NotificationType(notifyBy),
			}
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			t, err := st.AddTask(cmd.Context(), draft)
			if err != nil {
				return sessionError(err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("added")+" "+ui.TaskLine(t))
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Longer description")
	cmd.Flags().StringVarP(&category, "category", "C", string(domain.CategoryPersonal), "Category ("+categoryList()+")")
	cmd.Flags().StringVarP(&priority, "priority", "p", string(domain.PriorityMedium), "Priority (low|medium|high)")
	cmd.Flags().StringVarP(&frequency, "frequency", "f", string(domain.FrequencyOnce), "Frequency (once|daily|weekly|monthly)")
	cmd.Flags().BoolVar(&habit, "habit", false, "Track as a habit with a streak")
	cmd.Flags().StringVar(&start, "start", "", "Start time HH:mm")
	cmd.Flags().StringVar(&end, "end", "", "End time HH:mm")
	cmd.Flags().StringVar(&notifyBy, "notify", string(domain.NotifyEmail), "Reminder channel (email|voice)")

	return cmd
}

func newListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := st.Tasks()
			if err != nil {
				return sessionError(err)
			}

			if category != "" {
				c, err := parseCategory(category)
				if err != nil {
					return err
				}
				tasks = lifecycle.FilterByCategory(tasks, c)
			}

			out := cmd.OutOrStdout()
			if len(tasks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("no tasks"))
				return nil
			}
			for _, t := range tasks {
				fmt.Fprintln(out, ui.TaskLine(t))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "C", "", "Only this category")
	return cmd
}

func newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task-id>",
		Short: "Mark a task done, or undo it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := st.ToggleTask(cmd.Context(), args[0])
			if err != nil {
				return sessionError(err)
			}

			out := cmd.OutOrStdout()
			if !res.Completed {
				fmt.Fprintln(out, ui.Muted.Render("marked pending"))
				return nil
			}

			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s +%d points", ui.IconDone, res.PointsAwarded)))
			if res.StreakBonus {
				fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf(
					"%s %d-day streak bonus +%d", ui.IconFire, res.Streak, lifecycle.HabitBonusPoints,
				)))
			}
			if res.Points.LeveledUp {
				fmt.Fprintf(out, "%s level %d\n", ui.BadgeLevelUp, res.Points.Level)
			}
			return nil
		},
	}
}

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rm <task-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			removed, err := st.DeleteTask(cmd.Context(), args[0])
			if err != nil {
				return sessionError(err)
			}
			if !removed {
				return fmt.Errorf("task %s not found", args[0])
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("deleted "+args[0]))
			return nil
		},
	}
}
