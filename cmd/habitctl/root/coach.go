// AngelaMos | 2026
// coach.go

package root

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/taskhabit/internal/coach"
	"github.com/carterperez-dev/taskhabit/internal/config"
	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/lifecycle"
	"github.com/carterperez-dev/taskhabit/internal/ui"
)

func newCoachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Ask the AI coach for habits, motivation, advice or resources",
	}

	cmd.AddCommand(
		newCoachHabitsCmd(),
		newCoachMotivateCmd(),
		newCoachWisdomCmd(),
		newCoachResourcesCmd(),
	)
	return cmd
}

func newCoach(ctx context.Context, cfg *config.Config) (*coach.Coach, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if !cfg.Coach.Enabled {
		return coach.New(nil, logger), nil
	}

	gen, err := coach.NewGeminiGenerator(ctx, cfg.Coach.APIKey, cfg.Coach.Model)
	if err != nil {
		return nil, err
	}
	return coach.New(gen, logger), nil
}

func newCoachHabitsCmd() *cobra.Command {
	var adopt int

	cmd := &cobra.Command{
		Use:   "habits <category> <goal>",
		Short: "Suggest habits for a goal",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategory(args[0])
			if err != nil {
				return err
			}
			goal := strings.Join(args[1:], " ")

			st, cfg, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := st.User(); err != nil {
				return sessionError(err)
			}

			c, err := newCoach(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			habits, generated := c.SuggestHabits(cmd.Context(), category, goal)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Suggested habits"))
			for i, h := range habits {
				fmt.Fprintf(out, "%d. %s\n", i+1, h)
			}

			if adopt < 1 {
				return nil
			}
			if !generated {
				return errors.New("the coach gave no suggestions, nothing adopted")
			}
			if adopt > len(habits) {
				return fmt.Errorf("--adopt must be between 1 and %d", len(habits))
			}

			t, err := st.AddTask(cmd.Context(), lifecycle.AdoptedHabit(category, habits[adopt-1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Good.Render("adopted")+" "+ui.TaskLine(t))
			return nil
		},
	}

	cmd.Flags().IntVar(&adopt, "adopt", 0, "Add suggestion N as a daily habit")
	return cmd
}

func newCoachMotivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "motivate",
		Short: "A short message based on your points and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, cfg, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := st.Snapshot()
			if err != nil {
				return sessionError(err)
			}

			c, err := newCoach(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			msg := c.Motivate(cmd.Context(), snap.User.Points, lifecycle.LongestStreak(snap.Tasks))
			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(msg))
			return nil
		},
	}
}

func newCoachWisdomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wisdom <category>",
		Short: "One line of advice for a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategory(args[0])
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			c, err := newCoach(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Panel.Render(c.CategoryWisdom(cmd.Context(), category)))
			return nil
		},
	}
}

func newCoachResourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources <category>",
		Short: "Playlists and links to go with a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := parseCategory(args[0])
			if err != nil {
				return err
			}

			res, _ := domain.Resources(category)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, res.Title))
			for _, l := range res.Links {
				fmt.Fprintf(out, "%s (%s)\n  %s\n", l.Name, l.Kind, ui.Muted.Render(l.URL))
			}
			return nil
		},
	}
}
