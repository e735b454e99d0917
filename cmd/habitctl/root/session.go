// AngelaMos | 2026
// session.go

package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/carterperez-dev/taskhabit/internal/progression"
	"github.com/carterperez-dev/taskhabit/internal/ui"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Sign in, creating the profile on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.TrimSpace(args[0])
			if err := validator.New().Var(email, "required,email,max=255"); err != nil {
				return fmt.Errorf("%q is not a valid email address", email)
			}

			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := st.Login(cmd.Context(), email)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Welcome, "+snap.User.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", snap.User.Level))
			fmt.Fprintln(out, ui.LabelValue("Points", snap.User.Points))
			fmt.Fprintln(out, ui.LabelValue("Tasks", len(snap.Tasks)))
			return nil
		},
	}
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out; the profile stays saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if st.ActiveEmail() == "" {
				return errors.New("not logged in")
			}
			if err := st.Logout(cmd.Context()); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("signed out"))
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show points, level, streaks and today's agenda",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			u, err := st.User()
			if err != nil {
				return sessionError(err)
			}
			dash, err := st.Dashboard()
			if err != nil {
				return sessionError(err)
			}

			out := cmd.OutOrStdout()
			heading := u.Name + " " + ui.Muted.Render("<"+u.Email+">")
			if u.IsAdmin() {
				heading += " " + ui.Gold.Render("admin")
			}
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, heading))
			fmt.Fprintln(out, ui.LabelValue("Membership", u.Membership))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d of %d", dash.Level, progression.MaxLevel())))

			if next, ok := progression.NextThreshold(dash.Points); ok {
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf(
					"%d (next level at %d, %d to go)", dash.Points, next, dash.PointsToNextLevel,
				)))
			} else {
				fmt.Fprintln(out, ui.LabelValue("Points", fmt.Sprintf("%d (max level)", dash.Points)))
			}

			fmt.Fprintln(out, ui.LabelValue("Tasks", fmt.Sprintf(
				"%d pending, %d completed", dash.Pending, dash.Completed,
			)))
			fmt.Fprintln(out, ui.LabelValue("Longest streak", dash.LongestStreak))
			fmt.Fprintln(out, "")

			if len(dash.Challenges) > 0 {
				fmt.Fprintln(out, ui.H2.Render(ui.IconFire+" 30-day challenges"))
				for _, c := range dash.Challenges {
					fmt.Fprintf(out, "- %s %s\n", c.Title, ui.Muted.Render(fmt.Sprintf("day %d/%d", c.Day, c.Of)))
				}
				fmt.Fprintln(out, "")
			}

			if len(dash.Agenda) > 0 {
				fmt.Fprintln(out, ui.H2.Render("Agenda"))
				for _, t := range dash.Agenda {
					fmt.Fprintln(out, ui.TaskLine(t))
				}
			}
			return nil
		},
	}
}
