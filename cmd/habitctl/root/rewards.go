// AngelaMos | 2026
// rewards.go

package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carterperez-dev/taskhabit/internal/domain"
	"github.com/carterperez-dev/taskhabit/internal/ui"
)

func newRewardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rewards",
		Short: "Show the reward catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			snap, err := st.Snapshot()
			if err != nil {
				return sessionError(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, fmt.Sprintf("Rewards (%d points)", snap.User.Points)))
			for _, rw := range snap.Rewards {
				var state string
				switch {
				case snap.User.HasUnlocked(rw.ID):
					state = ui.Good.Render("unlocked")
				case snap.User.Points >= rw.Cost:
					state = ui.Gold.Render("affordable")
				default:
					state = ui.Muted.Render(ui.IconLock)
				}
				fmt.Fprintf(out, "- %s %s %s %s\n",
					rw.Icon,
					rw.Name,
					ui.Muted.Render(fmt.Sprintf("(%s, %d pts, id %s)", rw.Type, rw.Cost, rw.ID)),
					state,
				)
			}
			return nil
		},
	}
}

func newUnlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock <reward-id>",
		Short: "Spend points on a reward",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, cleanup, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			rewards, err := st.Rewards()
			if err != nil {
				return sessionError(err)
			}
			rw, ok := domain.FindReward(rewards, args[0])
			if !ok {
				return fmt.Errorf("reward %s not found", args[0])
			}

			unlocked, err := st.UnlockReward(cmd.Context(), rw.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !unlocked {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf(
					"cannot unlock %s: already owned or needs %d points", rw.Name, rw.Cost,
				)))
				return nil
			}

			fmt.Fprintln(out, ui.Good.Render(fmt.Sprintf("%s unlocked %s", ui.IconTrophy, rw.Name)))
			return nil
		},
	}
}
