package pulse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Enroll in and track community challenges",
}

var challengeEnrollCmd = &cobra.Command{
	Use:   "enroll <community-id> <challenge-id>",
	Short: "Enroll in a community challenge",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			if err := st.EnrollInChallenge(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Enrolled in challenge %s\n", args[1])
			return nil
		})
	},
}

var challengeProgressCmd = &cobra.Command{
	Use:   "progress <community-id> <challenge-id> <pct>",
	Short: "Set challenge progress (0, 25, 50, 75, or 100)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pct, err := strconv.Atoi(strings.TrimSpace(args[2]))
		if err != nil {
			return fmt.Errorf("invalid progress %q", args[2])
		}
		// Five-step granularity is enforced here, at the surface; the
		// container stores whatever it is handed.
		switch pct {
		case 0, 25, 50, 75, 100:
		default:
			return fmt.Errorf("progress must be one of 0, 25, 50, 75, 100")
		}
		return withApp(func(st *state.App) error {
			if err := st.UpdateChallengeProgress(args[0], args[1], pct); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Challenge %s progress: %d%%\n", args[1], pct)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(challengeCmd)
	challengeCmd.AddCommand(challengeEnrollCmd, challengeProgressCmd)
}
