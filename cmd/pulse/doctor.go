package pulse

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check store contents for violated invariants",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			report := st.Doctor()
			if report.Clean() {
				fmt.Fprintln(cmd.OutOrStdout(), "Store is consistent")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate meal ids: %d\n", report.DuplicateMealIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate workout ids: %d\n", report.DuplicateWorkoutIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate community ids: %d\n", report.DuplicateCommunityIDs)
			fmt.Fprintf(cmd.OutOrStdout(), "Achievement violations: %d\n", report.AchievementViolations)
			fmt.Fprintf(cmd.OutOrStdout(), "Challenge progress out of range: %d\n", report.ChallengeProgressBounds)
			fmt.Fprintf(cmd.OutOrStdout(), "Negative meal calories: %d\n", report.NegativeMealCalories)
			return fmt.Errorf("store has inconsistencies")
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
