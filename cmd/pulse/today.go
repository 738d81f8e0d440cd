package pulse

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake, water, and goal progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			total := st.TotalCalories()
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d of %d kcal (%d%%)\n",
				total, state.CalorieTarget, state.GoalProgress(float64(total), state.CalorieTarget))
			fmt.Fprintf(cmd.OutOrStdout(), "Protein: ~%dg\n", st.TotalProtein())
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %.2fL of %.1fL (%d%%)\n",
				st.WaterIntake(), state.WaterTargetLitres,
				state.GoalProgress(st.WaterIntake(), state.WaterTargetLitres))
			fmt.Fprintf(cmd.OutOrStdout(), "Meals logged: %d\n", len(st.Meals()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
