package pulse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var waterSetCmd = &cobra.Command{
	Use:   "set <litres>",
	Short: "Set today's water intake",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		litres, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
		if err != nil {
			return fmt.Errorf("invalid litres %q", args[0])
		}
		// The goal ceiling is a presentation rule; clamp here, not in state.
		if litres > state.WaterTargetLitres {
			litres = state.WaterTargetLitres
		}
		if litres < 0 {
			litres = 0
		}
		return withApp(func(st *state.App) error {
			if err := st.SetWaterIntake(litres); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Water intake: %.2fL of %.1fL (%d%%)\n",
				litres, state.WaterTargetLitres, state.GoalProgress(litres, state.WaterTargetLitres))
			return nil
		})
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show today's water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Water intake: %.2fL of %.1fL (%d%%)\n",
				st.WaterIntake(), state.WaterTargetLitres,
				state.GoalProgress(st.WaterIntake(), state.WaterTargetLitres))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterSetCmd, waterShowCmd)
}
