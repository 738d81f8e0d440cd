package pulse

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

// statsTolerance is the adherence band around the daily target.
const statsTolerance = 0.10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the weekly calorie window",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			fmt.Fprintln(cmd.OutOrStdout(), "DAY\tDATE\tKCAL\tTARGET\tON TRACK")
			onTrack := 0
			for _, d := range st.WeeklyStats() {
				within := adherenceWithin(float64(d.Calories), float64(d.Target), statsTolerance)
				mark := ""
				if within {
					mark = "✓"
					onTrack++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\t%d\t%s\n", d.Day, d.Date, d.Calories, d.Target, mark)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "On track %d of %d days (within %.0f%% of target)\n",
				onTrack, len(st.WeeklyStats()), statsTolerance*100)
			return nil
		})
	},
}

func adherenceWithin(actual, target, tolerance float64) bool {
	if target == 0 {
		return actual == 0
	}
	return math.Abs(actual-target) <= target*tolerance
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
