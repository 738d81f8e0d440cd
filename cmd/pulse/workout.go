package pulse

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Browse and track workouts",
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the workout catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tDURATION\tDIFFICULTY\tKCAL\tENROLLED\tDONE")
			for _, w := range st.Workouts() {
				enrolled := "no"
				if w.Enrolled {
					enrolled = "yes"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
					w.ID, w.Title, w.Duration, w.Difficulty, w.Calories, enrolled, w.CompletedCount)
			}
			return nil
		})
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a workout's exercises",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			for _, w := range st.Workouts() {
				if w.ID != args[0] {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s, %s kcal)\n", w.Title, w.Duration, w.Difficulty, w.Calories)
				fmt.Fprintf(cmd.OutOrStdout(), "Exercises: %s\n", strings.Join(w.Exercises, ", "))
				fmt.Fprintf(cmd.OutOrStdout(), "Completed %d times\n", w.CompletedCount)
				return nil
			}
			return fmt.Errorf("workout %s not found", args[0])
		})
	},
}

var workoutEnrollCmd = &cobra.Command{
	Use:   "enroll <id>",
	Short: "Toggle enrollment in a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			if err := st.ToggleWorkoutEnrollment(args[0]); err != nil {
				return err
			}
			for _, w := range st.Workouts() {
				if w.ID == args[0] {
					if w.Enrolled {
						fmt.Fprintf(cmd.OutOrStdout(), "Enrolled in %s\n", w.Title)
					} else {
						fmt.Fprintf(cmd.OutOrStdout(), "Unenrolled from %s\n", w.Title)
					}
				}
			}
			return nil
		})
	},
}

var workoutCompleteCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Record a completed workout session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			if err := st.CompleteWorkout(args[0]); err != nil {
				return err
			}
			for _, w := range st.Workouts() {
				if w.ID == args[0] {
					fmt.Fprintf(cmd.OutOrStdout(), "%s completed %d times\n", w.Title, w.CompletedCount)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutListCmd, workoutShowCmd, workoutEnrollCmd, workoutCompleteCmd)
}
