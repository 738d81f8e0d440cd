package pulse

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Manage logged meals",
}

var (
	mealName     string
	mealTime     string
	mealFoods    []string
	mealCalories int
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a new meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			meal, err := st.AddMeal(state.MealInput{
				Name:     mealName,
				Time:     mealTime,
				Foods:    mealFoods,
				Calories: mealCalories,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added meal %s\n", meal.ID)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tKCAL\tFOODS")
			for _, m := range st.Meals() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%d\t%s\n",
					m.ID, m.Time, m.Name, m.Calories, strings.Join(m.Foods, ", "))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal | ~%dg protein\n",
				st.TotalCalories(), st.TotalProtein())
			return nil
		})
	},
}

var mealUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			if err := st.UpdateMeal(args[0], state.MealInput{
				Name:     mealName,
				Time:     mealTime,
				Foods:    mealFoods,
				Calories: mealCalories,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated meal %s\n", args[0])
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			if err := st.DeleteMeal(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd, mealListCmd, mealUpdateCmd, mealDeleteCmd)

	for _, c := range []*cobra.Command{mealAddCmd, mealUpdateCmd} {
		c.Flags().StringVar(&mealName, "name", "", "Meal name")
		c.Flags().StringVar(&mealTime, "time", "", "Time-of-day label, e.g. \"8:00 AM\"")
		c.Flags().StringArrayVar(&mealFoods, "food", nil, "Food name (repeatable)")
		c.Flags().IntVar(&mealCalories, "calories", 0, "Calorie count")
	}
	mealAddCmd.MarkFlagRequired("name")
	mealAddCmd.MarkFlagRequired("calories")
}
