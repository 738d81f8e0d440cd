package pulse

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local pulse store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			path, err := resolveStorePath()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized pulse store at %s\n", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d meals, %d workouts, %d communities, %d achievements\n",
				len(st.Meals()), len(st.Workouts()), len(st.Communities()), len(st.Achievements()))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
