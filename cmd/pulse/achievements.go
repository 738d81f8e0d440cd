package pulse

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show achievement progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTITLE\tPROGRESS\tDONE")
			for _, a := range st.Achievements() {
				done := ""
				if a.Completed {
					done = "✓"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d/%d\t%s\n", a.ID, a.Title, a.Progress, a.Total, done)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
}
