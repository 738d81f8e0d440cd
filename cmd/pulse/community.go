package pulse

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Browse and join communities",
}

var communityListCmd = &cobra.Command{
	Use:   "list",
	Short: "List communities and their challenges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			for _, c := range st.Communities() {
				joined := ""
				if c.Joined {
					joined = " [joined]"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s (%d members)%s\n", c.ID, c.Name, c.Members, joined)
				for _, ch := range c.Challenges {
					enrolled := ""
					if ch.Enrolled {
						enrolled = fmt.Sprintf(" [enrolled, %d%%]", ch.Progress)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "  %s\t%s (ends %s)%s\n", ch.ID, ch.Title, ch.EndDate, enrolled)
				}
			}
			return nil
		})
	},
}

var communityJoinCmd = &cobra.Command{
	Use:   "join <id>",
	Short: "Join a community",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			if err := st.JoinCommunity(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Joined community %s\n", args[0])
			return nil
		})
	},
}

var communityLeaveCmd = &cobra.Command{
	Use:   "leave <id>",
	Short: "Leave a community",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			if err := st.LeaveCommunity(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Left community %s\n", args[0])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(communityCmd)
	communityCmd.AddCommand(communityListCmd, communityJoinCmd, communityLeaveCmd)
}
