package pulse

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
	"github.com/kallmejoe/Pulseyapp/internal/store"
)

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Manage display preferences",
}

var prefsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv *store.Store) error {
			prefs, err := state.ListPreferences(kv)
			if err != nil {
				return err
			}
			keys := make([]string, 0, len(prefs))
			for key := range prefs {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, prefs[key])
			}
			return nil
		})
	},
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a preference",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(kv *store.Store) error {
			if err := state.SetPreference(kv, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", args[0], args[1])
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(prefsCmd)
	prefsCmd.AddCommand(prefsListCmd, prefsSetCmd)
}
