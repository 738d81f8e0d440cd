package pulse

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/state"
)

var (
	exportOut string
	importIn  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all tracked data as a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(st *state.App) error {
			raw, err := json.MarshalIndent(st.Export(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode snapshot: %w", err)
			}
			if exportOut == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(raw))
				return nil
			}
			if err := os.WriteFile(exportOut, raw, 0o644); err != nil {
				return fmt.Errorf("write snapshot: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported snapshot to %s\n", exportOut)
			return nil
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace all tracked data from a JSON snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(importIn)
		if err != nil {
			return fmt.Errorf("read snapshot: %w", err)
		}
		var snap state.Snapshot
		if err := json.Unmarshal(raw, &snap); err != nil {
			return fmt.Errorf("decode snapshot: %w", err)
		}
		return withApp(func(st *state.App) error {
			if err := st.Import(snap); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d meals, %d workouts, %d communities\n",
				len(snap.Meals), len(snap.Workouts), len(snap.Communities))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVar(&exportOut, "out", "", "Snapshot output path (default stdout)")
	importCmd.Flags().StringVar(&importIn, "in", "", "Snapshot file to import")
	importCmd.MarkFlagRequired("in")
}
