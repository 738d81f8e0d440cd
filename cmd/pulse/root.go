package pulse

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var storePath string

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "pulse tracks meals, workouts, and community challenges from your terminal",
	Long:  "pulse is a local-first fitness tracking CLI: log meals and water, enroll in workouts and community challenges, and watch achievements and weekly stats derive themselves. All state lives in a local store file.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storePath, "db", "", "Path to pulse store file")
}
