package pulse

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kallmejoe/Pulseyapp/internal/store"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Back up and restore the store file",
}

var backupOut string

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Copy the store file with a sha256 sidecar",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		info, err := store.CreateBackup(path, backupOut)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Backup written to %s (%d bytes)\n", info.Path, info.SizeBytes)
		fmt.Fprintf(cmd.OutOrStdout(), "sha256: %s\n", info.Checksum)
		return nil
	},
}

var (
	backupFrom  string
	backupForce bool
)

var backupRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the store file from a backup",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveStorePath()
		if err != nil {
			return err
		}
		if err := store.RestoreBackup(backupFrom, path, backupForce); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Restored store from %s\n", backupFrom)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupCreateCmd, backupRestoreCmd)

	backupCreateCmd.Flags().StringVar(&backupOut, "out", "", "Backup output path")
	backupCreateCmd.MarkFlagRequired("out")
	backupRestoreCmd.Flags().StringVar(&backupFrom, "from", "", "Backup file to restore")
	backupRestoreCmd.Flags().BoolVar(&backupForce, "force", false, "Overwrite an existing store")
	backupRestoreCmd.MarkFlagRequired("from")
}
