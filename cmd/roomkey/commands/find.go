package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// find [target]: sector of the first valid room whose decrypted name contains target.
func findCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find [target]",
		Short: "Find the sector of the first valid room whose name contains target",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := appCtx.Config.Target
			if len(args) == 1 {
				target = args[0]
			}

			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			sector, err := cat.FindSector(target)
			if err != nil {
				appCtx.Log.Debug("search failed", zap.String("target", target), zap.Int("records", cat.Len()))
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sector)
			return nil
		},
	}
}
