package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func sumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sum",
		Short: "Sum the sector ids of all valid rooms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), cat.SumValidSectors())
			return nil
		},
	}
}
