package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the input fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", cat.Fingerprint())
			return nil
		},
	}
	return cmd
}
