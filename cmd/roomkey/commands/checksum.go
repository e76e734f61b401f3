package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomkey/internal/crypto"
	"roomkey/internal/parse"
)

func checksumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checksum <identifier>",
		Short: "Compare the computed checksum of an identifier with the stored one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := parse.Record(args[0])
			if err != nil {
				return err
			}
			status := colorDecoy.Sprint("decoy")
			if crypto.Valid(rec) {
				status = colorValid.Sprint("valid")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "computed=%s stored=%s %s\n", crypto.Checksum(rec.Tokens), rec.Checksum, status)
			return nil
		},
	}
}
