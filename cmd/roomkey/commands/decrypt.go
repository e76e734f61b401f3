package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"roomkey/internal/crypto"
	"roomkey/internal/parse"
)

// decrypt <identifier>: print the decrypted name whether or not the checksum holds.
func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <identifier>",
		Short: "Decrypt the name of a single room identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := parse.Record(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), crypto.Rotate(rec.Tokens, rec.Sector))
			return nil
		},
	}
}
