package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"roomkey/internal/domain"
)

var (
	colorValid = color.Style{color.FgGreen, color.OpBold}
	colorDecoy = color.Style{color.FgRed}
	colorName  = color.Style{color.FgCyan}
)

func listCmd() *cobra.Command {
	var validOnly, asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every record with its validity and decrypted name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog()
			if err != nil {
				return err
			}

			rooms := make([]domain.ValidatedRecord, 0, cat.Len())
			for _, room := range cat.Rooms() {
				if validOnly && !room.Valid {
					continue
				}
				rooms = append(rooms, room)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rooms)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, room := range rooms {
				status, name := colorDecoy.Sprint("decoy"), ""
				if room.Valid {
					status, name = colorValid.Sprint("valid"), colorName.Sprint(room.Name)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", room.Sector, room.Checksum, status, name)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&validOnly, "valid", false, "only show valid rooms")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print rooms as JSON")
	return cmd
}
