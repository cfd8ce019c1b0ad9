package cmd

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/example/cab-booking/internal/domain/booking"
)

func newBookCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "book <pickup-location>",
		Short: "Request a single cab booking",
		Long: "Request a single cab booking. The booking, or the reason it was refused,\n" +
			"is printed as JSON on stdout. A refused booking exits non-zero.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.newBooker(nil)
			if err != nil {
				return err
			}
			b, err := uc.Execute(cmdContext(cmd), args[0])
			if err != nil {
				if booking.KindOf(err) != "" {
					if werr := writeJSON(cmd.OutOrStdout(), err); werr != nil {
						return werr
					}
				}
				return err
			}
			return writeJSON(cmd.OutOrStdout(), b)
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
