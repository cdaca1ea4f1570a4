package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/signdeck-backend/internal/app"
)

// NewVersionCommand prints build information.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "signdeckctl "+app.BuildVersion())
			return err
		},
	}
}
