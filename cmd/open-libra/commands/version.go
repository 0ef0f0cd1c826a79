package commands

import (
	"fmt"

	"github.com/open-libra/open-libra/src/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd produces a VersionCmd which displays the version of
// open-libra being used
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		},
	}
}
