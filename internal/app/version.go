package app

import (
	"fmt"

	"github.com/spf13/cobra"
)

const VersionCmdName = "version"

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   VersionCmdName,
		Short: "Print the chimera-format version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "chimera-format %s\n", Version)
		},
	}
}
