package app

import (
	"slices"

	"github.com/spf13/cobra"

	"github.com/chimera-tools/chimera-format/internal/launcher"
)

// Version is the current version of chimera-format, set at build time.
var Version = "dev"

var LongDescription = `
chimera-format runs the clang-format helper over the Chimera sources using the
` + launcher.ConfigFileName + ` configuration that ships next to it.

Every argument is handed to the helper untouched, followed by
"` + launcher.FlagToken + ` <path to ` + launcher.ConfigFileName + `>". The process exits with the helper's status.

The words inspect, watch, version and help select a subcommand when they come first.
`

// subcommandNames are the first arguments that select a subcommand. Anything
// else, including a reserved word appearing later on the command line, is a
// launch.
var subcommandNames = []string{InspectCmdName, WatchCmdName, VersionCmdName, "help"}

// IsSubcommand reports whether args (without the program name) select a
// subcommand rather than a launch.
func IsSubcommand(args []string) bool {
	return len(args) > 0 && slices.Contains(subcommandNames, args[0])
}

// NewRootCmd creates the root command and wires up dependencies.
func NewRootCmd(st *state) *cobra.Command {
	rootCmd := NewLaunchCmd(st)

	rootCmd.AddCommand(NewInspectCmd(st))
	rootCmd.AddCommand(NewWatchCmd(st))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewLaunchCmd creates the root command without subcommands. Cobra looks for
// subcommand names anywhere among the leading arguments, so launches run on a
// tree where there is nothing to find.
func NewLaunchCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:                "chimera-format [args...]",
		Short:              "Format the Chimera sources with clang-format",
		Long:               LongDescription,
		SilenceErrors:      true,
		SilenceUsage:       true,
		DisableFlagParsing: true,
		Args:               cobra.ArbitraryArgs,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for help and version commands
			if cmd.Name() == "help" || cmd.Name() == VersionCmdName {
				return nil
			}
			return st.init()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := st.launcher.Run(cmd.Context(), args)
			if err != nil {
				return err
			}
			if code != 0 {
				return &ExitCodeError{Code: code}
			}
			return nil
		},
	}
}
