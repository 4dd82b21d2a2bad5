package app

import (
	"github.com/spf13/cobra"

	"github.com/chimera-tools/chimera-format/internal/config"
	"github.com/chimera-tools/chimera-format/internal/formatconf"
	"github.com/chimera-tools/chimera-format/internal/report"
)

const InspectCmdName = "inspect"

func NewInspectCmd(st *state) *cobra.Command {
	var noColour, writeSettings bool
	var queries []string

	cmd := &cobra.Command{
		Use:   InspectCmdName,
		Short: "Show where the launcher looks for its configuration and helper",
		Args:  cobra.NoArgs,
		Example: `
  chimera-format inspect
  chimera-format inspect -o json
  chimera-format inspect --get style.ColumnLimit --get directories
  chimera-format inspect --schema ./clangformat.schema.json
  chimera-format inspect --write-settings`,
	}

	outputVal := formatValue("text")
	cmd.Flags().VarP(&outputVal, "output", "o", "Output format (text, json)")
	schemaVal := pathValue("")
	cmd.Flags().Var(&schemaVal, "schema", "Validate the configuration against this JSON Schema")
	cmd.Flags().StringArrayVar(&queries, "get", nil, "Print the value at a gjson path (repeatable)")
	cmd.Flags().BoolVarP(&noColour, "nocolour", "c", false, "Disable colour in output")
	cmd.Flags().BoolVar(&writeSettings, "write-settings", false,
		"Write a commented "+config.SettingsFile+" into the launcher directory and exit")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		if writeSettings {
			path, err := config.WriteDefault(st.dir)
			if err != nil {
				return err
			}
			cmd.Printf("Wrote default settings to %s\n", path)
			return nil
		}

		cfgPath, err := st.launcher.ConfigPath()
		if err != nil {
			return err
		}

		summary, err := formatconf.Inspect(cfgPath, string(schemaVal), queries)
		if err != nil {
			return err
		}
		summary.LauncherDir = st.dir
		summary.HelperPath = st.helperPath

		r := report.New(string(outputVal), !noColour)
		if err = r.Write(cmd.OutOrStdout(), summary); err != nil {
			return err
		}

		switch {
		case !summary.Exists:
			return &InspectFailedError{Path: cfgPath, Reason: "configuration file not found"}
		case !summary.Valid:
			return &InspectFailedError{Path: cfgPath, Reason: "configuration is not well-formed JSON"}
		case summary.SchemaErr != nil:
			return &InspectFailedError{Path: cfgPath, Reason: summary.SchemaErr.Error()}
		}
		return nil
	}

	return cmd
}
