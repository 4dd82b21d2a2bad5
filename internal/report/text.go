// Package report renders configuration inspection results.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/chimera-tools/chimera-format/internal/formatconf"
)

// Reporter writes an inspection summary.
type Reporter interface {
	Write(w io.Writer, s *formatconf.Summary) error
}

// TextReporter implements Reporter for plain text output.
type TextReporter struct {
	UseColour bool
}

const (
	colReset     = "\033[0m"
	colRed       = "\033[31m"
	colGreen     = "\033[32m"
	colGrey      = "\033[90m"
	colWhite     = "\033[37m"
	colBoldWhite = "\033[1;37m"
)

// cs returns a string which will render with the given colour
// if colourisation is enabled.
func (tr *TextReporter) cs(c, s string) string {
	if !tr.UseColour {
		return s
	}
	return c + s + colReset
}

func (tr *TextReporter) Write(w io.Writer, s *formatconf.Summary) error {
	divider := strings.Repeat("-", 40)

	fmt.Fprintf(w, "%s\n", divider)
	fmt.Fprint(w, tr.cs(colBoldWhite, "CHIMERA FORMAT CONFIGURATION\n\n"))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Launcher:"), tr.cs(colWhite, s.LauncherDir))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Config:  "), tr.cs(colWhite, s.ConfigPath))
	fmt.Fprintf(w, "%s %s\n", tr.cs(colGrey, "Helper:  "), tr.cs(colWhite, s.HelperPath))
	fmt.Fprintf(w, "%s\n", divider)

	switch {
	case !s.Exists:
		fmt.Fprintf(w, "%s configuration file not found\n", tr.cs(colRed, "[MISSING]"))
		return nil
	case !s.Valid:
		fmt.Fprintf(w, "%s configuration is not well-formed JSON\n", tr.cs(colRed, "[INVALID]"))
		return nil
	}

	fmt.Fprintf(w, "%s well-formed JSON\n", tr.cs(colGreen, "[OK]"))
	for _, k := range s.Keys {
		fmt.Fprintf(w, "  %s %s\n", k.Name, tr.cs(colGrey, "("+k.Type+")"))
	}

	for _, q := range s.Queries {
		if !q.Found {
			fmt.Fprintf(w, "%s = %s\n", q.Path, tr.cs(colGrey, "<missing>"))
			continue
		}
		fmt.Fprintf(w, "%s = %s\n", q.Path, q.Value)
	}

	if s.SchemaPath != "" {
		fmt.Fprintf(w, "%s\n", divider)
		if s.SchemaErr != nil {
			fmt.Fprintf(w, "%s %s\n  %v\n", tr.cs(colRed, "[FAIL]"), s.SchemaPath, s.SchemaErr)
		} else {
			fmt.Fprintf(w, "%s %s\n", tr.cs(colGreen, "[PASS]"), s.SchemaPath)
		}
	}
	return nil
}
