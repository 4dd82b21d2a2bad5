package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chimera-tools/chimera-format/internal/formatconf"
)

func sampleSummary() *formatconf.Summary {
	return &formatconf.Summary{
		LauncherDir: "/opt/chimera/tools",
		ConfigPath:  "/opt/chimera/tools/chimera_clangformat.json",
		HelperPath:  "/opt/chimera/tools/CommonTools/run_clangformat",
		Exists:      true,
		Valid:       true,
		IsObject:    true,
		Keys: []formatconf.Key{
			{Name: "directories", Type: "array"},
			{Name: "style", Type: "object"},
		},
		Queries: []formatconf.Query{
			{Path: "style.ColumnLimit", Found: true, Value: "140", Type: "number", Parsed: float64(140)},
			{Path: "nope", Type: "missing"},
		},
		SchemaPath: "/tmp/schema.json",
		SchemaErr:  assert.AnError,
	}
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	t.Run("full summary", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, (&TextReporter{}).Write(&buf, sampleSummary()))

		out := buf.String()
		assert.Contains(t, out, "CHIMERA FORMAT CONFIGURATION")
		assert.Contains(t, out, "Config:   /opt/chimera/tools/chimera_clangformat.json")
		assert.Contains(t, out, "[OK] well-formed JSON")
		assert.Contains(t, out, "  directories (array)")
		assert.Contains(t, out, "style.ColumnLimit = 140")
		assert.Contains(t, out, "nope = <missing>")
		assert.Contains(t, out, "[FAIL] /tmp/schema.json")
		assert.NotContains(t, out, "\033[")
	})

	t.Run("missing config", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, (&TextReporter{}).Write(&buf, &formatconf.Summary{ConfigPath: "/x"}))
		assert.Contains(t, buf.String(), "[MISSING] configuration file not found")
	})

	t.Run("invalid config", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, (&TextReporter{}).Write(&buf, &formatconf.Summary{Exists: true}))
		assert.Contains(t, buf.String(), "[INVALID]")
	})

	t.Run("schema pass with colour", func(t *testing.T) {
		t.Parallel()
		s := sampleSummary()
		s.SchemaErr = nil
		var buf bytes.Buffer
		require.NoError(t, (&TextReporter{UseColour: true}).Write(&buf, s))
		assert.Contains(t, buf.String(), colGreen+"[PASS]"+colReset)
	})
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, (&JSONReporter{}).Write(&buf, sampleSummary()))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "/opt/chimera/tools/chimera_clangformat.json", out["configPath"])
	assert.Equal(t, true, out["valid"])
	assert.Len(t, out["keys"], 2)

	queries, ok := out["queries"].([]any)
	require.True(t, ok)
	first, _ := queries[0].(map[string]any)
	assert.InDelta(t, 140.0, first["value"], 0)

	sch, _ := out["schema"].(map[string]any)
	assert.Equal(t, false, sch["valid"])
	assert.Equal(t, assert.AnError.Error(), sch["error"])
}

func TestNew(t *testing.T) {
	t.Parallel()
	assert.IsType(t, &JSONReporter{}, New("json", true))
	assert.IsType(t, &TextReporter{}, New("text", true))
}
