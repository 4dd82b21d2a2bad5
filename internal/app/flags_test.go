package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "json", want: "json"},
		{in: "text", want: "text"},
		{in: "yaml", want: "text", wantErr: true},
		{in: "", want: "text", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			f := formatValue("text")
			assert.Equal(t, "<format>", f.Type())

			err := f.Set(tt.in)
			if tt.wantErr {
				require.EqualError(t, err, "must be 'text' or 'json'")
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, f.String())
		})
	}
}

func TestPathValue(t *testing.T) {
	t.Parallel()

	p := pathValue("")
	assert.Empty(t, p.String())
	assert.Equal(t, "<path>", p.Type())
	require.NoError(t, p.Set("./clangformat.schema.json"))
	assert.Equal(t, "./clangformat.schema.json", p.String())
}
