package path

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := map[string]struct {
		input    string
		expected string
		wantErr  bool
	}{
		"empty":         {input: "", wantErr: true},
		"home":          {input: "~", expected: home},
		"home relative": {input: "~/csv", expected: filepath.Join(home, "csv")},
		"single char":   {input: ".", expected: "."},
		"plain":         {input: "data/./csv/", expected: filepath.Join("data", "csv")},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			got, err := ExpandPath(tc.input)
			if tc.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tc.expected, got)
		})
	}
}
