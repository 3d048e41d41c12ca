package version

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelfCommand(t *testing.T) {
	tests := map[string]struct {
		args []string
		want []string
	}{
		"version": {
			args: []string{"version"},
			want: []string{"package: csvdash", "version:dev"},
		},
		"info": {
			args: []string{"info"},
			want: []string{"Program: csvdash", "Repository URL: https://github.com/redjax/csvdash", "Platform: "},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			cmd := NewSelfCommand()
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetArgs(tc.args)

			req.NoError(cmd.Execute())
			for _, w := range tc.want {
				req.Contains(out.String(), w)
			}
		})
	}
}
