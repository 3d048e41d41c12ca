package querycommand

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	queryservice "github.com/redjax/csvdash/internal/services/queryService"
)

const ordersCSV = `id,customer,status
1,alice,shipped
2,bob,pending
3,carol,shipped
4,alice,cancelled
`

// withSource points the config at a temp dir holding orders.csv.
func withSource(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "orders.csv"), []byte(ordersCSV), 0o644))
	t.Setenv("CSVDASH_SOURCE_DIR", dir)
}

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQueryCmd(t *testing.T) {
	tests := map[string]struct {
		args    []string
		want    []string
		wantErr string
	}{
		"all rows": {
			args: []string{"--table", "orders"},
			want: []string{"SELECT * FROM orders;", "Page 1 of 1 (4 rows)", "carol"},
		},
		"filter": {
			args: []string{"--table", "orders", "--filter", "status=shipped"},
			want: []string{"SELECT * FROM orders WHERE status = 'shipped';", "Page 1 of 1 (2 rows)"},
		},
		"multi value filter": {
			args: []string{"-t", "orders", "-f", "customer=alice,bob", "-f", "status=shipped"},
			want: []string{"WHERE customer IN ('alice', 'bob') AND status = 'shipped';", "(1 rows)"},
		},
		"paging": {
			args: []string{"--table", "orders", "--page-size", "5", "--page", "9"},
			want: []string{"Page 1 of 1"},
		},
		"sample": {
			args: []string{"--table", "orders", "--sample", "SELECT * FROM orders WHERE customer = 'alice';"},
			want: []string{"(2 rows)"},
		},
		"no matches": {
			args: []string{"--table", "orders", "--sample", "SELECT * FROM orders WHERE customer = 'zed';"},
			want: []string{"No data available."},
		},
		"sample table mismatch": {
			args:    []string{"--table", "orders", "--sample", "SELECT * FROM products WHERE id = '1';"},
			wantErr: "Table name in query (products) does not match selected table (orders).",
		},
		"invalid sample": {
			args:    []string{"--table", "orders", "--sample", "DELETE FROM orders"},
			wantErr: "Invalid query format.",
		},
		"unknown filter column": {
			args:    []string{"--table", "orders", "--filter", "nope=1"},
			wantErr: "nope",
		},
		"unknown table": {
			args:    []string{"--table", "planets"},
			wantErr: "unknown table",
		},
		"filter and sample": {
			args:    []string{"--table", "orders", "--filter", "status=shipped", "--sample", "x"},
			wantErr: "none of the others can be",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			withSource(t)

			out, err := execute(t, NewQueryCmd(), tc.args...)
			if tc.wantErr != "" {
				req.Error(err)
				req.Contains(err.Error(), tc.wantErr)
				return
			}
			req.NoError(err)
			for _, w := range tc.want {
				req.Contains(out, w)
			}
		})
	}
}

func TestExportCmd(t *testing.T) {
	req := require.New(t)
	withSource(t)
	outDir := t.TempDir()

	out, err := execute(t, NewExportCmd(), "--table", "orders", "--filter", "status=shipped", "--out", outDir)
	req.NoError(err)
	req.Contains(out, "Exported 2 rows")

	data, err := os.ReadFile(filepath.Join(outDir, "orders_results.pdf"))
	req.NoError(err)
	req.True(bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestSamplesCmd(t *testing.T) {
	req := require.New(t)
	withSource(t)

	first, err := execute(t, NewSamplesCmd(), "--table", "orders", "--seed", "7")
	req.NoError(err)
	second, err := execute(t, NewSamplesCmd(), "--table", "orders", "--seed", "7")
	req.NoError(err)
	req.Equal(first, second)

	lines := strings.Split(strings.TrimSpace(first), "\n")
	req.Len(lines, 4)
	for _, l := range lines {
		req.Empty(queryservice.ValidateQuery(l), l)
	}
}

func TestColumnsCmd(t *testing.T) {
	req := require.New(t)
	withSource(t)

	out, err := execute(t, NewColumnsCmd(), "--table", "orders")
	req.NoError(err)
	for _, w := range []string{"customer", "status", "alice, bob, carol", "shipped, pending, cancelled"} {
		req.Contains(out, w)
	}
}
