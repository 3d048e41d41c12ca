package sqliteCommand

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sqliteservice "github.com/redjax/csvdash/internal/services/sqliteService"
)

func runImport(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewImportCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImportCmd(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "orders.csv")
	dbPath := filepath.Join(dir, "tables.db")
	req.NoError(os.WriteFile(csvPath, []byte("id,status\n1,shipped\n2,pending\n"), 0o644))

	out, err := runImport(t, "--db", dbPath, "--csv", csvPath)
	req.NoError(err)
	req.Contains(out, "imported 2 rows into table orders")

	// importing again without --replace is refused and leaves the table alone
	_, err = runImport(t, "--db", dbPath, "--csv", csvPath)
	req.ErrorIs(err, sqliteservice.ErrTableExists)
	req.ErrorContains(err, "--replace")
	req.Equal(2, countRows(t, dbPath, "orders"))

	_, err = runImport(t, "--db", dbPath, "--csv", csvPath, "--replace")
	req.NoError(err)
	req.Equal(2, countRows(t, dbPath, "orders"))
}

func TestImportCmd_Errors(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()

	_, err := runImport(t, "--db", filepath.Join(dir, "x.db"))
	req.Error(err)

	_, err = runImport(t, "--db", filepath.Join(dir, "x.db"), "--csv", filepath.Join(dir, "missing.csv"))
	req.ErrorContains(err, "failed to open CSV file")
}

func countRows(t *testing.T, dbPath, table string) int {
	t.Helper()
	svc, err := sqliteservice.NewSQLiteService(dbPath)
	require.NoError(t, err)
	defer svc.Close()

	_, rows, err := svc.ReadTable(context.Background(), table)
	require.NoError(t, err)
	return len(rows)
}
