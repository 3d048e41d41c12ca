package sqliteservice

import (
	"context"
	"path/filepath"
	"testing"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *SQLiteService {
	t.Helper()
	svc, err := NewSQLiteService(filepath.Join(t.TempDir(), "northwind.db"))
	require.NoError(t, err)
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestImportAndRead(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newTestService(t)

	table := &loaderservice.Table{
		Name:    "orders",
		Columns: []string{"OrderID", "Ship City"},
		Rows: []loaderservice.Row{
			{"OrderID": "10248", "Ship City": "Reims"},
			{"OrderID": "10249", "Ship City": "Münster"},
			{"OrderID": "10250"},
		},
	}

	n, err := svc.ImportTable(ctx, table)
	req.NoError(err)
	req.Equal(3, n)

	tables, err := svc.GetTables()
	req.NoError(err)
	req.Equal([]string{"orders"}, tables)

	cols, records, err := svc.ReadTable(ctx, "orders")
	req.NoError(err)
	req.Equal([]string{"OrderID", "Ship City"}, cols)
	req.Equal([][]string{{"10248", "Reims"}, {"10249", "Münster"}, {"10250", ""}}, records)

	// the loader sees the same table through the Source adapter
	loader := loaderservice.NewLoader(NewSource(svc), []string{"orders", "products"})
	res := loader.Load(ctx, "orders")
	req.NoError(res.Err)
	req.Equal(table.Columns, res.Table.Columns)
	req.Equal("Münster", res.Table.Rows[1]["Ship City"])

	res = loader.Load(ctx, "products")
	req.Error(res.Err)

	req.NoError(svc.DropTable("orders"))
	tables, err = svc.GetTables()
	req.NoError(err)
	req.Empty(tables)
}

func TestSource_OpenMissingTable(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t)

	rc, err := NewSource(svc).Open(context.Background(), "customers")
	req.Error(err)
	req.Nil(rc)
}

func TestImportTable_Errors(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.ImportTable(ctx, nil)
	req.Error(err)
	_, err = svc.ImportTable(ctx, &loaderservice.Table{Name: "empty"})
	req.Error(err)
	req.Error(svc.DropTable(" "))
}

func TestImportTable_Existing(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t)
	ctx := context.Background()

	first := &loaderservice.Table{Name: "orders", Columns: []string{"OrderID"}, Rows: []loaderservice.Row{{"OrderID": "1"}}}
	_, err := svc.ImportTable(ctx, first)
	req.NoError(err)

	exists, err := svc.TableExists("orders")
	req.NoError(err)
	req.True(exists)

	// a second import must not append, even with a different header
	second := &loaderservice.Table{Name: "orders", Columns: []string{"Other"}, Rows: []loaderservice.Row{{"Other": "x"}}}
	_, err = svc.ImportTable(ctx, second)
	req.ErrorIs(err, ErrTableExists)

	_, records, err := svc.ReadTable(ctx, "orders")
	req.NoError(err)
	req.Equal([][]string{{"1"}}, records)
}

