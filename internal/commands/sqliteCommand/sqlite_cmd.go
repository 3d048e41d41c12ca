package sqliteCommand

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	sqliteservice "github.com/redjax/csvdash/internal/services/sqliteService"
	"github.com/redjax/csvdash/internal/utils/path"
)

// NewImportCmd loads a CSV file into a SQLite table that `--source sqlite`
// can then serve to the dashboard.
func NewImportCmd() *cobra.Command {
	var (
		importDbPath    string
		importCsvPath   string
		importTableName string
		replace         bool
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import CSV data into a SQLite database",
		Long: `Import a CSV file into a SQLite table. Every column is stored as TEXT.
An existing table is left untouched unless --replace is given.

Serve the result with:
  csvdash --source sqlite --source-db FILE open`,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDbPath, err := path.ExpandPath(importDbPath)
			if err != nil {
				return err
			}
			absCsvPath, err := path.ExpandPath(importCsvPath)
			if err != nil {
				return err
			}
			if absDbPath, err = filepath.Abs(absDbPath); err != nil {
				return err
			}
			if importTableName == "" {
				importTableName = tableNameFromFile(absCsvPath)
			}

			n, err := performCSVImport(cmd, absDbPath, absCsvPath, importTableName, replace)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✅ Successfully imported %d rows into table %s\n", n, importTableName)
			fmt.Fprintf(out, "You can explore with: csvdash --source sqlite --source-db %s --tables %s open\n", absDbPath, importTableName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&importDbPath, "db", "d", "", "Path to SQLite database file")
	cmd.Flags().StringVarP(&importCsvPath, "csv", "c", "", "Path to CSV file to import")
	cmd.Flags().StringVarP(&importTableName, "table", "t", "", "Name of table to import data into (default: CSV file name)")
	cmd.Flags().BoolVar(&replace, "replace", false, "Drop and recreate the table if it already exists")
	cmd.MarkFlagRequired("db")
	cmd.MarkFlagRequired("csv")

	return cmd
}

func tableNameFromFile(p string) string {
	base := filepath.Base(p)
	return base[:len(base)-len(filepath.Ext(base))]
}

func performCSVImport(cmd *cobra.Command, dbPath, csvPath, tableName string, replace bool) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	table, err := loaderservice.ParseCSV(tableName, file)
	if err != nil {
		return 0, fmt.Errorf("failed to read CSV file: %w", err)
	}

	svc, err := sqliteservice.NewSQLiteService(dbPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open/create database: %w", err)
	}
	defer svc.Close()

	if replace {
		if err := svc.DropTable(tableName); err != nil {
			return 0, err
		}
	}

	n, err := svc.ImportTable(cmd.Context(), table)
	if errors.Is(err, sqliteservice.ErrTableExists) {
		return 0, fmt.Errorf("%w in %s; pass --replace to overwrite it", err, dbPath)
	}
	return n, err
}
