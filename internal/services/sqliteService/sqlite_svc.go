package sqliteservice

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
)

var ErrTableExists = errors.New("table already exists")

type SQLiteService struct {
	db *sql.DB
}

// NewSQLiteService opens the database file
func NewSQLiteService(dbPath string) (*SQLiteService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return &SQLiteService{db: db}, nil
}

// Close closes the DB
func (s *SQLiteService) Close() error {
	return s.db.Close()
}

// GetTables returns all table names
func (s *SQLiteService) GetTables() ([]string, error) {
	query := `SELECT name FROM sqlite_master WHERE type='table' ORDER BY name;`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// TableExists reports whether the database has a table with this exact name.
func (s *SQLiteService) TableExists(table string) (bool, error) {
	tables, err := s.GetTables()
	if err != nil {
		return false, fmt.Errorf("failed to list tables: %w", err)
	}
	for _, t := range tables {
		if t == table {
			return true, nil
		}
	}
	return false, nil
}

// DropTable drops a table by name
func (s *SQLiteService) DropTable(table string) error {
	if strings.TrimSpace(table) == "" {
		return fmt.Errorf("table name cannot be empty")
	}
	query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteIdent(table))
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to drop table %s: %w", table, err)
	}
	return nil
}

// ImportTable creates the table (all TEXT columns, header order) and inserts
// every row in one transaction. An existing table is never appended to; drop
// it first to re-import.
func (s *SQLiteService) ImportTable(ctx context.Context, t *loaderservice.Table) (int, error) {
	if t == nil || strings.TrimSpace(t.Name) == "" {
		return 0, fmt.Errorf("table name cannot be empty")
	}
	if len(t.Columns) == 0 {
		return 0, fmt.Errorf("table %s has no columns", t.Name)
	}

	exists, err := s.TableExists(t.Name)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, fmt.Errorf("%w: %s", ErrTableExists, t.Name)
	}

	var columnDefs []string
	for _, col := range t.Columns {
		columnDefs = append(columnDefs, fmt.Sprintf("%s TEXT", quoteIdent(col)))
	}
	placeholders := make([]string, len(t.Columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	createSQL := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(t.Name), strings.Join(columnDefs, ", "))
	insertSQL := fmt.Sprintf("INSERT INTO %s VALUES (%s)", quoteIdent(t.Name), strings.Join(placeholders, ", "))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, createSQL); err != nil {
		return 0, fmt.Errorf("failed to create table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, row := range t.Rows {
		values := make([]interface{}, len(t.Columns))
		for j, col := range t.Columns {
			values[j] = row[col]
		}
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			return 0, fmt.Errorf("failed to insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit import: %w", err)
	}
	log.Debug().Str("table", t.Name).Int("rows", len(t.Rows)).Msg("Imported table into SQLite")
	return len(t.Rows), nil
}

// ReadTable returns the columns and rows of a table in rowid order. NULLs
// read back as empty strings.
func (s *SQLiteService) ReadTable(ctx context.Context, table string) ([]string, [][]string, error) {
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY rowid", quoteIdent(table))
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}

	var records [][]string
	for rows.Next() {
		values := make([]sql.NullString, len(cols))
		pointers := make([]interface{}, len(cols))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, nil, err
		}
		record := make([]string, len(cols))
		for i, v := range values {
			record[i] = v.String
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, err
	}
	return cols, records, nil
}

// Source serves tables stored in a SQLite file to the CSV loader.
type Source struct {
	svc *SQLiteService
}

func NewSource(svc *SQLiteService) *Source {
	return &Source{svc: svc}
}

// Open renders the table as CSV text so it goes through the same parser as
// file and HTTP sources.
func (s *Source) Open(ctx context.Context, table string) (io.ReadCloser, error) {
	cols, records, err := s.svc.ReadTable(ctx, table)
	if err != nil {
		return nil, fmt.Errorf("failed to read table %s: %w", table, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(cols); err != nil {
		return nil, err
	}
	if err := w.WriteAll(records); err != nil {
		return nil, err
	}
	return io.NopCloser(&buf), nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
