package loaderservice

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrEmptyHeader     = errors.New("csv header is empty")
	ErrBlankColumn     = errors.New("csv header contains a blank column name")
	ErrDuplicateColumn = errors.New("csv header contains a duplicate column name")
)

// ParseCSV reads a header row followed by records. Header fields become
// column names; short records are padded with empty strings and extra
// fields are dropped so every row has exactly the header's columns.
func ParseCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	columns, err := validateHeader(header)
	if err != nil {
		return nil, err
	}

	table := &Table{Name: name, Columns: columns, Rows: []Row{}}
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record %d: %w", line, err)
		}
		if isBlankRecord(record) {
			continue
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

func validateHeader(header []string) ([]string, error) {
	// strip a UTF-8 BOM left by spreadsheet exports
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	if isBlankRecord(header) {
		return nil, ErrEmptyHeader
	}

	columns := make([]string, 0, len(header))
	seen := make(map[string]bool, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			return nil, fmt.Errorf("%w: position %d", ErrBlankColumn, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateColumn, name)
		}
		seen[name] = true
		columns = append(columns, name)
	}
	return columns, nil
}

func isBlankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
