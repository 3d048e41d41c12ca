package loaderservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

var ErrUnknownTable = errors.New("unknown table")

// LoadResult is what the dashboard receives once a load finishes. A failed
// load still carries an empty Table so callers never see nil.
type LoadResult struct {
	Table  *Table
	Unique UniqueValues
	Err    error
}

// Loader resolves table names against the configured set and parses their
// CSV from a Source.
type Loader struct {
	source Source
	tables []string
}

func NewLoader(source Source, tables []string) *Loader {
	return &Loader{source: source, tables: tables}
}

// Tables returns the selectable table names in display order.
func (l *Loader) Tables() []string {
	return l.tables
}

// IsKnownTable reports whether name is one of the configured tables.
func (l *Loader) IsKnownTable(name string) bool {
	for _, t := range l.tables {
		if t == name {
			return true
		}
	}
	return false
}

// Load fetches and parses one table. Failures are logged and degrade to an
// empty table; the error is still returned in the result for callers that
// want to show it.
func (l *Loader) Load(ctx context.Context, table string) LoadResult {
	start := time.Now()

	t, err := l.load(ctx, table)
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("Error loading CSV")
		empty := EmptyTable(table)
		return LoadResult{Table: empty, Unique: BuildUniqueValues(empty), Err: err}
	}

	log.Debug().
		Str("table", table).
		Int("rows", t.Len()).
		Int("columns", len(t.Columns)).
		Dur("took", time.Since(start)).
		Msg("Loaded CSV")
	return LoadResult{Table: t, Unique: BuildUniqueValues(t)}
}

func (l *Loader) load(ctx context.Context, table string) (*Table, error) {
	if strings.TrimSpace(table) == "" || !l.IsKnownTable(table) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}

	rc, err := l.source.Open(ctx, table)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	t, err := ParseCSV(table, rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", table, err)
	}
	return t, nil
}
