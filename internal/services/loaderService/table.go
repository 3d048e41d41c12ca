package loaderservice

// Row is one CSV record keyed by column name. CSV cells are untyped text, so
// every value is kept as a string.
type Row map[string]string

// Table is a named, ordered set of rows sharing the same columns.
type Table struct {
	Name    string
	Columns []string
	Rows    []Row
}

// EmptyTable is what a failed load degrades to.
func EmptyTable(name string) *Table {
	return &Table{Name: name, Columns: []string{}, Rows: []Row{}}
}

// Len returns the number of rows, treating a nil table as empty.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// UniqueValues holds the distinct values seen per column. Columns keeps the
// header order; each value list keeps first-seen order.
type UniqueValues struct {
	Columns []string
	Values  map[string][]string
}

// BuildUniqueValues derives the distinct values of every column of t.
func BuildUniqueValues(t *Table) UniqueValues {
	uv := UniqueValues{Columns: []string{}, Values: map[string][]string{}}
	if t.Len() == 0 {
		return uv
	}

	uv.Columns = append(uv.Columns, t.Columns...)
	for _, col := range t.Columns {
		seen := make(map[string]struct{})
		vals := []string{}
		for _, row := range t.Rows {
			v := row[col]
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			vals = append(vals, v)
		}
		uv.Values[col] = vals
	}
	return uv
}

// Get returns the distinct values of col, or nil for an unknown column.
func (uv UniqueValues) Get(col string) []string {
	return uv.Values[col]
}

// Has reports whether col is a known column.
func (uv UniqueValues) Has(col string) bool {
	_, ok := uv.Values[col]
	return ok
}
