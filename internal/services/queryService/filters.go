package queryservice

import (
	"fmt"
	"sort"
	"strings"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
)

// ColumnFilters maps a column to the values a row may hold in it. Values keep
// the order they were selected in; an absent or empty list means the column
// is unrestricted.
type ColumnFilters map[string][]string

// Badge is one selected (column, value) pair as displayed under the query.
type Badge struct {
	Column string
	Value  string
}

func (b Badge) String() string {
	return fmt.Sprintf("%s: %s", b.Column, b.Value)
}

// ApplyColumnFilters keeps the rows whose value in every restricted column is
// one of that column's selected values. Row order is preserved.
func ApplyColumnFilters(rows []loaderservice.Row, filters ColumnFilters) []loaderservice.Row {
	out := make([]loaderservice.Row, 0, len(rows))
	if len(rows) == 0 {
		return out
	}

	active := filters.active()
	if len(active) == 0 {
		return append(out, rows...)
	}

	for _, row := range rows {
		if matchesAll(row, active) {
			out = append(out, row)
		}
	}
	return out
}

func matchesAll(row loaderservice.Row, active map[string]map[string]struct{}) bool {
	for col, allowed := range active {
		v, ok := row[col]
		if !ok {
			return false
		}
		if _, ok := allowed[v]; !ok {
			return false
		}
	}
	return true
}

// active builds membership sets for the restricted columns only.
func (f ColumnFilters) active() map[string]map[string]struct{} {
	active := make(map[string]map[string]struct{}, len(f))
	for col, vals := range f {
		if len(vals) == 0 {
			continue
		}
		set := make(map[string]struct{}, len(vals))
		for _, v := range vals {
			set[v] = struct{}{}
		}
		active[col] = set
	}
	return active
}

// Selected returns the values chosen for col in selection order.
func (f ColumnFilters) Selected(col string) []string {
	return f[col]
}

// Has reports whether value is selected for col.
func (f ColumnFilters) Has(col, value string) bool {
	for _, v := range f[col] {
		if v == value {
			return true
		}
	}
	return false
}

// IsEmpty reports whether no column is restricted.
func (f ColumnFilters) IsEmpty() bool {
	for _, vals := range f {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers can derive new filter states without
// touching the old one.
func (f ColumnFilters) Clone() ColumnFilters {
	out := make(ColumnFilters, len(f))
	for col, vals := range f {
		out[col] = append([]string(nil), vals...)
	}
	return out
}

// Toggle adds value to col's selection, or removes it if already selected.
func (f ColumnFilters) Toggle(col, value string) ColumnFilters {
	if f.Has(col, value) {
		return f.Remove(col, value)
	}
	out := f.Clone()
	out[col] = append(out[col], value)
	return out
}

// Remove drops value from col's selection.
func (f ColumnFilters) Remove(col, value string) ColumnFilters {
	out := f.Clone()
	kept := out[col][:0]
	for _, v := range out[col] {
		if v != value {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		delete(out, col)
		return out
	}
	out[col] = kept
	return out
}

// Badges lists every selected value, columns in the given order followed by
// any remaining columns in sorted order.
func (f ColumnFilters) Badges(order []string) []Badge {
	var badges []Badge
	for _, col := range f.columnOrder(order) {
		for _, v := range f[col] {
			badges = append(badges, Badge{Column: col, Value: v})
		}
	}
	return badges
}

func (f ColumnFilters) columnOrder(order []string) []string {
	cols := make([]string, 0, len(f))
	seen := make(map[string]bool, len(f))
	for _, col := range order {
		if _, ok := f[col]; ok && !seen[col] {
			seen[col] = true
			cols = append(cols, col)
		}
	}
	var rest []string
	for col := range f {
		if !seen[col] {
			rest = append(rest, col)
		}
	}
	sort.Strings(rest)
	return append(cols, rest...)
}

// ParseFilterFlag parses the CLI form "column=v1,v2" into a column and its
// values. Values are taken verbatim, so a value cannot itself contain a comma.
func ParseFilterFlag(s string) (string, []string, error) {
	col, raw, ok := strings.Cut(s, "=")
	col = strings.TrimSpace(col)
	if !ok || col == "" {
		return "", nil, fmt.Errorf("%w: expected column=value[,value...], got %q", ErrInvalidFilter, s)
	}
	if raw == "" {
		return "", nil, fmt.Errorf("%w: no values for column %q", ErrInvalidFilter, col)
	}
	return col, strings.Split(raw, ","), nil
}

// BuildFilters turns repeated --filter flags into ColumnFilters, rejecting
// columns the table does not have.
func BuildFilters(flags []string, uv loaderservice.UniqueValues) (ColumnFilters, error) {
	filters := ColumnFilters{}
	for _, fl := range flags {
		col, vals, err := ParseFilterFlag(fl)
		if err != nil {
			return nil, err
		}
		if !uv.Has(col) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, col)
		}
		for _, v := range vals {
			if !filters.Has(col, v) {
				filters[col] = append(filters[col], v)
			}
		}
	}
	return filters, nil
}
