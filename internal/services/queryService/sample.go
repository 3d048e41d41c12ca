package queryservice

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"

	"github.com/redjax/csvdash/internal/constants"
	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
)

// Only the single-equality form is accepted:
//
//	SELECT * FROM <table> WHERE <column> = '<value>';
var (
	sampleQueryRe = regexp.MustCompile(`(?i)^SELECT\s+\*\s+FROM\s+(\w+)\s+WHERE\s+(\w+)\s*=\s*'([^']+)';?$`)
	identRe       = regexp.MustCompile(`^\w+$`)
)

// SampleQuery is a parsed single-equality query.
type SampleQuery struct {
	Table  string
	Column string
	Value  string
}

func (q SampleQuery) String() string {
	return fmt.Sprintf("SELECT * FROM %s WHERE %s = '%s';", q.Table, q.Column, q.Value)
}

// ValidateQuery returns a user-facing error message, or "" if text is a
// well-formed sample query.
func ValidateQuery(text string) string {
	if _, err := ParseSampleQuery(text); err != nil {
		return err.Error()
	}
	return ""
}

// ParseSampleQuery extracts table, column and value from text. Keywords are
// case-insensitive and the trailing semicolon is optional.
func ParseSampleQuery(text string) (SampleQuery, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return SampleQuery{}, newQueryError(ErrEmptyQuery, msgEmptyQuery)
	}

	m := sampleQueryRe.FindStringSubmatch(trimmed)
	if len(m) != 4 {
		return SampleQuery{}, newQueryError(ErrInvalidQuery, msgInvalidQuery)
	}
	return SampleQuery{Table: m[1], Column: m[2], Value: m[3]}, nil
}

// RunSampleQuery parses text, checks it targets the selected table
// (case-insensitively) and returns the rows whose column value equals the
// query value exactly.
func RunSampleQuery(text, selectedTable string, rows []loaderservice.Row) ([]loaderservice.Row, error) {
	q, err := ParseSampleQuery(text)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(q.Table, selectedTable) {
		return nil, tableMismatch(q.Table, selectedTable)
	}

	out := make([]loaderservice.Row, 0)
	for _, row := range rows {
		if v, ok := row[q.Column]; ok && v == q.Value {
			out = append(out, row)
		}
	}
	return out, nil
}

// GenerateSampleQueries proposes up to constants.MaxSampleQueries queries,
// each on a random column that has more than one distinct value, using a
// random value of that column. Columns or values that could not round-trip
// through ParseSampleQuery are never offered.
func GenerateSampleQueries(table string, uv loaderservice.UniqueValues, rng *rand.Rand) []string {
	samples := []string{}
	if !identRe.MatchString(table) {
		return samples
	}

	type candidate struct {
		column string
		values []string
	}
	var candidates []candidate
	for _, col := range uv.Columns {
		all := uv.Get(col)
		if len(all) <= 1 || !identRe.MatchString(col) {
			continue
		}
		var usable []string
		for _, v := range all {
			if v != "" && !strings.ContainsAny(v, "'\r\n") {
				usable = append(usable, v)
			}
		}
		if len(usable) > 0 {
			candidates = append(candidates, candidate{column: col, values: usable})
		}
	}
	if len(candidates) == 0 {
		return samples
	}

	for i := 0; i < constants.MaxSampleQueries; i++ {
		c := candidates[rng.IntN(len(candidates))]
		v := c.values[rng.IntN(len(c.values))]
		samples = append(samples, SampleQuery{Table: table, Column: c.column, Value: v}.String())
	}
	return samples
}
