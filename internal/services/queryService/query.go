package queryservice

import (
	"fmt"
	"strings"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	"github.com/redjax/csvdash/internal/utils/strutils"
)

// GenerateQuery renders filters as a read-only pseudo-SQL statement. Columns
// appear in the order of uv.Columns; a single value renders as col = 'v',
// several as col IN ('v1', 'v2'). The text is for display only.
func GenerateQuery(table string, uv loaderservice.UniqueValues, filters ColumnFilters) string {
	var b strings.Builder
	b.WriteString("SELECT * FROM ")
	b.WriteString(table)

	var conditions []string
	for _, col := range uv.Columns {
		vals := filters.Selected(col)
		switch len(vals) {
		case 0:
			continue
		case 1:
			conditions = append(conditions, fmt.Sprintf("%s = '%s'", col, vals[0]))
		default:
			conditions = append(conditions, fmt.Sprintf("%s IN (%s)", col, strings.Join(strutils.Quote(vals), ", ")))
		}
	}

	if len(conditions) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conditions, " AND "))
	}
	b.WriteString(";")
	return b.String()
}
