package loaderservice

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input       string
		columns     []string
		rows        []Row
		expectedErr error
	}{
		"header only": {
			input:   "OrderID,Region\n",
			columns: []string{"OrderID", "Region"},
			rows:    []Row{},
		},
		"rows keep file order": {
			input:   "OrderID,Region\n10248,WA\n10249,OR\n",
			columns: []string{"OrderID", "Region"},
			rows: []Row{
				{"OrderID": "10248", "Region": "WA"},
				{"OrderID": "10249", "Region": "OR"},
			},
		},
		"short rows are padded, long rows truncated": {
			input:   "a,b,c\n1\n1,2,3,4\n",
			columns: []string{"a", "b", "c"},
			rows: []Row{
				{"a": "1", "b": "", "c": ""},
				{"a": "1", "b": "2", "c": "3"},
			},
		},
		"blank lines are skipped": {
			input:   "a,b\n\n1,2\n,\n",
			columns: []string{"a", "b"},
			rows:    []Row{{"a": "1", "b": "2"}},
		},
		"quoted values keep commas and spaces": {
			input:   "name,city\n\"Doe, Jane\", London \n",
			columns: []string{"name", "city"},
			rows:    []Row{{"name": "Doe, Jane", "city": " London "}},
		},
		"bom and header whitespace are stripped": {
			input:   "\ufeff id , name\n1,x\n",
			columns: []string{"id", "name"},
			rows:    []Row{{"id": "1", "name": "x"}},
		},
		"empty input": {
			input:       "",
			expectedErr: ErrEmptyHeader,
		},
		"blank column name": {
			input:       "a,,c\n1,2,3\n",
			expectedErr: ErrBlankColumn,
		},
		"duplicate column name": {
			input:       "a,b,a\n1,2,3\n",
			expectedErr: ErrDuplicateColumn,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			table, err := ParseCSV("orders", strings.NewReader(tc.input))

			if tc.expectedErr != nil {
				req.True(errors.Is(err, tc.expectedErr),
					"expected error %v to wrap %v", err, tc.expectedErr)
				return
			}

			req.NoError(err)
			req.Equal("orders", table.Name)
			req.Equal(tc.columns, table.Columns)
			req.Equal(tc.rows, table.Rows)
		})
	}
}

func TestBuildUniqueValues(t *testing.T) {
	req := require.New(t)

	table := &Table{
		Name:    "orders",
		Columns: []string{"Region", "ShipCity"},
		Rows: []Row{
			{"Region": "WA", "ShipCity": "Seattle"},
			{"Region": "OR", "ShipCity": "Portland"},
			{"Region": "WA", "ShipCity": "Kirkland"},
			{"Region": "", "ShipCity": "Seattle"},
		},
	}

	uv := BuildUniqueValues(table)
	req.Equal([]string{"Region", "ShipCity"}, uv.Columns)
	req.Equal([]string{"WA", "OR", ""}, uv.Get("Region"))
	req.Equal([]string{"Seattle", "Portland", "Kirkland"}, uv.Get("ShipCity"))
	req.True(uv.Has("Region"))
	req.False(uv.Has("Country"))

	empty := BuildUniqueValues(EmptyTable("orders"))
	req.Empty(empty.Columns)
	req.Empty(empty.Values)
	req.Empty(BuildUniqueValues(nil).Columns)
}
