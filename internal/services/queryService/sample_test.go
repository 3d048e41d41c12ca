package queryservice

import (
	"errors"
	"math/rand/v2"
	"testing"

	loaderservice "github.com/redjax/csvdash/internal/services/loaderService"
	"github.com/stretchr/testify/require"
)

func TestValidateQuery(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input    string
		expected string
	}{
		"empty":      {input: "", expected: msgEmptyQuery},
		"whitespace": {input: " \t\n ", expected: msgEmptyQuery},
		"valid":      {input: "SELECT * FROM orders WHERE Region = 'WA';", expected: ""},
		"valid without semicolon": {
			input:    "SELECT * FROM orders WHERE Region = 'WA'",
			expected: "",
		},
		"lower case keywords and padding": {
			input:    "  select   *  from orders where Region='WA';  ",
			expected: "",
		},
		"IN lists are not supported": {
			input:    "SELECT * FROM orders WHERE Region IN ('WA', 'OR');",
			expected: msgInvalidQuery,
		},
		"empty value": {
			input:    "SELECT * FROM orders WHERE Region = '';",
			expected: msgInvalidQuery,
		},
		"column list instead of star": {
			input:    "SELECT OrderID FROM orders WHERE Region = 'WA';",
			expected: msgInvalidQuery,
		},
		"missing where": {
			input:    "SELECT * FROM orders;",
			expected: msgInvalidQuery,
		},
		"trailing garbage": {
			input:    "SELECT * FROM orders WHERE Region = 'WA'; DROP TABLE orders;",
			expected: msgInvalidQuery,
		},
		"unquoted value": {
			input:    "SELECT * FROM orders WHERE Region = WA;",
			expected: msgInvalidQuery,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, ValidateQuery(tc.input))
		})
	}
}

func TestParseSampleQuery(t *testing.T) {
	req := require.New(t)

	q, err := ParseSampleQuery("select * FROM Orders where ShipCity = 'Bern  Mitte'")
	req.NoError(err)
	req.Equal(SampleQuery{Table: "Orders", Column: "ShipCity", Value: "Bern  Mitte"}, q)
	req.Equal("SELECT * FROM Orders WHERE ShipCity = 'Bern  Mitte';", q.String())

	_, err = ParseSampleQuery("")
	req.True(errors.Is(err, ErrEmptyQuery))

	_, err = ParseSampleQuery("SELECT *")
	req.True(errors.Is(err, ErrInvalidQuery))
	req.Equal(msgInvalidQuery, err.Error())
}

func TestRunSampleQuery(t *testing.T) {
	t.Parallel()
	rows := []loaderservice.Row{
		{"OrderID": "1", "Region": "WA"},
		{"OrderID": "2", "Region": "OR"},
		{"OrderID": "3", "Region": "WA"},
		{"OrderID": "4", "Region": "wa"},
	}

	tests := map[string]struct {
		query       string
		table       string
		expected    []string
		expectedErr error
		message     string
	}{
		"matches exact value": {
			query:    "SELECT * FROM orders WHERE Region = 'WA'",
			table:    "orders",
			expected: []string{"1", "3"},
		},
		"table name is case-insensitive": {
			query:    "SELECT * FROM ORDERS WHERE Region = 'OR';",
			table:    "orders",
			expected: []string{"2"},
		},
		"no matches": {
			query:    "SELECT * FROM orders WHERE Region = 'CA';",
			table:    "orders",
			expected: []string{},
		},
		"unknown column matches nothing": {
			query:    "SELECT * FROM orders WHERE Country = 'USA';",
			table:    "orders",
			expected: []string{},
		},
		"table mismatch": {
			query:       "SELECT * FROM orders WHERE Region = 'WA';",
			table:       "products",
			expectedErr: ErrTableMismatch,
			message:     "Table name in query (orders) does not match selected table (products).",
		},
		"empty": {
			query:       "   ",
			table:       "orders",
			expectedErr: ErrEmptyQuery,
			message:     msgEmptyQuery,
		},
		"malformed": {
			query:       "SELECT * FROM orders WHERE Region LIKE 'W%';",
			table:       "orders",
			expectedErr: ErrInvalidQuery,
			message:     msgInvalidQuery,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			req := require.New(t)
			got, err := RunSampleQuery(tc.query, tc.table, rows)
			if tc.expectedErr != nil {
				req.Nil(got)
				req.True(errors.Is(err, tc.expectedErr),
					"expected error %v to wrap %v", err, tc.expectedErr)
				req.Equal(tc.message, err.Error())
				return
			}
			req.NoError(err)
			req.Equal(tc.expected, ids(got))
		})
	}
}

func TestGenerateSampleQueries(t *testing.T) {
	req := require.New(t)
	rng := rand.New(rand.NewPCG(1, 2))

	table := &loaderservice.Table{
		Name:    "orders",
		Columns: []string{"OrderID", "Region", "Ship City", "Constant", "Note"},
		Rows: []loaderservice.Row{
			{"OrderID": "1", "Region": "WA", "Ship City": "Seattle", "Constant": "x", "Note": "it's"},
			{"OrderID": "2", "Region": "OR", "Ship City": "Portland", "Constant": "x", "Note": ""},
			{"OrderID": "3", "Region": "WA", "Ship City": "Seattle", "Constant": "x", "Note": "ok"},
		},
	}
	uv := loaderservice.BuildUniqueValues(table)

	samples := GenerateSampleQueries("orders", uv, rng)
	req.Len(samples, 4)
	for _, s := range samples {
		req.Empty(ValidateQuery(s), s)
		q, err := ParseSampleQuery(s)
		req.NoError(err)
		req.Equal("orders", q.Table)
		// single valued and non-identifier columns are never picked
		req.Contains([]string{"OrderID", "Region", "Note"}, q.Column)
		req.Contains(uv.Get(q.Column), q.Value)

		rows, err := RunSampleQuery(s, "orders", table.Rows)
		req.NoError(err)
		req.NotEmpty(rows)
	}

	// nothing to pick from
	single := loaderservice.BuildUniqueValues(&loaderservice.Table{
		Name:    "categories",
		Columns: []string{"CategoryName"},
		Rows:    []loaderservice.Row{{"CategoryName": "Beverages"}},
	})
	req.Empty(GenerateSampleQueries("categories", single, rng))
	req.Empty(GenerateSampleQueries("orders", loaderservice.UniqueValues{}, rng))
}
