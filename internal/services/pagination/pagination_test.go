package pagination

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestTotalPages(t *testing.T) {
	tests := map[string]struct {
		n, size  int
		expected int
	}{
		"no rows":         {n: 0, size: 10, expected: 0},
		"exact fit":       {n: 20, size: 10, expected: 2},
		"partial page":    {n: 25, size: 10, expected: 3},
		"single row":      {n: 1, size: 50, expected: 1},
		"zero size guard": {n: 10, size: 0, expected: 0},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, tc.expected, TotalPages(tc.n, tc.size))
		})
	}
}

func TestClampPage(t *testing.T) {
	req := require.New(t)
	req.Equal(1, ClampPage(0, 3))
	req.Equal(1, ClampPage(-4, 3))
	req.Equal(2, ClampPage(2, 3))
	req.Equal(3, ClampPage(4, 3))
	req.Equal(1, ClampPage(5, 0))
}

func TestSlice(t *testing.T) {
	req := require.New(t)
	rows := seq(25)

	req.Equal(seq(10), Slice(rows, 1, 10))
	req.Equal([]int{21, 22, 23, 24, 25}, Slice(rows, 3, 10))
	// page 4 clamps to 3
	req.Equal([]int{21, 22, 23, 24, 25}, Slice(rows, 4, 10))
	req.Len(Slice(rows, 3, 10), 5)
	req.Empty(Slice([]int{}, 1, 10))
	req.NotNil(Slice[int](nil, 1, 10))
}

func TestPager(t *testing.T) {
	req := require.New(t)

	p := New(10)
	req.Equal(Pager{Page: 1, Size: 10}, p)
	req.Equal(3, p.TotalPages(25))
	req.False(p.HasPrev())
	req.True(p.HasNext(25))

	p = p.Next(25).Next(25)
	req.Equal(3, p.Page)
	req.False(p.HasNext(25))

	// cannot go beyond the last page
	p = p.Next(25)
	req.Equal(3, p.Page)
	p = p.Goto(4, 25)
	req.Equal(3, p.Page)

	p = p.Prev()
	req.Equal(2, p.Page)
	req.True(p.HasPrev())

	// size change resets to page 1
	p = p.SetSize(5)
	req.Equal(Pager{Page: 1, Size: 5}, p)

	// unsupported sizes are ignored
	req.Equal(p, p.SetSize(7))
	req.Equal(Pager{Page: 1, Size: 10}, New(7))

	p = p.Next(25).Reset()
	req.Equal(1, p.Page)

	// empty set still reports page 1
	req.Equal(1, New(10).Next(0).Page)
	req.Equal(1, New(10).Prev().Page)
}

func TestPager_CycleSize(t *testing.T) {
	req := require.New(t)

	p := New(5)
	var sizes []int
	for i := 0; i < 5; i++ {
		p = p.Next(100).CycleSize()
		req.Equal(1, p.Page)
		sizes = append(sizes, p.Size)
	}
	req.Equal([]int{10, 20, 50, 5, 10}, sizes)
}
