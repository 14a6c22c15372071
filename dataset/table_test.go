package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV(t *testing.T) {
	in := "3,0.5, 1.5\n1,-2,4e-1\n\n2,7,8\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 1, 2}, tbl.Keys)
	assert.Equal(t, [][]float64{{0.5, 1.5}, {-2, 0.4}, {7, 8}}, tbl.Rows)
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, 2, tbl.Dim())
	assert.Equal(t, 2, tbl.IndexOf(2))
	assert.Equal(t, -1, tbl.IndexOf(9))
}

func TestReadCSV_Empty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.Equal(t, 0, tbl.Dim())
}

func TestReadCSV_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		msg  string
	}{
		{"ragged", "1,2,3\n2,3\n", "wrong number of fields"},
		{"bad key", "x,1\n", "line 1: key"},
		{"bad value", "1,2\n2,abc\n", "line 2, column 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.in))
			require.ErrorIs(t, err, ErrMalformed)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestJoin(t *testing.T) {
	a := &Table{
		Keys: []float64{3, 1, 2, 5},
		Rows: [][]float64{{30}, {10}, {20}, {50}},
	}
	b := &Table{
		Keys: []float64{1, 2, 3, 4},
		Rows: [][]float64{{1.1, 1.2}, {2.1, 2.2}, {3.1, 3.2}, {4.1, 4.2}},
	}

	got := Join(a, b)

	assert.Equal(t, []float64{1, 2, 3}, got.Keys)
	assert.Equal(t, [][]float64{
		{10, 1.1, 1.2},
		{20, 2.1, 2.2},
		{30, 3.1, 3.2},
	}, got.Rows)
	assert.Equal(t, 3, got.Dim())
}

func TestJoin_DuplicateKeys(t *testing.T) {
	a := &Table{Keys: []float64{1, 1}, Rows: [][]float64{{1}, {2}}}
	b := &Table{Keys: []float64{1, 1}, Rows: [][]float64{{10}, {20}}}

	got := Join(a, b)

	assert.Equal(t, []float64{1, 1, 1, 1}, got.Keys)
	assert.Equal(t, [][]float64{{1, 10}, {1, 20}, {2, 10}, {2, 20}}, got.Rows)
}

func TestJoin_Disjoint(t *testing.T) {
	a := &Table{Keys: []float64{1}, Rows: [][]float64{{1}}}
	b := &Table{Keys: []float64{2}, Rows: [][]float64{{2}}}

	assert.Equal(t, 0, Join(a, b).Len())
}

func TestJoin_DoesNotAlias(t *testing.T) {
	a := &Table{Keys: []float64{1}, Rows: [][]float64{{1}}}
	b := &Table{Keys: []float64{1}, Rows: [][]float64{{2}}}

	got := Join(a, b)
	got.Rows[0][0] = 42
	assert.Equal(t, 1.0, a.Rows[0][0])
}

func TestSortByKey_Stable(t *testing.T) {
	tbl := &Table{
		Keys: []float64{2, 1, 2, 1},
		Rows: [][]float64{{0}, {1}, {2}, {3}},
	}
	tbl.SortByKey()

	assert.Equal(t, []float64{1, 1, 2, 2}, tbl.Keys)
	assert.Equal(t, [][]float64{{1}, {3}, {0}, {2}}, tbl.Rows)
}
