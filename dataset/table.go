package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformed is returned for CSV input that cannot be parsed into a table.
var ErrMalformed = errors.New("dataset: malformed input")

// Table is a keyed set of points. Rows[i] belongs to Keys[i].
type Table struct {
	Keys []float64
	Rows [][]float64
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Keys)
}

// Dim returns the number of coordinate columns, or 0 for an empty table.
func (t *Table) Dim() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// IndexOf returns the first row with the given key, or -1.
func (t *Table) IndexOf(key float64) int {
	for i, k := range t.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// ReadCSV parses a header-less CSV stream. Every record must have the same
// number of fields; the first field is the key.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	t := &Table{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return t, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}

		line, _ := cr.FieldPos(0)

		key, err := parseField(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: key: %w", ErrMalformed, line, err)
		}

		row := make([]float64, len(rec)-1)
		for j, f := range rec[1:] {
			if row[j], err = parseField(f); err != nil {
				return nil, fmt.Errorf("%w: line %d, column %d: %w", ErrMalformed, line, j+2, err)
			}
		}

		t.Keys = append(t.Keys, key)
		t.Rows = append(t.Rows, row)
	}
}

func parseField(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Join returns the inner join of a and b on the key. Each output row holds
// the columns of a followed by the columns of b; a key present several times
// on both sides yields every pairing. The result is sorted by key, keeping
// the join order among equal keys.
func Join(a, b *Table) *Table {
	byKey := make(map[float64][]int, b.Len())
	for i, k := range b.Keys {
		byKey[k] = append(byKey[k], i)
	}

	out := &Table{}
	for i, k := range a.Keys {
		for _, j := range byKey[k] {
			row := make([]float64, 0, len(a.Rows[i])+len(b.Rows[j]))
			row = append(row, a.Rows[i]...)
			row = append(row, b.Rows[j]...)
			out.Keys = append(out.Keys, k)
			out.Rows = append(out.Rows, row)
		}
	}

	out.SortByKey()
	return out
}

// SortByKey orders the rows by ascending key. The sort is stable.
func (t *Table) SortByKey() {
	sort.Stable(byKey{t})
}

type byKey struct{ t *Table }

func (s byKey) Len() int           { return len(s.t.Keys) }
func (s byKey) Less(i, j int) bool { return s.t.Keys[i] < s.t.Keys[j] }
func (s byKey) Swap(i, j int) {
	s.t.Keys[i], s.t.Keys[j] = s.t.Keys[j], s.t.Keys[i]
	s.t.Rows[i], s.t.Rows[j] = s.t.Rows[j], s.t.Rows[i]
}
