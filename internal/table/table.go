// Package table holds the in-memory value stored by the tabular artifact
// codecs: a header of column names and rows of string cells.
package table

import (
	"fmt"
	"slices"
	"strconv"
)

// Table is a rectangular set of string cells with named columns.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New builds a table and checks that every row matches the header width.
func New(columns []string, rows ...[]string) (Table, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, dup := seen[c]; dup {
			return Table{}, fmt.Errorf("duplicate column %q", c)
		}
		seen[c] = struct{}{}
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return Table{}, fmt.Errorf("row %d has %d cells, want %d", i, len(r), len(columns))
		}
	}
	if rows == nil {
		rows = [][]string{}
	}
	return Table{Columns: columns, Rows: rows}, nil
}

// FromFloats builds a table from numeric rows, formatting each value with
// the shortest representation that round-trips.
func FromFloats(columns []string, rows [][]float64) (Table, error) {
	out := make([][]string, len(rows))
	for i, r := range rows {
		cells := make([]string, len(r))
		for j, v := range r {
			cells[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		out[i] = cells
	}
	return New(columns, out...)
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Index returns the position of a column or -1.
func (t Table) Index(name string) int {
	return slices.Index(t.Columns, name)
}

// HasColumns reports whether every named column exists.
func (t Table) HasColumns(names ...string) bool {
	for _, n := range names {
		if t.Index(n) < 0 {
			return false
		}
	}
	return true
}

// Column returns the cells of one column.
func (t Table) Column(name string) ([]string, error) {
	idx := t.Index(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found", name)
	}
	out := make([]string, len(t.Rows))
	for i, r := range t.Rows {
		out[i] = r[idx]
	}
	return out, nil
}

// ColumnFloats returns one column parsed as float64.
func (t Table) ColumnFloats(name string) ([]float64, error) {
	cells, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(cells))
	for i, c := range cells {
		v, err := strconv.ParseFloat(c, 64)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		out[i] = v
	}
	return out, nil
}

// Floats parses every cell as float64, row by row.
func (t Table) Floats() ([][]float64, error) {
	out := make([][]float64, len(t.Rows))
	for i, r := range t.Rows {
		vals := make([]float64, len(r))
		for j, c := range r {
			v, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return nil, fmt.Errorf("column %q row %d: %w", t.Columns[j], i, err)
			}
			vals[j] = v
		}
		out[i] = vals
	}
	return out, nil
}

// Select returns a new table holding only the named columns, in that order.
func (t Table) Select(names ...string) (Table, error) {
	idx := make([]int, len(names))
	for i, n := range names {
		idx[i] = t.Index(n)
		if idx[i] < 0 {
			return Table{}, fmt.Errorf("column %q not found", n)
		}
	}
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		cells := make([]string, len(idx))
		for j, k := range idx {
			cells[j] = r[k]
		}
		rows[i] = cells
	}
	return Table{Columns: slices.Clone(names), Rows: rows}, nil
}

// Drop returns a new table without the named columns.
func (t Table) Drop(names ...string) (Table, error) {
	for _, n := range names {
		if t.Index(n) < 0 {
			return Table{}, fmt.Errorf("column %q not found", n)
		}
	}
	keep := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !slices.Contains(names, c) {
			keep = append(keep, c)
		}
	}
	return t.Select(keep...)
}
