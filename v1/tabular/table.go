package tabular

import "encoding/json"

// Row is a single flattened record. Every row of a Table holds a value for
// every column of that table; absent values are explicit nils.
type Row map[string]any

// Table is a row-oriented view over a list of flattened records.
//
// A Table is immutable after construction. Rows preserve the order of the
// source records and columns preserve first-seen order across the scan.
type Table struct {
	columns []string
	rows    []Row
}

// Columns returns the column names in their deterministic table order.
// The returned slice is a copy.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th row. The returned map is the table's own storage;
// callers must not mutate it.
func (t *Table) Row(i int) Row {
	return t.rows[i]
}

// Rows returns all rows in source order. The returned slice is a copy; the
// row maps themselves are shared.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// MarshalJSON encodes the table as {"columns": [...], "rows": [...]} with
// rows as column-ordered value lists, keeping column order on the wire.
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([][]any, len(t.rows))
	for i, r := range t.rows {
		vals := make([]any, len(t.columns))
		for j, c := range t.columns {
			vals[j] = r[c]
		}
		rows[i] = vals
	}

	return json.Marshal(struct {
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}{
		Columns: t.columns,
		Rows:    rows,
	})
}
