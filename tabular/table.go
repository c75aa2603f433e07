// Package tabular provides the in-memory table model the processing engine
// operates on, plus CSV and XLSX adapters for the formats the agencies
// actually ship.
//
// A Table is one header row and zero or more data rows. Rows may be ragged
// (shorter or longer than the header); the engine reconciles shapes, so the
// adapters preserve whatever the file contains.
package tabular

import "fmt"

// Table is an in-memory dataset: one header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New builds a Table from a header row and data rows.
func New(headers []string, rows [][]string) *Table {
	return &Table{Headers: headers, Rows: rows}
}

// Width returns the number of header columns.
func (t *Table) Width() int {
	return len(t.Headers)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Cell returns the value at (row, col), or "" when the row is shorter than
// col. It panics when row is out of range, matching slice semantics.
func (t *Table) Cell(row, col int) string {
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Validate reports structural problems that make a table unusable: a nil
// receiver or no header row. Ragged data rows are not an error here.
func (t *Table) Validate() error {
	if t == nil {
		return fmt.Errorf("table is nil")
	}
	if len(t.Headers) == 0 {
		return fmt.Errorf("table has no header row")
	}
	return nil
}
