// csv.go provides the CSV adapter. Agency exports are messy: BOMs, stray
// quotes inside unquoted fields, and rows whose width drifts from the
// header. The reader is configured to survive all of that and hand the
// raggedness to the engine.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVOptions controls CSV reading and writing.
type CSVOptions struct {
	// Comma is the field delimiter. Zero means ','. Colombian installs of
	// Excel export with ';', so callers reading those pass ';'.
	Comma rune
}

// ReadCSV parses a CSV export into a Table using the default comma
// delimiter. The input is BOM-stripped and UTF-8 sanitized while streaming.
func ReadCSV(r io.Reader) (*Table, error) {
	return ReadCSVWith(r, CSVOptions{})
}

// ReadCSVWith parses a CSV export with explicit options.
func ReadCSVWith(r io.Reader, opts CSVOptions) (*Table, error) {
	cr := csv.NewReader(NewReader(r))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// WriteCSV writes a table as CSV with the default comma delimiter.
func WriteCSV(w io.Writer, t *Table) error {
	return WriteCSVWith(w, t, CSVOptions{})
}

// WriteCSVWith writes a table as CSV with explicit options.
func WriteCSVWith(w io.Writer, t *Table, opts CSVOptions) error {
	if err := t.Validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
