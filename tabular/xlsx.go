// xlsx.go provides the XLSX adapter. Reads take the first sheet of a
// workbook; writes produce a single-sheet workbook. Cell values pass
// through as the strings excelize renders, so dates and numbers arrive
// exactly as the spreadsheet displayed them.
package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first sheet of a workbook into a Table.
func ReadXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	return readSheet(f, sheet)
}

// ReadXLSXSheet parses a named sheet of a workbook into a Table.
func ReadXLSXSheet(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()
	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) (*Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}

// WriteXLSX writes a table as a single-sheet workbook.
func WriteXLSX(w io.Writer, t *Table, sheet string) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if sheet == "" {
		sheet = "Hoja1"
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	// Stream rows so wide error reports do not balloon memory.
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("opening stream writer: %w", err)
	}
	if err := writeStreamRow(sw, 1, t.Headers); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeStreamRow(sw, i+2, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flushing sheet: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func writeStreamRow(sw *excelize.StreamWriter, rowNum int, cells []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("addressing row %d: %w", rowNum, err)
	}
	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		vals[i] = c
	}
	if err := sw.SetRow(cell, vals); err != nil {
		return fmt.Errorf("writing row %d: %w", rowNum, err)
	}
	return nil
}
