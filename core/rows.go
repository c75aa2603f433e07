package core

import (
	"errors"

	"github.com/LFQuintero/excelsior/values"
)

// boundColumn is one canonical column with its validator and input
// position resolved, so the per-row loop does no lookups.
type boundColumn struct {
	name      string
	kind      ValidatorKind
	validator Validator // nil means the cell passes through unchanged
	input     int       // input column index, or Absent
}

// bindColumns resolves every canonical column once per session. Choice
// columns take their value list from lists, keyed by Params.FieldKey; a
// nil entry means that key degraded to accept-all. Any validator that
// cannot be built is a configuration problem, never a per-row one.
func bindColumns(schema *Schema, plan *ReconciliationPlan, lists map[string]*values.ValueList) ([]boundColumn, error) {
	columns := make([]boundColumn, len(schema.Headers))
	for i, h := range schema.Headers {
		col := boundColumn{name: h.Name, kind: h.Kind, input: plan.ColumnOrder[i]}
		switch {
		case h.Kind == "":
			// pass-through column
		case h.Kind == KindChoice:
			col.validator = NewChoiceValidator(h.Params.FieldKey, lists[h.Params.FieldKey])
		default:
			v, err := NewValidator(h.Kind, h.Params)
			if err != nil {
				return nil, &ConfigurationError{
					Project: schema.ProjectCode,
					Module:  schema.ModuleName,
					Field:   h.Name,
					Reason:  err.Error(),
				}
			}
			col.validator = v
		}
		columns[i] = col
	}
	return columns, nil
}

// processRow reorders one input row into canonical order and validates
// each cell. rowNum is 1-based over data rows and lands verbatim in any
// error records. A failed cell becomes an empty output cell plus one
// record; a null-sentinel cell becomes an empty output cell with no
// record; the row itself always comes back complete.
func processRow(columns []boundColumn, row []string, rowNum int) ([]string, []ErrorRecord) {
	out := make([]string, len(columns))
	var errs []ErrorRecord

	for i, col := range columns {
		var raw string
		if col.input != Absent && col.input < len(row) {
			raw = row[col.input]
		}
		if col.validator == nil {
			out[i] = raw
			continue
		}

		cleaned, err := col.validator.Validate(raw)
		switch {
		case err == nil:
			out[i] = cleaned
		case errors.Is(err, ErrNull):
			out[i] = ""
		default:
			out[i] = ""
			errs = append(errs, ErrorRecord{
				RowNumber:    rowNum,
				ColumnName:   col.name,
				ColumnNumber: i + 1,
				ExpectedType: string(col.kind),
				RawValue:     raw,
				Reason:       err.Error(),
			})
		}
	}
	return out, errs
}
