// Package core implements header reconciliation and cell validation for
// agency reporting tables. This package has no I/O dependencies and can
// be driven by any frontend.
package core

import "time"

// CanonicalHeader declares one approved output column: its name, whether
// input files must supply it, and the validator applied to its cells.
// Header order within a Schema is the output column order.
type CanonicalHeader struct {
	Name     string
	Required bool
	Kind     ValidatorKind // empty means no validation, cells pass through
	Params   Params
}

// Schema is the column contract for one (project, module) pair: the
// canonical headers in output order plus a synonym map from alternate
// input spellings to canonical names. An empty ModuleName registers the
// schema as the project-level default, for projects that ship a single
// table. Build schemas with NewSchema so synonym keys are stored in
// normalized form.
type Schema struct {
	ProjectCode string
	ModuleName  string
	Label       string // display name: "Notificaciones"
	Headers     []CanonicalHeader
	Synonyms    map[string]string
}

// NewSchema builds a schema with the synonym keys normalized, so callers
// can write them in their natural spelling ("No. Acto", "NIT/CC").
// Synonym values must be canonical header names; Validate checks that.
func NewSchema(project, module string, headers []CanonicalHeader, synonyms map[string]string) *Schema {
	s := &Schema{
		ProjectCode: project,
		ModuleName:  module,
		Headers:     headers,
	}
	if len(synonyms) > 0 {
		s.Synonyms = make(map[string]string, len(synonyms))
		for spelling, canonical := range synonyms {
			s.Synonyms[NormalizeHeader(spelling)] = canonical
		}
	}
	return s
}

// Key returns the registry key for this schema.
func (s *Schema) Key() string {
	return s.ProjectCode + "/" + s.ModuleName
}

// Header returns the canonical header with the given name.
// Returns false if the schema does not declare it.
func (s *Schema) Header(name string) (CanonicalHeader, bool) {
	for _, h := range s.Headers {
		if h.Name == name {
			return h, true
		}
	}
	return CanonicalHeader{}, false
}

// ChoiceKeys returns the value-list keys referenced by choice columns,
// in header order without duplicates. The processing engine loads these
// lists before the first row.
func (s *Schema) ChoiceKeys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, h := range s.Headers {
		if h.Kind != KindChoice || h.Params.FieldKey == "" {
			continue
		}
		if !seen[h.Params.FieldKey] {
			seen[h.Params.FieldKey] = true
			keys = append(keys, h.Params.FieldKey)
		}
	}
	return keys
}

// Validate checks that the schema is internally consistent. It returns a
// ConfigurationError describing the first problem found.
func (s *Schema) Validate() error {
	if s.ProjectCode == "" {
		return &ConfigurationError{
			Project: s.ProjectCode,
			Module:  s.ModuleName,
			Reason:  "project code is required",
		}
	}
	if len(s.Headers) == 0 {
		return &ConfigurationError{
			Project: s.ProjectCode,
			Module:  s.ModuleName,
			Reason:  "schema declares no columns",
		}
	}
	seen := make(map[string]string, len(s.Headers))
	for _, h := range s.Headers {
		if h.Name == "" {
			return &ConfigurationError{
				Project: s.ProjectCode,
				Module:  s.ModuleName,
				Reason:  "schema declares a column with an empty name",
			}
		}
		norm := NormalizeHeader(h.Name)
		if prev, dup := seen[norm]; dup {
			return &ConfigurationError{
				Project: s.ProjectCode,
				Module:  s.ModuleName,
				Field:   h.Name,
				Reason:  "collides with column " + prev + " after normalization",
			}
		}
		seen[norm] = h.Name
		if h.Kind == "" {
			continue
		}
		if !KnownKind(h.Kind) {
			return &ConfigurationError{
				Project: s.ProjectCode,
				Module:  s.ModuleName,
				Field:   h.Name,
				Reason:  "unknown validator kind " + string(h.Kind),
			}
		}
		if h.Kind == KindChoice && h.Params.FieldKey == "" {
			return &ConfigurationError{
				Project: s.ProjectCode,
				Module:  s.ModuleName,
				Field:   h.Name,
				Reason:  "choice column needs a value list key",
			}
		}
	}
	for spelling, canonical := range s.Synonyms {
		if _, ok := s.Header(canonical); !ok {
			return &ConfigurationError{
				Project: s.ProjectCode,
				Module:  s.ModuleName,
				Field:   spelling,
				Reason:  "synonym points at undeclared column " + canonical,
			}
		}
	}
	return nil
}

// Absent marks a canonical column with no matching input column.
const Absent = -1

// ReconciliationPlan maps a table's input columns onto a schema's
// canonical order. ColumnOrder[i] holds the input column index that
// supplies canonical column i, or Absent. The plan is computed once per
// table, before the first data row.
type ReconciliationPlan struct {
	ColumnOrder     []int
	MissingRequired []string // required columns with no match, in schema order
	Unmatched       []string // input headers no canonical column claimed, in input order
}

// ErrorRecord reports one rejected cell. RowNumber counts data rows from
// 1, excluding the header row, so it matches what a reviewer sees in a
// spreadsheet minus one. ColumnNumber is the 1-based canonical position.
type ErrorRecord struct {
	RowNumber    int
	ColumnName   string
	ColumnNumber int
	ExpectedType string
	RawValue     string
	Reason       string
}

// Summary aggregates one processing pass over a table.
type Summary struct {
	RowsProcessed   int
	RowsWithErrors  int
	TotalErrors     int
	MissingRequired []string
	Unmatched       []string
	ShortRows       int // data rows narrower than the header row
	LongRows        int // data rows wider than the header row
	Duration        time.Duration
}
