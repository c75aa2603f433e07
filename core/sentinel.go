// sentinel.go provides the shared null-sentinel rule. Upstream systems
// encode "intentionally absent" in many textual forms; every validator
// treats these identically instead of reinventing detection per type.
// Bare "N/A" tokens used to slip through numeric validation because each
// validator checked its own ad hoc subset.
package core

import (
	"errors"
	"strings"
)

// ErrNull is returned by validators when the raw value is a null sentinel.
// The row processor clears the cell without recording a validation error;
// an intentionally absent value is not invalid data.
var ErrNull = errors.New("null sentinel value")

// nullSentinels is the fixed set of tokens that mean "no value", compared
// after trimming and lower-casing.
var nullSentinels = map[string]struct{}{
	"":             {},
	"$null$":       {},
	"nan":          {},
	"null":         {},
	"none":         {},
	"n/a":          {},
	"n/a.":         {},
	"n.a":          {},
	"n.a.":         {},
	"na":           {},
	"sin registro": {},
	"desconocido":  {},
	"no aplica":    {},
}

// IsNull reports whether the raw value is a null sentinel.
func IsNull(s string) bool {
	_, ok := nullSentinels[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

// prepare runs the shared pre-validation pipeline: cell artifact cleanup
// followed by the null-sentinel check.
func prepare(raw string) (string, error) {
	s := CleanCell(raw)
	if IsNull(s) {
		return "", ErrNull
	}
	return s, nil
}
