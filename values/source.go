// Package values provides the value-list registry backing choice validation.
//
// A value list names the admissible spellings for one field (for example the
// notification states a tax file may carry) plus an optional replacement map
// from known variant spellings to the canonical one. Lists are resolved by
// field key through a pluggable Source and cached by the Registry for the
// lifetime of the process.
package values

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrNotFound is returned by a Source when it has no list for a field key.
var ErrNotFound = errors.New("value list not found")

// Source loads value lists by field key.
//
// Implementations must treat an unknown key as ErrNotFound, not as an empty
// list: the registry distinguishes "no list configured" (degraded accept-all)
// from "list configured with zero values" (nothing is admissible).
type Source interface {
	Load(ctx context.Context, key string) (*ValueList, error)
}

// ValueList holds the admissible values for one field key.
//
// Values keeps the canonical display spellings in their configured order.
// Replacements maps variant spellings to the canonical display form and is
// consulted before membership, so a variant with a registered replacement is
// rewritten even when the variant itself would have been admissible.
type ValueList struct {
	Key          string
	Values       []string
	Replacements map[string]string
	Description  string

	index        map[string]string // normalized value -> canonical display form
	replacements map[string]string // normalized variant -> canonical display form
}

// NewValueList builds a ValueList with its lookup index.
// Membership and replacement lookups are case-, accent-, and
// whitespace-insensitive.
func NewValueList(key string, vals []string, replacements map[string]string) *ValueList {
	l := &ValueList{
		Key:          key,
		Values:       vals,
		Replacements: replacements,
		index:        make(map[string]string, len(vals)),
		replacements: make(map[string]string, len(replacements)),
	}
	for _, v := range vals {
		n := NormalizeValue(v)
		if _, exists := l.index[n]; !exists {
			l.index[n] = v
		}
	}
	for variant, canonical := range replacements {
		l.replacements[NormalizeValue(variant)] = canonical
	}
	return l
}

// Contains reports whether raw matches one of the list's values.
func (l *ValueList) Contains(raw string) bool {
	_, ok := l.index[NormalizeValue(raw)]
	return ok
}

// Replacement returns the canonical form registered for a variant spelling.
func (l *ValueList) Replacement(raw string) (string, bool) {
	v, ok := l.replacements[NormalizeValue(raw)]
	return v, ok
}

// Canonical resolves raw against the list: replacement first, then
// membership. The returned string is the list's canonical display spelling.
func (l *ValueList) Canonical(raw string) (string, bool) {
	if v, ok := l.replacements[NormalizeValue(raw)]; ok {
		return v, true
	}
	if v, ok := l.index[NormalizeValue(raw)]; ok {
		return v, true
	}
	return "", false
}

// Len returns the number of admissible values.
func (l *ValueList) Len() int {
	return len(l.Values)
}

// NormalizeValue reduces a value to its comparison form: trimmed,
// lower-cased, diacritics stripped, and internal whitespace collapsed.
// Input headers and list values are normalized identically so that
// "Notificación", "NOTIFICACION" and " notificacion " all compare equal.
func NormalizeValue(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = StripDiacritics(s)
	return strings.Join(strings.Fields(s), " ")
}

// StripDiacritics removes combining marks after NFD decomposition, turning
// accented Spanish letters into their ASCII bases. Case is preserved.
func StripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeKey reduces a field key to its cache/lookup form.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
