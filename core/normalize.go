package core

import (
	"strings"

	"github.com/LFQuintero/excelsior/values"
)

// NormalizeHeader reduces a header spelling to the form used for
// matching: export artifacts cleaned, diacritics stripped, upper-cased,
// spaces, dashes and slashes unified to single underscores, dots
// dropped. "Cuantía del Acto" and "CUANTIA_DEL_ACTO" normalize equally.
//
// This is intentionally not values.NormalizeValue: headers compare in
// underscore form, cell values in space form.
func NormalizeHeader(s string) string {
	s = CleanCell(s)
	s = values.StripDiacritics(s)
	s = strings.ToUpper(s)

	var b strings.Builder
	b.Grow(len(s))
	joined := true // swallow leading separators
	for _, r := range s {
		switch r {
		case ' ', '\t', '-', '/', '_':
			if !joined {
				b.WriteRune('_')
				joined = true
			}
		case '.':
			// dropped, "No. Acto" becomes NO_ACTO
		default:
			b.WriteRune(r)
			joined = false
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
