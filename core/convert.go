// convert.go provides the cleanup and parsing helpers behind the
// validators:
//   - Cell artifact removal (Excel ="..." wrappers, stray quotes, NBSP)
//   - Day-first date parsing with Excel serial support
//   - Numeric separator resolution for Colombian and US conventions
//   - The DIAN check-digit algorithm for NITs
//
// Helpers never allocate errors; they report success with a bool and let
// the validators attach reasons.
package core

import (
	"strconv"
	"strings"
	"time"
)

// CleanCell removes common export artifacts from a cell value:
//   - Non-breaking spaces become regular spaces
//   - Surrounding whitespace is trimmed
//   - Excel formula-as-text wrappers (="...") are unwrapped
//   - Surrounding quotes are dropped
func CleanCell(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.TrimSpace(s)

	if len(s) >= 3 && strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// TwoDigitYearPivot controls 2-digit year interpretation. Parsed years more
// than this many years in the future roll back a century.
var TwoDigitYearPivot = 20

// Date layouts the agencies actually ship: ISO, day-first with slash, dash
// or dot separators, compact, and datetime renderings of date cells.
var (
	fourDigitYearLayouts = []string{
		"2006-01-02", "2006/01/02", "2006.01.02",
		"2/1/2006", "02/01/2006", "2-1-2006", "02-01-2006", "2.1.2006", "02.01.2006",
		"20060102",
		"2006-01-02 15:04:05", "2006-01-02T15:04:05", "2/1/2006 15:04",
	}
	twoDigitYearLayouts = []string{
		"2/1/06", "02/01/06", "2-1-06", "2.1.06", "02.01.06",
	}
)

// ParseDate parses a raw date string. Four-digit-year layouts are tried
// first (unambiguous), then two-digit years with the pivot adjustment,
// then Excel day serials. Impossible calendar dates fail layout parsing
// and end up invalid.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range fourDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	pivot := time.Now().Year() + TwoDigitYearPivot
	for _, layout := range twoDigitYearLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			if t.Year() > pivot {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	return parseExcelSerial(s)
}

// excelEpoch is day zero of the 1900 date system as spreadsheets actually
// implement it; the fictitious 1900-02-29 shifts the epoch back two days.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// parseExcelSerial interprets 5-digit integers as spreadsheet day serials
// (1927 through 2173). Shorter strings collide with plain numbers and
// years, longer ones with compact dates, so only this width is treated as
// a serial.
func parseExcelSerial(s string) (time.Time, bool) {
	if len(s) != 5 {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return time.Time{}, false
	}
	return excelEpoch.AddDate(0, 0, n), true
}

// FormatDate renders a parsed date in the canonical YYYY-MM-DD form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// groupingOK reports whether sym splits the integer part of s into a valid
// thousands grouping: every group after the first has exactly three digits.
func groupingOK(s, sym string) bool {
	parts := strings.Split(s, sym)
	for _, p := range parts[1:] {
		if len(p) != 3 {
			return false
		}
	}
	return true
}

// cleanFloat resolves grouping and decimal separators in a numeric string,
// returning a strconv-parseable form. Files arrive in both Colombian
// ("1.234.567,89") and US ("1,234,567.89") conventions; when both symbols
// appear, the one occurring last is the decimal separator. A lone comma
// followed by one or two digits is a decimal separator; otherwise it must
// be a thousands separator in grouping shape. A lone dot is a decimal
// separator unless repeated in grouping shape.
func cleanFloat(s string) (string, bool) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return "", false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			// Dots group, comma is the decimal.
			if strings.Count(s, ",") > 1 || !groupingOK(s[:lastComma], ".") {
				return "", false
			}
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			// Commas group, dot is the decimal.
			if strings.Count(s, ".") > 1 || !groupingOK(s[:lastDot], ",") {
				return "", false
			}
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		frac := len(s) - lastComma - 1
		if strings.Count(s, ",") == 1 && frac >= 1 && frac <= 2 {
			s = strings.Replace(s, ",", ".", 1)
		} else {
			if !groupingOK(s, ",") {
				return "", false
			}
			s = strings.ReplaceAll(s, ",", "")
		}
	case strings.Count(s, ".") > 1:
		if !groupingOK(s, ".") {
			return "", false
		}
		s = strings.ReplaceAll(s, ".", "")
	}

	return s, true
}

// cleanInteger strips thousands separators from an integer string and
// applies the decimal-point rule: a fractional part is tolerated only when
// it is entirely zeros. Returns the bare digit string with sign.
func cleanInteger(s string) (string, bool) {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return "", false
	}

	if strings.Contains(s, ",") {
		if !groupingOK(strings.SplitN(s, ".", 2)[0], ",") {
			return "", false
		}
		s = strings.ReplaceAll(s, ",", "")
	}

	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if hasDot {
		if fracPart == "" || strings.Count(s, ".") > 1 {
			return "", false
		}
		if strings.Trim(fracPart, "0") != "" {
			return "", false
		}
	}
	return intPart, true
}

// nitWeights are the DIAN verification weights, applied right to left over
// the NIT body.
var nitWeights = [...]int{3, 7, 13, 17, 19, 23, 29, 37, 41, 43, 47, 53, 59, 67, 71}

// ComputeCheckDigit returns the DIAN verification digit for a NIT body.
// The body must be digits only and at most len(nitWeights) long.
func ComputeCheckDigit(digits string) int {
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[len(digits)-1-i] - '0')
		sum += d * nitWeights[i]
	}
	rem := sum % 11
	if rem < 2 {
		return rem
	}
	return 11 - rem
}

// allDigits reports whether s is non-empty and consists only of ASCII
// digits.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
