// validators.go provides the field validator family. Every validator is
// stateless, safe for concurrent reuse, and never panics on malformed
// input: invalid is a normal return value, not an exceptional path.
//
// Validate returns the cleaned canonical form and a nil error on success.
// A null-sentinel raw value returns ErrNull, which the row processor
// treats as "clear the cell, no error record". Any other error is a
// validation failure whose message becomes the ErrorRecord reason.
package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/LFQuintero/excelsior/values"
)

// ValidatorKind names a validator in schema configuration.
type ValidatorKind string

const (
	KindInteger ValidatorKind = "integer"
	KindFloat   ValidatorKind = "float"
	KindDate    ValidatorKind = "date"
	KindNIT     ValidatorKind = "nit"
	KindChoice  ValidatorKind = "choice"
	KindString  ValidatorKind = "string"
	KindBool    ValidatorKind = "boolean"
	KindEmail   ValidatorKind = "email"
	KindPhone   ValidatorKind = "phone"
	KindPercent ValidatorKind = "percentage"
)

// KnownKind reports whether kind names a validator this package can build.
func KnownKind(kind ValidatorKind) bool {
	switch kind {
	case KindInteger, KindFloat, KindDate, KindNIT, KindChoice,
		KindString, KindBool, KindEmail, KindPhone, KindPercent:
		return true
	}
	return false
}

// Params carries the per-field tuning a schema may attach to a validator.
// Zero values mean "no constraint".
type Params struct {
	Min      *float64 // numeric lower bound, inclusive
	Max      *float64 // numeric upper bound, inclusive
	MinLen   int      // string minimum length
	MaxLen   int      // string maximum length, 0 = unbounded
	FieldKey string   // value list key for choice fields
	Layouts  []string // extra date layouts, tried before the defaults
}

// Bound returns a pointer to v for use as a numeric bound in Params.
func Bound(v float64) *float64 {
	return &v
}

// Validator validates and canonicalizes one cell value.
type Validator interface {
	Kind() ValidatorKind
	Validate(raw string) (cleaned string, err error)
}

// NewValidator builds a stateless validator for kind. Choice validators
// are not built here: they need a resolved value list, which the session
// binds through NewChoiceValidator.
func NewValidator(kind ValidatorKind, p Params) (Validator, error) {
	switch kind {
	case KindInteger:
		return intValidator{p}, nil
	case KindFloat:
		return floatValidator{p}, nil
	case KindDate:
		return dateValidator{p.Layouts}, nil
	case KindNIT:
		return nitValidator{}, nil
	case KindString:
		return stringValidator{p.MinLen, p.MaxLen}, nil
	case KindBool:
		return boolValidator{}, nil
	case KindEmail:
		return emailValidator{}, nil
	case KindPhone:
		return phoneValidator{}, nil
	case KindPercent:
		return percentValidator{p}, nil
	case KindChoice:
		return nil, fmt.Errorf("choice validators require a resolved value list")
	default:
		return nil, fmt.Errorf("unknown validator kind %q", kind)
	}
}

// ---- integer ----

type intValidator struct {
	p Params
}

func (intValidator) Kind() ValidatorKind { return KindInteger }

func (v intValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	if !numericCharset.MatchString(s) {
		return "", fmt.Errorf("contains non-numeric characters")
	}
	cleaned, ok := cleanInteger(s)
	if !ok {
		return "", fmt.Errorf("not a whole number")
	}
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid integer format")
	}
	if v.p.Min != nil && float64(n) < *v.p.Min {
		return "", fmt.Errorf("below minimum %s", formatBound(*v.p.Min))
	}
	if v.p.Max != nil && float64(n) > *v.p.Max {
		return "", fmt.Errorf("above maximum %s", formatBound(*v.p.Max))
	}
	return strconv.FormatInt(n, 10), nil
}

// ---- float ----

type floatValidator struct {
	p Params
}

func (floatValidator) Kind() ValidatorKind { return KindFloat }

func (v floatValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	f, err := parseFloatValue(s)
	if err != nil {
		return "", err
	}
	if v.p.Min != nil && f < *v.p.Min {
		return "", fmt.Errorf("below minimum %s", formatBound(*v.p.Min))
	}
	if v.p.Max != nil && f > *v.p.Max {
		return "", fmt.Errorf("above maximum %s", formatBound(*v.p.Max))
	}
	return formatFloatValue(f), nil
}

// numericCharset is the set of characters a numeric value may contain
// after currency stripping: digits, sign, separators, whitespace.
var numericCharset = regexp.MustCompile(`^[0-9\-.,\s]+$`)

// parseFloatValue strips currency symbols and a trailing percent sign,
// resolves separators, and parses the remainder.
func parseFloatValue(s string) (float64, error) {
	for _, sym := range []string{"$", "€", "£"} {
		s = strings.ReplaceAll(s, sym, "")
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if !numericCharset.MatchString(s) {
		return 0, fmt.Errorf("contains non-numeric characters")
	}
	cleaned, ok := cleanFloat(s)
	if !ok {
		return 0, fmt.Errorf("invalid number format")
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number format")
	}
	return f, nil
}

// formatFloatValue renders the canonical decimal form: shortest exact
// representation, always with a decimal point.
func formatFloatValue(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ---- date ----

type dateValidator struct {
	extra []string
}

func (dateValidator) Kind() ValidatorKind { return KindDate }

func (v dateValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	for _, layout := range v.extra {
		if t, perr := time.Parse(layout, s); perr == nil {
			return FormatDate(t), nil
		}
	}
	t, ok := ParseDate(s)
	if !ok {
		return "", fmt.Errorf("unrecognized date (use YYYY-MM-DD or DD/MM/YYYY)")
	}
	return FormatDate(t), nil
}

// ---- NIT ----

// nitPhrases are NIT-specific "no value" spellings seen in filings, on top
// of the shared sentinel set.
var nitPhrases = map[string]struct{}{
	"por establecer": {},
	"por definir":    {},
	"sin nit":        {},
	"no tiene":       {},
}

type nitValidator struct{}

func (nitValidator) Kind() ValidatorKind { return KindNIT }

func (nitValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	if _, ok := nitPhrases[strings.ToLower(s)]; ok {
		return "", ErrNull
	}

	body := s
	check := ""
	if strings.Contains(s, "-") {
		parts := strings.Split(s, "-")
		if len(parts) != 2 {
			return "", fmt.Errorf("too many dashes in tax id")
		}
		body, check = strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}

	// Thousands dots and spaces inside the body are tolerated.
	body = strings.NewReplacer(".", "", " ", "").Replace(body)
	if !allDigits(body) {
		return "", fmt.Errorf("tax id must contain only digits")
	}
	if len(body) < 8 || len(body) > 15 {
		return "", fmt.Errorf("tax id must have 8 to 15 digits")
	}

	// A two-digit suffix is a branch code, not a check digit; drop it.
	if len(check) == 2 && allDigits(check) {
		check = ""
	}

	dv := ComputeCheckDigit(body)
	switch {
	case check == "":
		return fmt.Sprintf("%s-%d", body, dv), nil
	case len(check) == 1 && allDigits(check):
		if int(check[0]-'0') != dv {
			return "", fmt.Errorf("check digit mismatch (expected %d)", dv)
		}
		return fmt.Sprintf("%s-%d", body, dv), nil
	default:
		return "", fmt.Errorf("invalid check digit %q", check)
	}
}

// ---- choice ----

// choiceValidator checks membership against a resolved value list. A nil
// list means the registry degraded for this key and every value passes
// through trimmed.
type choiceValidator struct {
	fieldKey string
	list     *values.ValueList
}

// NewChoiceValidator binds a choice validator to its resolved value list.
// Pass a nil list for a key operating in degraded accept-all mode.
func NewChoiceValidator(fieldKey string, list *values.ValueList) Validator {
	return choiceValidator{fieldKey: fieldKey, list: list}
}

func (choiceValidator) Kind() ValidatorKind { return KindChoice }

func (v choiceValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	if v.list == nil {
		return s, nil
	}
	if canonical, ok := v.list.Canonical(s); ok {
		return canonical, nil
	}
	return "", fmt.Errorf("not an admissible value for %s", v.fieldKey)
}

// ---- string ----

// controlChars matches the control bytes that occasionally survive desktop
// copy-paste into exports.
var controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

type stringValidator struct {
	minLen int
	maxLen int
}

func (stringValidator) Kind() ValidatorKind { return KindString }

func (v stringValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	s = controlChars.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")

	n := len([]rune(s))
	if v.minLen > 0 && n < v.minLen {
		return "", fmt.Errorf("shorter than minimum length %d", v.minLen)
	}
	if v.maxLen > 0 && n > v.maxLen {
		return "", fmt.Errorf("longer than maximum length %d", v.maxLen)
	}
	return s, nil
}

// ---- boolean ----

type boolValidator struct{}

func (boolValidator) Kind() ValidatorKind { return KindBool }

func (boolValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	switch values.NormalizeValue(s) {
	case "si", "verdadero", "true", "1", "v":
		return "SI", nil
	case "no", "falso", "false", "0", "n", "f":
		return "NO", nil
	default:
		return "", fmt.Errorf("not a recognized boolean (use SI or NO)")
	}
}

// ---- email ----

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type emailValidator struct{}

func (emailValidator) Kind() ValidatorKind { return KindEmail }

func (emailValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	s = strings.ToLower(s)
	if !emailPattern.MatchString(s) {
		return "", fmt.Errorf("invalid email format")
	}
	return s, nil
}

// ---- phone ----

// phoneCharset admits digits plus the formatting characters people type
// into phone columns.
var phoneCharset = regexp.MustCompile(`^[0-9\s\-.()+]+$`)

type phoneValidator struct{}

func (phoneValidator) Kind() ValidatorKind { return KindPhone }

func (phoneValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	if !phoneCharset.MatchString(s) {
		return "", fmt.Errorf("phone number contains invalid characters")
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	// Mobile numbers sometimes carry the country prefix.
	if len(digits) == 12 && strings.HasPrefix(digits, "57") {
		digits = digits[2:]
	}
	if len(digits) != 7 && len(digits) != 10 {
		return "", fmt.Errorf("phone number must have 7 or 10 digits")
	}
	return digits, nil
}

// ---- percentage ----

type percentValidator struct {
	p Params
}

func (percentValidator) Kind() ValidatorKind { return KindPercent }

func (v percentValidator) Validate(raw string) (string, error) {
	s, err := prepare(raw)
	if err != nil {
		return "", err
	}
	f, err := parseFloatValue(s)
	if err != nil {
		return "", err
	}
	lo, hi := 0.0, 100.0
	if v.p.Min != nil {
		lo = *v.p.Min
	}
	if v.p.Max != nil {
		hi = *v.p.Max
	}
	if f < lo || f > hi {
		return "", fmt.Errorf("percentage outside %s-%s", formatBound(lo), formatBound(hi))
	}
	return formatFloatValue(f), nil
}
