// errors.go provides the fatal error kind for schema and value-list
// misconfiguration. Cell-level validation failures are not errors in this
// sense; they travel as ErrorRecord values in the error table.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigurationError reports a schema or value-list problem that makes a
// session unrunnable: unknown project/module, a field bound to an unknown
// validator kind, a choice field with no list key. It is always raised
// before any row is processed, so a misconfigured schema never produces
// partial output.
type ConfigurationError struct {
	Project string
	Module  string
	Field   string // empty when the problem is not tied to one field
	Reason  string
}

func (e *ConfigurationError) Error() string {
	scope := e.Project
	if e.Module != "" {
		scope += "/" + e.Module
	}
	if e.Field != "" {
		return fmt.Sprintf("configuration error in %s, field %s: %s", scope, e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration error in %s: %s", scope, e.Reason)
}

// IsConfigurationError reports whether err is (or wraps) a
// ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// MissingColumnsError is returned by Process when Options.StrictHeaders
// is set and required columns have no match in the input header row.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}
