// Package core implements header reconciliation and cell validation for
// agency reporting tables.
//
// # Error Codes Reference
//
// This file defines the reviewer-facing error messages with codes for
// support reference. Reason strings inside the engine stay in English
// for logs; the messages here are what analysts at the agencies see, so
// they are in Spanish. When a reviewer reports a code, look it up here
// to find the patterns that trigger it and the suggested action.
//
// Error codes are grouped by category:
//
//	VAL001-VAL099  cell validation (dates, numbers, tax ids, lists)
//	COL001-COL099  header reconciliation
//	CFG001-CFG099  schema and value-list configuration
//	FILE001-FILE099  table structure
//	PRC001-PRC099  processing lifecycle (cancellation, timeout)
//	ERR000         fallback when no pattern matches
//
// Patterns are matched case-insensitively with strings.Contains and the
// first match wins, so more specific patterns come before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage carries reviewer-facing error information with actionable
// guidance.
type UserMessage struct {
	Message string // what happened, in the reviewer's language
	Action  string // what to do about it
	Code    string // error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. The first matching pattern wins, so order matters: more
// specific patterns before general ones, and multiple patterns can map
// to the same code.
var errorPatterns = []errorPattern{
	// =========================================================================
	// Cell Validation (VAL001-VAL012)
	// Patterns come from the validator reason strings.
	// =========================================================================
	{
		pattern: "unrecognized date",
		msg: UserMessage{
			Message: "Formato de fecha no reconocido",
			Action:  "Use el formato AAAA-MM-DD o DD/MM/AAAA",
			Code:    "VAL001",
		},
	},
	{
		pattern: "not a whole number",
		msg: UserMessage{
			Message: "El valor debe ser un número entero",
			Action:  "Elimine los decimales o corrija el valor",
			Code:    "VAL002",
		},
	},
	{
		pattern: "invalid integer format",
		msg: UserMessage{
			Message: "El valor debe ser un número entero",
			Action:  "Elimine los decimales o corrija el valor",
			Code:    "VAL002",
		},
	},
	{
		pattern: "invalid number format",
		msg: UserMessage{
			Message: "Formato de número inválido",
			Action:  "Retire símbolos de moneda y use un formato decimal estándar",
			Code:    "VAL003",
		},
	},
	{
		pattern: "contains non-numeric characters",
		msg: UserMessage{
			Message: "El valor contiene caracteres no numéricos",
			Action:  "Retire letras y símbolos del valor",
			Code:    "VAL003",
		},
	},
	{
		pattern: "below minimum",
		msg: UserMessage{
			Message: "Valor fuera del rango permitido",
			Action:  "Verifique los límites definidos para esta columna",
			Code:    "VAL004",
		},
	},
	{
		pattern: "above maximum",
		msg: UserMessage{
			Message: "Valor fuera del rango permitido",
			Action:  "Verifique los límites definidos para esta columna",
			Code:    "VAL004",
		},
	},
	{
		pattern: "check digit",
		msg: UserMessage{
			Message: "El dígito de verificación del NIT no corresponde",
			Action:  "Verifique el NIT contra el RUT de la entidad",
			Code:    "VAL005",
		},
	},
	{
		pattern: "tax id",
		msg: UserMessage{
			Message: "NIT inválido",
			Action:  "El NIT debe tener entre 8 y 15 dígitos, sin letras",
			Code:    "VAL006",
		},
	},
	{
		pattern: "not an admissible value",
		msg: UserMessage{
			Message: "El valor no está en la lista permitida",
			Action:  "Consulte los valores admisibles para esta columna",
			Code:    "VAL007",
		},
	},
	{
		pattern: "shorter than minimum length",
		msg: UserMessage{
			Message: "El texto no cumple la longitud permitida",
			Action:  "Revise la longitud mínima y máxima de la columna",
			Code:    "VAL008",
		},
	},
	{
		pattern: "longer than maximum length",
		msg: UserMessage{
			Message: "El texto no cumple la longitud permitida",
			Action:  "Revise la longitud mínima y máxima de la columna",
			Code:    "VAL008",
		},
	},
	{
		pattern: "not a recognized boolean",
		msg: UserMessage{
			Message: "El valor debe ser SI o NO",
			Action:  "Use SI o NO en esta columna",
			Code:    "VAL009",
		},
	},
	{
		pattern: "invalid email format",
		msg: UserMessage{
			Message: "Correo electrónico inválido",
			Action:  "Verifique el formato usuario@dominio",
			Code:    "VAL010",
		},
	},
	{
		pattern: "phone number",
		msg: UserMessage{
			Message: "Número de teléfono inválido",
			Action:  "Use 7 dígitos para fijos o 10 para celulares",
			Code:    "VAL011",
		},
	},
	{
		pattern: "percentage outside",
		msg: UserMessage{
			Message: "Porcentaje fuera de rango",
			Action:  "Use un valor entre 0 y 100",
			Code:    "VAL012",
		},
	},

	// =========================================================================
	// Header Reconciliation (COL001)
	// =========================================================================
	{
		pattern: "missing required columns",
		msg: UserMessage{
			Message: "Faltan columnas obligatorias en el archivo",
			Action:  "Compare los encabezados del archivo con la plantilla del módulo",
			Code:    "COL001",
		},
	},

	// =========================================================================
	// Configuration (CFG001-CFG004)
	// These never depend on file content; they block the whole pass.
	// =========================================================================
	{
		pattern: "no schema registered",
		msg: UserMessage{
			Message: "El proyecto o módulo no está configurado",
			Action:  "Verifique el código de proyecto y el nombre del módulo",
			Code:    "CFG001",
		},
	},
	{
		pattern: "unknown validator kind",
		msg: UserMessage{
			Message: "La configuración del módulo tiene un tipo de validación desconocido",
			Action:  "Reporte este código al administrador del sistema",
			Code:    "CFG002",
		},
	},
	{
		pattern: "needs a value list key",
		msg: UserMessage{
			Message: "Una columna de lista no tiene lista de valores asignada",
			Action:  "Reporte este código al administrador del sistema",
			Code:    "CFG003",
		},
	},
	{
		pattern: "configuration error",
		msg: UserMessage{
			Message: "La configuración del módulo es inválida",
			Action:  "Reporte este código al administrador del sistema",
			Code:    "CFG004",
		},
	},

	// =========================================================================
	// Table Structure (FILE001)
	// =========================================================================
	{
		pattern: "no header row",
		msg: UserMessage{
			Message: "El archivo no tiene fila de encabezados",
			Action:  "La primera fila debe contener los nombres de las columnas",
			Code:    "FILE001",
		},
	},
	{
		pattern: "table is nil",
		msg: UserMessage{
			Message: "El archivo no contiene datos",
			Action:  "Cargue un archivo con encabezados y filas de datos",
			Code:    "FILE001",
		},
	},

	// =========================================================================
	// Processing Lifecycle (PRC001-PRC002)
	// =========================================================================
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "El procesamiento fue cancelado",
			Action:  "Inicie el procesamiento nuevamente cuando esté listo",
			Code:    "PRC001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "El procesamiento excedió el tiempo límite",
			Action:  "Intente con un archivo más pequeño",
			Code:    "PRC002",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
// Support staff should check the logs for the original technical error
// when a reviewer reports ERR000.
var defaultMessage = UserMessage{
	Message: "Ocurrió un error inesperado",
	Action:  "Intente nuevamente o contacte al área de soporte",
	Code:    "ERR000",
}

// MapError converts a technical error to a reviewer-facing message.
// It searches the known patterns case-insensitively and returns the
// first match, or the ERR000 fallback when nothing matches.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Código: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Código: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern and is safe
// to show as-is. The ERR000 fallback does not count: for those, log the
// technical error and show a generic notice instead.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	msg := MapError(err)
	return msg.Code != defaultMessage.Code
}

// UserError pairs a technical error with its mapped reviewer message.
// The original error stays available for logging via Unwrap.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps a technical error into a UserError.
// Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
