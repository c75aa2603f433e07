// Package projects declares the column contracts for the agencies the
// pipeline serves. Each file covers one agency and exposes its module
// schemas as constructors; Register wires them all into a registry.
package projects

import "github.com/LFQuintero/excelsior/core"

// Register adds every agency schema to reg. It panics if any schema
// fails validation, so a wiring mistake surfaces at startup rather
// than on the first upload.
func Register(reg *core.SchemaRegistry) {
	registerDIAN(reg)
	registerColjuegos(reg)
	registerUGPP(reg)
	registerBPM(reg)
}
