// Package core implements header reconciliation and cell validation for
// agency reporting tables.
//
// This package is the heart of the cleaning pipeline, containing all domain
// logic independent of any I/O or transport layer. It can be driven by web
// handlers, batch jobs, or tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Schemas: Registered in a [SchemaRegistry], each [Schema] declares the
//     canonical columns for one (project, module) pair, with validator
//     assignments and synonyms for legacy header spellings.
//   - Engine: The main entry point. [Engine.Process] reconciles headers,
//     validates every cell, and returns a cleaned table with error records.
//   - Reconciliation: [Reconcile] maps an arbitrary input header row onto
//     the canonical column order, exactly once per table.
//   - Value lists: admissible values for choice columns, resolved through a
//     values.Registry with built-in fallbacks and a logged accept-all mode
//     when a list cannot be loaded.
//
// # Schema Registry
//
// Schemas are plain data. The bundled agency schemas live in core/projects;
// callers can register their own:
//
//	reg := core.NewSchemaRegistry()
//	reg.MustRegister(core.NewSchema("DIAN", "pqr",
//	    []core.CanonicalHeader{
//	        {Name: "NUMERO_RADICADO", Required: true},
//	        {Name: "NIT", Kind: core.KindNIT},
//	        {Name: "FECHA_RADICACION", Kind: core.KindDate},
//	    },
//	    map[string]string{"RADICADO": "NUMERO_RADICADO"}))
//
// # Processing
//
// [Engine.Process] runs one pass over an in-memory tabular.Table:
//
//  1. Resolve the schema for (project, module). Unknown pairs fail with a
//     [ConfigurationError] before any row is touched.
//  2. Load the value lists the schema's choice columns need, once.
//  3. Reconcile the input header row against the canonical columns.
//  4. Validate rows in input order, serially or through a bounded worker
//     pool when [Options.Workers] is set.
//
// A single invalid cell never stops the pass: the cell is cleared, an
// [ErrorRecord] is appended, and processing continues. Cancelling the
// context stops between rows and returns the rows finished so far.
//
// # Error Handling
//
// Technical errors are mapped to Spanish reviewer-facing messages using
// [MapError]. Each error category has a unique code for support reference:
//
//   - VAL001-VAL012: Cell validation (dates, numbers, tax ids, lists)
//   - COL001: Missing required columns
//   - CFG001-CFG004: Schema and value-list configuration
//   - FILE001: Table structure
//   - PRC001-PRC002: Cancellation and timeout
package core
