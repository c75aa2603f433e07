package core

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/LFQuintero/excelsior/logging"
	"github.com/LFQuintero/excelsior/tabular"
	"github.com/LFQuintero/excelsior/values"
)

// Options tunes an Engine. The zero value processes rows serially and
// keeps going when required columns are missing from the input.
type Options struct {
	// Workers is the number of rows validated concurrently.
	// Values below 2 select the serial path.
	Workers int

	// StrictHeaders makes Process fail before the first row when
	// required columns have no match in the input header. The default
	// mirrors the historical pipelines: absent columns become empty
	// output columns and the summary reports them.
	StrictHeaders bool
}

// Engine runs processing sessions against registered schemas. One
// Engine serves any number of concurrent Process calls; schemas,
// value lists and validators are all read-only during a pass.
type Engine struct {
	schemas *SchemaRegistry
	values  *values.Registry
	logger  *slog.Logger
	opts    Options
}

// NewEngine wires an engine. A nil value registry gets one backed by
// the built-in catalog; a nil logger gets slog.Default.
func NewEngine(schemas *SchemaRegistry, vals *values.Registry, logger *slog.Logger, opts Options) *Engine {
	if schemas == nil {
		schemas = NewSchemaRegistry()
	}
	if logger == nil {
		logger = slog.Default()
	}
	if vals == nil {
		vals = values.NewRegistry(nil, logger)
	}
	return &Engine{schemas: schemas, values: vals, logger: logger, opts: opts}
}

// Result is one finished processing pass: the cleaned table in
// canonical column order, the rejected-cell records, and the summary.
type Result struct {
	Cleaned *tabular.Table
	Errors  []ErrorRecord
	Summary Summary
}

// errorTableHeaders are the agency-facing column names of the error
// report sheet that ships next to the cleaned output.
var errorTableHeaders = []string{
	"FILA", "COLUMNA", "NUMERO_COLUMNA", "TIPO_ESPERADO", "VALOR", "ERROR",
}

// ErrorTable renders the error records as a table, one row per rejected
// cell, ready for the same writers as the cleaned table.
func (r *Result) ErrorTable() *tabular.Table {
	t := &tabular.Table{
		Headers: append([]string(nil), errorTableHeaders...),
		Rows:    make([][]string, 0, len(r.Errors)),
	}
	for _, rec := range r.Errors {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(rec.RowNumber),
			rec.ColumnName,
			strconv.Itoa(rec.ColumnNumber),
			rec.ExpectedType,
			rec.RawValue,
			rec.Reason,
		})
	}
	return t
}

// Process validates one decoded table against the schema registered for
// project and module. The cleaned table comes back in canonical column
// order with input row order preserved. An invalid cell never stops the
// pass: it becomes an empty output cell plus one error record. Process
// performs no file I/O.
//
// Configuration problems, an unknown schema or a validator that cannot
// be built, fail before the first row with a ConfigurationError. When
// ctx is cancelled mid-pass, Process stops between rows and returns the
// contiguous prefix of finished rows together with the context error;
// the summary counts only those rows.
func (e *Engine) Process(ctx context.Context, table *tabular.Table, project, module string) (*Result, error) {
	start := time.Now()
	if err := table.Validate(); err != nil {
		return nil, err
	}
	schema, ok := e.schemas.Get(project, module)
	if !ok {
		return nil, &ConfigurationError{
			Project: project,
			Module:  module,
			Reason:  "no schema registered",
		}
	}

	batchID := uuid.NewString()
	ctx = logging.ContextWithBatchID(ctx, batchID)
	logger := e.logger.With("batch_id", batchID, "project", project, "module", module)

	plan := Reconcile(schema, table.Headers)
	if len(plan.MissingRequired) > 0 {
		if e.opts.StrictHeaders {
			return nil, &MissingColumnsError{Columns: plan.MissingRequired}
		}
		logger.Warn("required columns missing from input",
			"columns", strings.Join(plan.MissingRequired, ", "))
	}
	if len(plan.Unmatched) > 0 {
		logger.Info("input columns not in schema",
			"columns", strings.Join(plan.Unmatched, ", "))
	}

	lists, err := e.loadChoiceLists(ctx, schema)
	if err != nil {
		return nil, err
	}
	columns, err := bindColumns(schema, plan, lists)
	if err != nil {
		return nil, err
	}

	logger.Info("processing started",
		"rows", len(table.Rows),
		"columns", len(schema.Headers))

	var (
		outRows [][]string
		outErrs [][]ErrorRecord
		limit   int
		runErr  error
	)
	if e.opts.Workers > 1 && len(table.Rows) > 1 {
		outRows, outErrs, limit, runErr = runParallel(ctx, columns, table.Rows, e.opts.Workers)
	} else {
		outRows, outErrs, limit, runErr = runSerial(ctx, columns, table.Rows)
	}

	headers := make([]string, len(schema.Headers))
	for i, h := range schema.Headers {
		headers[i] = h.Name
	}
	res := &Result{
		Cleaned: &tabular.Table{Headers: headers, Rows: make([][]string, 0, limit)},
	}
	res.Summary.MissingRequired = plan.MissingRequired
	res.Summary.Unmatched = plan.Unmatched

	width := len(table.Headers)
	for i := 0; i < limit; i++ {
		switch {
		case len(table.Rows[i]) < width:
			res.Summary.ShortRows++
		case len(table.Rows[i]) > width:
			res.Summary.LongRows++
		}
		res.Cleaned.Rows = append(res.Cleaned.Rows, outRows[i])
		if n := len(outErrs[i]); n > 0 {
			res.Summary.RowsWithErrors++
			res.Summary.TotalErrors += n
			res.Errors = append(res.Errors, outErrs[i]...)
		}
	}
	res.Summary.RowsProcessed = limit
	res.Summary.Duration = time.Since(start)

	if res.Summary.ShortRows > 0 || res.Summary.LongRows > 0 {
		logger.Warn("ragged rows in input",
			"short", res.Summary.ShortRows,
			"long", res.Summary.LongRows)
	}
	if runErr != nil {
		logger.Warn("processing stopped early",
			"rows_done", res.Summary.RowsProcessed,
			"error", runErr)
		return res, runErr
	}

	logger.Info("processing completed",
		"rows", res.Summary.RowsProcessed,
		"rows_with_errors", res.Summary.RowsWithErrors,
		"errors", res.Summary.TotalErrors,
		"duration_ms", time.Since(start).Milliseconds())
	return res, nil
}

// loadChoiceLists resolves every value list the schema references
// before the first row, so no validator blocks mid-pass. Keys operating
// in degraded accept-all mode come back as nil entries.
func (e *Engine) loadChoiceLists(ctx context.Context, schema *Schema) (map[string]*values.ValueList, error) {
	keys := schema.ChoiceKeys()
	if len(keys) == 0 {
		return nil, nil
	}
	lists := make(map[string]*values.ValueList, len(keys))
	for _, key := range keys {
		list, err := e.values.Values(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("loading value list %s: %w", key, err)
		}
		lists[key] = list
	}
	return lists, nil
}

func runSerial(ctx context.Context, columns []boundColumn, rows [][]string) ([][]string, [][]ErrorRecord, int, error) {
	outRows := make([][]string, len(rows))
	outErrs := make([][]ErrorRecord, len(rows))
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return outRows, outErrs, i, err
		}
		outRows[i], outErrs[i] = processRow(columns, row, i+1)
	}
	return outRows, outErrs, len(rows), nil
}

func runParallel(ctx context.Context, columns []boundColumn, rows [][]string, workers int) ([][]string, [][]ErrorRecord, int, error) {
	outRows := make([][]string, len(rows))
	outErrs := make([][]ErrorRecord, len(rows))
	done := make([]bool, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, row := range rows {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outRows[i], outErrs[i] = processRow(columns, row, i+1)
			done[i] = true
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		// The spawn loop may have stopped on a cancellation no worker
		// observed. gctx is always done once Wait returns, so consult
		// the parent context.
		err = ctx.Err()
	}
	if err != nil {
		// Keep the contiguous prefix of finished rows so the partial
		// output has no gaps.
		limit := 0
		for limit < len(rows) && done[limit] {
			limit++
		}
		return outRows, outErrs, limit, err
	}
	return outRows, outErrs, len(rows), nil
}
