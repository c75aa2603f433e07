package projects

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/LFQuintero/excelsior/core"
	"github.com/LFQuintero/excelsior/tabular"
	"github.com/LFQuintero/excelsior/values"
)

// TestSchemas_Valid runs every agency constructor through schema
// validation, so a bad column or a synonym pointing at a renamed column
// fails here instead of at process start.
func TestSchemas_Valid(t *testing.T) {
	schemas := []*core.Schema{
		DIANNotificaciones(),
		DIANDisciplinarios(),
		DIANPQR(),
		ColjuegosDisciplinarios(),
		ColjuegosPQR(),
		UGPPAportes(),
		UGPPDisciplinarios(),
		BPM(),
	}

	for _, s := range schemas {
		t.Run(s.Key(), func(t *testing.T) {
			if err := s.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
			if s.Label == "" {
				t.Error("bundled schema has no label")
			}
		})
	}
}

func TestRegister(t *testing.T) {
	reg := core.NewSchemaRegistry()
	Register(reg)

	want := []string{
		"BPM/",
		"COLJUEGOS/disciplinarios",
		"COLJUEGOS/pqr",
		"DIAN/disciplinarios",
		"DIAN/notificaciones",
		"DIAN/pqr",
		"UGPP/aportes",
		"UGPP/disciplinarios",
	}

	if reg.Len() != len(want) {
		t.Errorf("Len() = %d, want %d", reg.Len(), len(want))
	}
	var got []string
	for _, s := range reg.All() {
		got = append(got, s.Key())
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("All() keys = %v, want %v", got, want)
	}
}

// TestChoiceKeysHaveBuiltinLists checks that every value-list key the
// schemas reference resolves against the built-in catalog, so a
// source-free deployment still validates those columns. The geography
// keys are the deliberate exception: their catalogs live only in
// external sources, and without one those columns accept all values.
func TestChoiceKeysHaveBuiltinLists(t *testing.T) {
	degraded := map[string]bool{
		"departamento": true,
		"ciudad":       true,
	}

	reg := core.NewSchemaRegistry()
	Register(reg)
	builtin := values.Builtin()

	for _, s := range reg.All() {
		for _, key := range s.ChoiceKeys() {
			_, err := builtin.Load(context.Background(), key)
			if degraded[key] {
				if !errors.Is(err, values.ErrNotFound) {
					t.Errorf("%s: key %s should stay out of the built-in catalog", s.Key(), key)
				}
				continue
			}
			if err != nil {
				t.Errorf("%s: key %s not in built-in catalog: %v", s.Key(), key, err)
			}
		}
	}
}

// columnFor returns the input column index the plan assigned to the
// named canonical column.
func columnFor(t *testing.T, s *core.Schema, plan *core.ReconciliationPlan, name string) int {
	t.Helper()
	for i, h := range s.Headers {
		if h.Name == name {
			return plan.ColumnOrder[i]
		}
	}
	t.Fatalf("schema %s does not declare %s", s.Key(), name)
	return 0
}

func TestDIANNotificaciones_LegacySpellings(t *testing.T) {
	s := DIANNotificaciones()
	plan := core.Reconcile(s, []string{"PIA", "AÑO", "MUNICIPIO", "NOMBRE_DEPTO"})

	if got := columnFor(t, s, plan, "PLAN_IDENTIF_ACTO"); got != 0 {
		t.Errorf("PLAN_IDENTIF_ACTO from input %d, want 0", got)
	}
	if got := columnFor(t, s, plan, "ANO_CALENDARIO"); got != 1 {
		t.Errorf("ANO_CALENDARIO from input %d, want 1", got)
	}
	// Legacy files label the municipality code column "MUNICIPIO", so
	// that spelling lands on the code column and the name column stays
	// absent.
	if got := columnFor(t, s, plan, "MUNI_CODIGO_MUNICI"); got != 2 {
		t.Errorf("MUNI_CODIGO_MUNICI from input %d, want 2", got)
	}
	if got := columnFor(t, s, plan, "MUNICIPIO"); got != core.Absent {
		t.Errorf("MUNICIPIO from input %d, want Absent", got)
	}
	if got := columnFor(t, s, plan, "DEPARTAMENTO"); got != 3 {
		t.Errorf("DEPARTAMENTO from input %d, want 3", got)
	}
}

func TestBPM_HeaderSpellings(t *testing.T) {
	s := BPM()
	plan := core.Reconcile(s, []string{
		"Orden",
		"Tiene Recurso?",
		"# Empleados",
		"No. CC o NIT Aportante",
		"Migrado",
	})

	wants := []struct {
		canonical string
		input     int
	}{
		{"ORDEN", 0},
		{"TIENE_RECURSO", 1},
		{"#_EMPLEADOS", 2},
		{"NO_CC_O_NIT_APORTANTE", 3},
		{"MIGRADO_SI_NO", 4},
	}
	for _, w := range wants {
		if got := columnFor(t, s, plan, w.canonical); got != w.input {
			t.Errorf("%s from input %d, want %d", w.canonical, got, w.input)
		}
	}
}

// TestDIANPQR_Process runs a PQR row end to end: synonym headers, the
// built-in catalogs, check digit computation, and pass-through columns.
func TestDIANPQR_Process(t *testing.T) {
	reg := core.NewSchemaRegistry()
	Register(reg)
	logger := slog.New(slog.DiscardHandler)
	e := core.NewEngine(reg, values.NewRegistry(values.Builtin(), logger), logger, core.Options{})

	table := tabular.New(
		[]string{
			"RADICADO", "TIPO_PQR", "ESTADO", "Fecha Radicación",
			"FECHA_RESPUESTA", "NIT", "RAZON_SOCIAL", "CORREO",
			"TELEFONO", "DESCRIPCION", "FUNCIONARIO_ASIGNADO",
		},
		[][]string{
			{
				"PQR-2024-0001", "Queja", "EN TRAMITE", "15/01/2024",
				"N/A", "900123456", "Operadores del Caribe S.A.S.", "CONTACTO@Caribe.com.co",
				"(601) 555-1234", " demora en el trámite ", "Ana Pérez",
			},
		})

	res, err := e.Process(context.Background(), table, "DIAN", "pqr")
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}

	want := []string{
		"PQR-2024-0001",
		"queja",      // folded to the catalog spelling
		"en trámite", // accent restored from the catalog
		"2024-01-15",
		"", // null sentinel cleared
		"900123456-8",
		"Operadores del Caribe S.A.S.",
		"contacto@caribe.com.co",
		"6015551234",
		" demora en el trámite ", // pass-through column, untouched
		"Ana Pérez",
	}
	if !reflect.DeepEqual(res.Cleaned.Rows[0], want) {
		t.Errorf("row = %q, want %q", res.Cleaned.Rows[0], want)
	}

	if res.Summary.TotalErrors != 0 {
		t.Errorf("TotalErrors = %d, want 0; records: %+v", res.Summary.TotalErrors, res.Errors)
	}
	if len(res.Summary.MissingRequired) != 0 {
		t.Errorf("MissingRequired = %v, want none", res.Summary.MissingRequired)
	}
	if len(res.Summary.Unmatched) != 0 {
		t.Errorf("Unmatched = %v, want none", res.Summary.Unmatched)
	}
}

// TestUGPPAportes_Process covers the percentage validator and the money
// columns on a contribution row.
func TestUGPPAportes_Process(t *testing.T) {
	reg := core.NewSchemaRegistry()
	Register(reg)
	logger := slog.New(slog.DiscardHandler)
	e := core.NewEngine(reg, values.NewRegistry(values.Builtin(), logger), logger, core.Options{})

	table := tabular.New(
		[]string{
			"EXPEDIENTE", "FECHA_RADICACION", "TIPO_PROCESO", "ESTADO_PROCESO",
			"NIT", "REGIMEN", "SALARIO", "%_APORTE", "VALOR_APORTE", "PERIODO_APORTE",
		},
		[][]string{
			{
				"UGPP-2024-0099", "2024-03-01", "Administrativo", "tramite",
				"800197268-4", "Prima Media", "$2.500.000,00", "16%", "400000", "2024-02",
			},
		})

	res, err := e.Process(context.Background(), table, "UGPP", "aportes")
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if res.Summary.TotalErrors != 0 {
		t.Fatalf("TotalErrors = %d; records: %+v", res.Summary.TotalErrors, res.Errors)
	}

	row := res.Cleaned.Rows[0]
	checks := []struct {
		canonical string
		want      string
	}{
		{"NUMERO_EXPEDIENTE", "UGPP-2024-0099"},
		{"TIPO_PROCESO", "administrativo"},
		{"ESTADO_PROCESO", "en trámite"}, // replacement spelling
		{"NIT_EMPRESA", "800197268-4"},
		{"REGIMEN_PENSIONAL", "régimen de prima media"},
		{"SALARIO_BASE", "2500000.0"},
		{"PORCENTAJE_APORTE", "16.0"},
		{"VALOR_APORTE", "400000.0"},
		{"PERIODO_APORTE", "2024-02"},
	}
	s := UGPPAportes()
	for _, c := range checks {
		idx := -1
		for i, h := range s.Headers {
			if h.Name == c.canonical {
				idx = i
				break
			}
		}
		if idx < 0 {
			t.Fatalf("schema does not declare %s", c.canonical)
		}
		if row[idx] != c.want {
			t.Errorf("%s = %q, want %q", c.canonical, row[idx], c.want)
		}
	}
}
