package core

import (
	"strings"
	"testing"
)

func testSchema(project, module string) *Schema {
	return NewSchema(project, module,
		[]CanonicalHeader{
			{Name: "NIT", Required: true, Kind: KindNIT},
			{Name: "OBSERVACIONES"},
		}, nil)
}

// ----------------------------------------------------------------------------
// SchemaRegistry Tests
// ----------------------------------------------------------------------------

func TestSchemaRegistry_RegisterAndGet(t *testing.T) {
	reg := NewSchemaRegistry()

	if err := reg.Register(testSchema("DIAN", "notificaciones")); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	s, ok := reg.Get("DIAN", "notificaciones")
	if !ok {
		t.Fatal("Get returned false for a registered schema")
	}
	if s.Key() != "DIAN/notificaciones" {
		t.Errorf("Key() = %q, want %q", s.Key(), "DIAN/notificaciones")
	}

	if _, ok := reg.Get("DIAN", "inexistente"); ok {
		t.Error("Get returned true for an unregistered module")
	}
	if _, ok := reg.Get("SENA", "notificaciones"); ok {
		t.Error("Get returned true for an unregistered project")
	}
}

func TestSchemaRegistry_DuplicateRegistration(t *testing.T) {
	reg := NewSchemaRegistry()

	if err := reg.Register(testSchema("DIAN", "pqr")); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	err := reg.Register(testSchema("DIAN", "pqr"))
	if err == nil {
		t.Fatal("second Register should return an error")
	}
	if !IsConfigurationError(err) {
		t.Errorf("duplicate registration error = %T, want ConfigurationError", err)
	}
	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("error = %q, want mention of already registered", err)
	}
}

func TestSchemaRegistry_RegisterNil(t *testing.T) {
	reg := NewSchemaRegistry()
	if err := reg.Register(nil); err == nil {
		t.Error("Register(nil) should return an error")
	}
}

func TestSchemaRegistry_RegisterInvalidSchema(t *testing.T) {
	reg := NewSchemaRegistry()
	err := reg.Register(NewSchema("DIAN", "pqr", nil, nil))
	if err == nil {
		t.Fatal("Register should reject an invalid schema")
	}
	if !IsConfigurationError(err) {
		t.Errorf("error = %T, want ConfigurationError", err)
	}
}

func TestSchemaRegistry_ProjectDefault(t *testing.T) {
	reg := NewSchemaRegistry()
	reg.MustRegister(testSchema("BPM", ""))

	s, ok := reg.Get("BPM", "")
	if !ok {
		t.Fatal("Get with empty module should resolve the project default")
	}
	if s.Key() != "BPM/" {
		t.Errorf("Key() = %q, want %q", s.Key(), "BPM/")
	}

	if _, ok := reg.Get("BPM", "fiscalizacion"); ok {
		t.Error("a named module should not fall back to the project default")
	}
}

func TestSchemaRegistry_MustRegisterPanics(t *testing.T) {
	reg := NewSchemaRegistry()
	reg.MustRegister(testSchema("DIAN", "pqr"))

	defer func() {
		if recover() == nil {
			t.Error("MustRegister should panic on duplicate registration")
		}
	}()
	reg.MustRegister(testSchema("DIAN", "pqr"))
}

func TestSchemaRegistry_AllSorted(t *testing.T) {
	reg := NewSchemaRegistry()
	reg.MustRegister(testSchema("UGPP", "aportes"))
	reg.MustRegister(testSchema("DIAN", "pqr"))
	reg.MustRegister(testSchema("DIAN", "notificaciones"))
	reg.MustRegister(testSchema("COLJUEGOS", "pqr"))

	all := reg.All()
	want := []string{
		"COLJUEGOS/pqr",
		"DIAN/notificaciones",
		"DIAN/pqr",
		"UGPP/aportes",
	}

	if len(all) != len(want) {
		t.Fatalf("All returned %d schemas, want %d", len(all), len(want))
	}
	for i, s := range all {
		if s.Key() != want[i] {
			t.Errorf("All[%d] = %q, want %q", i, s.Key(), want[i])
		}
	}
}

func TestSchemaRegistry_ByProject(t *testing.T) {
	reg := NewSchemaRegistry()
	reg.MustRegister(testSchema("DIAN", "pqr"))
	reg.MustRegister(testSchema("DIAN", "notificaciones"))
	reg.MustRegister(testSchema("UGPP", "aportes"))

	dian := reg.ByProject("DIAN")
	if len(dian) != 2 {
		t.Fatalf("ByProject(DIAN) returned %d schemas, want 2", len(dian))
	}
	if dian[0].ModuleName != "notificaciones" || dian[1].ModuleName != "pqr" {
		t.Errorf("ByProject(DIAN) modules = %q, %q; want sorted by module",
			dian[0].ModuleName, dian[1].ModuleName)
	}

	if got := reg.ByProject("SENA"); len(got) != 0 {
		t.Errorf("ByProject(SENA) = %v, want empty", got)
	}
}

func TestSchemaRegistry_Projects(t *testing.T) {
	reg := NewSchemaRegistry()
	reg.MustRegister(testSchema("UGPP", "aportes"))
	reg.MustRegister(testSchema("DIAN", "pqr"))
	reg.MustRegister(testSchema("DIAN", "notificaciones"))

	got := reg.Projects()
	want := []string{"DIAN", "UGPP"}
	if len(got) != len(want) {
		t.Fatalf("Projects = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Projects[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if reg.Len() != 3 {
		t.Errorf("Len = %d, want 3", reg.Len())
	}
}

// ----------------------------------------------------------------------------
// Schema Tests
// ----------------------------------------------------------------------------

func TestSchema_Validate(t *testing.T) {
	tests := []struct {
		name    string
		schema  *Schema
		wantErr string // substring, empty means valid
	}{
		{
			name:   "valid schema",
			schema: testSchema("DIAN", "pqr"),
		},
		{
			name:   "empty module is the project default",
			schema: NewSchema("BPM", "", []CanonicalHeader{{Name: "NIT"}}, nil),
		},
		{
			name:    "missing project code",
			schema:  NewSchema("", "pqr", []CanonicalHeader{{Name: "NIT"}}, nil),
			wantErr: "project code is required",
		},
		{
			name:    "no columns",
			schema:  NewSchema("DIAN", "pqr", nil, nil),
			wantErr: "declares no columns",
		},
		{
			name: "empty column name",
			schema: NewSchema("DIAN", "pqr",
				[]CanonicalHeader{{Name: ""}}, nil),
			wantErr: "empty name",
		},
		{
			name: "column names collide after normalization",
			schema: NewSchema("DIAN", "pqr",
				[]CanonicalHeader{
					{Name: "NIT CC"},
					{Name: "NIT/CC"},
				}, nil),
			wantErr: "collides with column NIT CC",
		},
		{
			name: "unknown validator kind",
			schema: NewSchema("DIAN", "pqr",
				[]CanonicalHeader{{Name: "NIT", Kind: "frequency"}}, nil),
			wantErr: "unknown validator kind frequency",
		},
		{
			name: "choice without value list key",
			schema: NewSchema("DIAN", "pqr",
				[]CanonicalHeader{{Name: "ESTADO", Kind: KindChoice}}, nil),
			wantErr: "needs a value list key",
		},
		{
			name: "synonym points nowhere",
			schema: NewSchema("DIAN", "pqr",
				[]CanonicalHeader{{Name: "NIT"}},
				map[string]string{"RUT": "IDENTIFICACION"}),
			wantErr: "undeclared column IDENTIFICACION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.schema.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate returned error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate = nil, want error containing %q", tt.wantErr)
			}
			if !IsConfigurationError(err) {
				t.Errorf("error = %T, want ConfigurationError", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestNewSchema_NormalizesSynonymKeys(t *testing.T) {
	s := NewSchema("DIAN", "pqr",
		[]CanonicalHeader{{Name: "NO_ACTO"}},
		map[string]string{"No. Acto": "NO_ACTO"})

	if got, ok := s.Synonyms["NO_ACTO"]; !ok || got != "NO_ACTO" {
		t.Errorf("Synonyms[NO_ACTO] = %q, %v; want NO_ACTO, true", got, ok)
	}
	if _, ok := s.Synonyms["No. Acto"]; ok {
		t.Error("raw synonym spelling should not remain as a key")
	}
}

func TestSchema_Header(t *testing.T) {
	s := testSchema("DIAN", "pqr")

	h, ok := s.Header("NIT")
	if !ok {
		t.Fatal("Header(NIT) returned false")
	}
	if h.Kind != KindNIT {
		t.Errorf("Header(NIT).Kind = %q, want %q", h.Kind, KindNIT)
	}

	if _, ok := s.Header("INEXISTENTE"); ok {
		t.Error("Header returned true for an undeclared column")
	}
}

func TestSchema_ChoiceKeys(t *testing.T) {
	s := NewSchema("DIAN", "pqr",
		[]CanonicalHeader{
			{Name: "ESTADO", Kind: KindChoice, Params: Params{FieldKey: "estado_pqr"}},
			{Name: "TIPO", Kind: KindChoice, Params: Params{FieldKey: "tipo_pqr"}},
			{Name: "ESTADO_FINAL", Kind: KindChoice, Params: Params{FieldKey: "estado_pqr"}},
			{Name: "NIT", Kind: KindNIT},
		}, nil)

	got := s.ChoiceKeys()
	want := []string{"estado_pqr", "tipo_pqr"}
	if len(got) != len(want) {
		t.Fatalf("ChoiceKeys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ChoiceKeys[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
