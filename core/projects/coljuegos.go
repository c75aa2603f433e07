package projects

import "github.com/LFQuintero/excelsior/core"

func registerColjuegos(reg *core.SchemaRegistry) {
	reg.MustRegister(ColjuegosDisciplinarios())
	reg.MustRegister(ColjuegosPQR())
}

// coljuegosBase is the expediente block shared by every COLJUEGOS
// module. Each module copies it and appends its own columns.
func coljuegosBase() []core.CanonicalHeader {
	return []core.CanonicalHeader{
		{Name: "NUMERO_EXPEDIENTE", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 1, MaxLen: 50}},
		{Name: "FECHA_RADICACION", Required: true, Kind: core.KindDate},
		{Name: "TIPO_PROCESO", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_proceso"}},
		{Name: "ESTADO_PROCESO", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_proceso"}},
		{Name: "DIRECCION_SECCIONAL", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "direccion_seccional"}},
	}
}

// coljuegosOperador holds the gambling-operator identity columns that
// appear in every COLJUEGOS export after the module-specific block.
func coljuegosOperador() []core.CanonicalHeader {
	return []core.CanonicalHeader{
		{Name: "NOMBRE_OPERADOR", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
		{Name: "NIT_OPERADOR", Kind: core.KindNIT},
		{Name: "DIRECCION_OPERADOR", Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 300}},
		{Name: "TELEFONO_OPERADOR", Kind: core.KindPhone},
		{Name: "EMAIL_OPERADOR", Kind: core.KindEmail},
		{Name: "REPRESENTANTE_LEGAL", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
		{Name: "DOCUMENTO_REPRESENTANTE", Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 20}},
		{Name: "TIPO_DOCUMENTO", Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_documento"}},
	}
}

// ColjuegosDisciplinarios is the contract for COLJUEGOS disciplinary
// sanction reports against gambling operators.
func ColjuegosDisciplinarios() *core.Schema {
	headers := coljuegosBase()
	headers = append(headers,
		core.CanonicalHeader{Name: "FECHA_INICIO", Required: true, Kind: core.KindDate},
		core.CanonicalHeader{Name: "FECHA_FIN", Required: true, Kind: core.KindDate},
		core.CanonicalHeader{Name: "TIPO_SANCION", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_sancion"}},
		core.CanonicalHeader{Name: "CUANTIA_SANCION", Required: true, Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
	)
	headers = append(headers, coljuegosOperador()...)
	headers = append(headers,
		core.CanonicalHeader{Name: "DESCRIPCION_PROCESO", Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 500}},
		core.CanonicalHeader{Name: "MOTIVO_PROCESO", Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 300}},
		core.CanonicalHeader{Name: "FUNCIONARIO_ASIGNADO", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 100}},
		core.CanonicalHeader{Name: "FECHA_ASIGNACION", Kind: core.KindDate},
		core.CanonicalHeader{Name: "FECHA_VENCIMIENTO", Kind: core.KindDate},
		core.CanonicalHeader{Name: "OBSERVACIONES", Kind: core.KindString, Params: core.Params{MaxLen: 1000}},
		core.CanonicalHeader{Name: "REFERENCIA_NORMATIVA", Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 200}},
		core.CanonicalHeader{Name: "DEPARTAMENTO", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 100}},
		core.CanonicalHeader{Name: "MUNICIPIO", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 100}},
		core.CanonicalHeader{Name: "TIPO_LICENCIA", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 100}},
		core.CanonicalHeader{Name: "NUMERO_LICENCIA", Kind: core.KindString, Params: core.Params{MinLen: 1, MaxLen: 50}},
		core.CanonicalHeader{Name: "FECHA_VENCIMIENTO_LICENCIA", Kind: core.KindDate},
		core.CanonicalHeader{Name: "ESTADO_LICENCIA", Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_licencia"}},
	)
	s := core.NewSchema("COLJUEGOS", "disciplinarios", headers,
		map[string]string{
			"EXPEDIENTE": "NUMERO_EXPEDIENTE",
			"SECCIONAL":  "DIRECCION_SECCIONAL",
			"NIT":        "NIT_OPERADOR",
			"OPERADOR":   "NOMBRE_OPERADOR",
			"SANCION":    "TIPO_SANCION",
			"CUANTIA":    "CUANTIA_SANCION",
		},
	)
	s.Label = "Procesos disciplinarios"
	return s
}

// ColjuegosPQR is the contract for COLJUEGOS citizen petitions.
func ColjuegosPQR() *core.Schema {
	headers := coljuegosBase()
	headers = append(headers,
		core.CanonicalHeader{Name: "TIPO_PQR", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_pqr"}},
		core.CanonicalHeader{Name: "ESTADO_PQR", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_pqr"}},
		core.CanonicalHeader{Name: "FECHA_RESPUESTA", Required: true, Kind: core.KindDate},
	)
	headers = append(headers, coljuegosOperador()...)
	headers = append(headers,
		core.CanonicalHeader{Name: "DESCRIPCION"},
		core.CanonicalHeader{Name: "OBSERVACIONES", Kind: core.KindString, Params: core.Params{MaxLen: 1000}},
	)
	s := core.NewSchema("COLJUEGOS", "pqr", headers,
		map[string]string{
			"EXPEDIENTE": "NUMERO_EXPEDIENTE",
			"SECCIONAL":  "DIRECCION_SECCIONAL",
			"NIT":        "NIT_OPERADOR",
			"ESTADO":     "ESTADO_PQR",
			"TIPO":       "TIPO_PQR",
		},
	)
	s.Label = "Peticiones, quejas y reclamos"
	return s
}
