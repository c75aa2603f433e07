package projects

import "github.com/LFQuintero/excelsior/core"

func registerUGPP(reg *core.SchemaRegistry) {
	reg.MustRegister(UGPPAportes())
	reg.MustRegister(UGPPDisciplinarios())
}

// ugppBase is the expediente block shared by every UGPP module.
func ugppBase() []core.CanonicalHeader {
	return []core.CanonicalHeader{
		{Name: "NUMERO_EXPEDIENTE", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 1, MaxLen: 50}},
		{Name: "FECHA_RADICACION", Required: true, Kind: core.KindDate},
		{Name: "TIPO_PROCESO", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_proceso"}},
		{Name: "ESTADO_PROCESO", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_proceso"}},
		{Name: "NIT_EMPRESA", Required: true, Kind: core.KindNIT},
	}
}

// UGPPAportes is the contract for UGPP pension-contribution audits. It
// carries the affiliation and payment columns and is the only module
// using the percentage validator.
func UGPPAportes() *core.Schema {
	headers := ugppBase()
	headers = append(headers,
		core.CanonicalHeader{Name: "RAZON_SOCIAL", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
		core.CanonicalHeader{Name: "TELEFONO_EMPRESA", Kind: core.KindPhone},
		core.CanonicalHeader{Name: "EMAIL_EMPRESA", Kind: core.KindEmail},
		core.CanonicalHeader{Name: "REGIMEN_PENSIONAL", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "regimen_pensional"}},
		core.CanonicalHeader{Name: "TIPO_AFILIACION", Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_afiliacion"}},
		core.CanonicalHeader{Name: "ESTADO_AFILIACION", Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_afiliacion"}},
		core.CanonicalHeader{Name: "FECHA_AFILIACION", Kind: core.KindDate},
		core.CanonicalHeader{Name: "SALARIO_BASE", Required: true, Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
		core.CanonicalHeader{Name: "PORCENTAJE_APORTE", Required: true, Kind: core.KindPercent},
		core.CanonicalHeader{Name: "VALOR_APORTE", Required: true, Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
		core.CanonicalHeader{Name: "PERIODO_APORTE", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 6, MaxLen: 7}},
		core.CanonicalHeader{Name: "ESTADO_PAGO", Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_pago"}},
		core.CanonicalHeader{Name: "FECHA_PAGO", Kind: core.KindDate},
		core.CanonicalHeader{Name: "VALOR_PAGADO", Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
		core.CanonicalHeader{Name: "CONCEPTO_PAGO", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 100}},
		core.CanonicalHeader{Name: "MEDIO_PAGO", Kind: core.KindChoice, Params: core.Params{FieldKey: "medio_pago"}},
		core.CanonicalHeader{Name: "REFERENCIA_PAGO", Kind: core.KindString, Params: core.Params{MinLen: 1, MaxLen: 50}},
		core.CanonicalHeader{Name: "OBSERVACIONES", Kind: core.KindString, Params: core.Params{MaxLen: 1000}},
	)
	s := core.NewSchema("UGPP", "aportes", headers,
		map[string]string{
			"EXPEDIENTE": "NUMERO_EXPEDIENTE",
			"NIT":        "NIT_EMPRESA",
			"EMPRESA":    "RAZON_SOCIAL",
			"TELEFONO":   "TELEFONO_EMPRESA",
			"EMAIL":      "EMAIL_EMPRESA",
			"CORREO":     "EMAIL_EMPRESA",
			"REGIMEN":    "REGIMEN_PENSIONAL",
			"%_APORTE":   "PORCENTAJE_APORTE",
			"SALARIO":    "SALARIO_BASE",
		},
	)
	s.Label = "Aportes pensionales"
	return s
}

// UGPPDisciplinarios is the contract for UGPP disciplinary sanction
// reports.
func UGPPDisciplinarios() *core.Schema {
	headers := ugppBase()
	headers = append(headers,
		core.CanonicalHeader{Name: "FECHA_INICIO", Required: true, Kind: core.KindDate},
		core.CanonicalHeader{Name: "FECHA_FIN", Required: true, Kind: core.KindDate},
		core.CanonicalHeader{Name: "TIPO_SANCION", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_sancion"}},
		core.CanonicalHeader{Name: "CUANTIA_SANCION", Required: true, Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
		core.CanonicalHeader{Name: "RAZON_SOCIAL", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
		core.CanonicalHeader{Name: "DESCRIPCION_PROCESO", Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 500}},
		core.CanonicalHeader{Name: "FUNCIONARIO_ASIGNADO", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 100}},
		core.CanonicalHeader{Name: "REFERENCIA_NORMATIVA", Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 200}},
		core.CanonicalHeader{Name: "OBSERVACIONES", Kind: core.KindString, Params: core.Params{MaxLen: 1000}},
	)
	s := core.NewSchema("UGPP", "disciplinarios", headers,
		map[string]string{
			"EXPEDIENTE": "NUMERO_EXPEDIENTE",
			"NIT":        "NIT_EMPRESA",
			"SANCION":    "TIPO_SANCION",
			"CUANTIA":    "CUANTIA_SANCION",
		},
	)
	s.Label = "Procesos disciplinarios"
	return s
}
