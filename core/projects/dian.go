package projects

import "github.com/LFQuintero/excelsior/core"

func registerDIAN(reg *core.SchemaRegistry) {
	reg.MustRegister(DIANNotificaciones())
	reg.MustRegister(DIANDisciplinarios())
	reg.MustRegister(DIANPQR())
}

// DIANNotificaciones is the contract for DIAN act-notification reports,
// the widest module in the pipeline. Column order follows the agency
// reference layout for the consolidated yearly file.
func DIANNotificaciones() *core.Schema {
	s := core.NewSchema("DIAN", "notificaciones",
		[]core.CanonicalHeader{
			{Name: "PLAN_IDENTIF_ACTO", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(1)}},
			{Name: "CODIGO_ADMINISTRACION", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(1)}},
			{Name: "SECCIONAL", Kind: core.KindString},
			{Name: "CODIGO_DEPENDENCIA", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(1)}},
			{Name: "DEPENDENCIA", Kind: core.KindChoice, Params: core.Params{FieldKey: "dependencia"}},
			{Name: "ANO_CALENDARIO", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(2000), Max: core.Bound(2030)}},
			{Name: "CODIGO_ACTO", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(1)}},
			{Name: "DESCRIPCION_ACTO", Kind: core.KindString},
			{Name: "ANO_ACTO", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(2000), Max: core.Bound(2030)}},
			{Name: "CONSECUTIVO_ACTO", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(1)}},
			{Name: "FECHA_ACTO", Required: true, Kind: core.KindDate},
			{Name: "CUANTIA_ACTO", Required: true, Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
			{Name: "NIT", Required: true, Kind: core.KindNIT},
			{Name: "RAZON_SOCIAL", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
			{Name: "DIRECCION", Kind: core.KindString},
			{Name: "PLANILLA_REMISION", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 1}},
			{Name: "FECHA_PLANILLA_REMISION", Required: true, Kind: core.KindDate},
			{Name: "FUNCIONARIO_ENVIA", Kind: core.KindString},
			{Name: "FECHA_CITACION", Required: true, Kind: core.KindDate},
			{Name: "PLANILLA_CORR", Kind: core.KindString, Params: core.Params{MinLen: 1}},
			{Name: "FECHA_PLANILLA_CORR", Kind: core.KindDate},
			{Name: "FECHA_NOTIFICACION", Required: true, Kind: core.KindDate},
			{Name: "FECHA_EJECUTORIA", Kind: core.KindDate},
			{Name: "GUIA", Kind: core.KindString},
			{Name: "COD_ESTADO", Kind: core.KindString},
			{Name: "ESTADO_NOTIFICACION", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_notificacion"}},
			{Name: "COD_NOTIFICACION", Kind: core.KindString},
			{Name: "MEDIO_NOTIFICACION", Kind: core.KindChoice, Params: core.Params{FieldKey: "medio_notificacion"}},
			{Name: "NUMERO_EXPEDIENTE", Kind: core.KindString, Params: core.Params{MinLen: 1}},
			{Name: "TIPO_DOCUMENTO", Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_documento"}},
			{Name: "PERI_IMPUESTO", Kind: core.KindInteger},
			{Name: "PERI_PERIODO", Kind: core.KindInteger},
			{Name: "NOMBRE_APLICACION", Kind: core.KindString},
			{Name: "PAIS_COD_NUM_PAIS", Kind: core.KindInteger},
			{Name: "PAIS", Kind: core.KindString},
			{Name: "MUNI_CODIGO_DEPART", Kind: core.KindInteger},
			{Name: "DEPARTAMENTO", Kind: core.KindString},
			{Name: "MUNI_CODIGO_MUNICI", Kind: core.KindInteger},
			{Name: "MUNICIPIO", Kind: core.KindString},
			{Name: "REGIMEN", Kind: core.KindString},
			{Name: "FECHA_LEVANTE", Kind: core.KindDate},
			{Name: "MOTIVO_LEVANTE", Kind: core.KindString},
			{Name: "NORMATIVIDAD", Kind: core.KindString},
			{Name: "FUNCIONARIO_RECIBE", Kind: core.KindString},
			{Name: "PLANILLA_REMI_ARCHIVO", Kind: core.KindInteger},
			{Name: "FECHA_PLANILLA_REMI_ARCHIVO", Kind: core.KindDate},
		},
		map[string]string{
			"PIA":                 "PLAN_IDENTIF_ACTO",
			"SECC":                "SECCIONAL",
			"DEP":                 "CODIGO_DEPENDENCIA",
			"AÑO":                 "ANO_CALENDARIO",
			"COD_ACTO":            "CODIGO_ACTO",
			"DESCRIPCION":         "DESCRIPCION_ACTO",
			"CONSECUTIVO":         "CONSECUTIVO_ACTO",
			"CUANTIA":             "CUANTIA_ACTO",
			"PLANILLA_REMI":       "PLANILLA_REMISION",
			"COPL_PLANILLA_REMI":  "PLANILLA_REMISION",
			"COPL_PLANILLA_CORR":  "PLANILLA_CORR",
			"FECHA_PLANILLA_REMI": "FECHA_PLANILLA_REMISION",
			"NUMERO_DE_GUIA":      "GUIA",
			"ESTADO":              "ESTADO_NOTIFICACION",
			"COD_NOTI":            "COD_NOTIFICACION",
			"TIPO_DOC":            "TIPO_DOCUMENTO",
			"IMPUESTO":            "PERI_IMPUESTO",
			"PERIODO":             "PERI_PERIODO",
			// Legacy exports label the municipality code column with the
			// plain names, so those spellings land on the code columns.
			"DEPTO":        "MUNI_CODIGO_DEPART",
			"NOMBRE_DEPTO": "DEPARTAMENTO",
			"MUNICIPIO":    "MUNI_CODIGO_MUNICI",
		},
	)
	s.Label = "Notificaciones de actos administrativos"
	return s
}

// DIANDisciplinarios is the contract for DIAN disciplinary case files.
// Input files spell most columns the long way ("FECHA DE RADICACION");
// the synonym map folds them onto the short reference names.
func DIANDisciplinarios() *core.Schema {
	s := core.NewSchema("DIAN", "disciplinarios",
		[]core.CanonicalHeader{
			{Name: "NOMBRE_ARCHIVO", Required: true, Kind: core.KindString},
			{Name: "MES_REPORTE", Required: true, Kind: core.KindDate},
			{Name: "EXPEDIENTE", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 1}},
			{Name: "FECHA_RADICACION", Required: true, Kind: core.KindDate},
			{Name: "FECHA_HECHOS", Required: true, Kind: core.KindDate},
			{Name: "INDAGACION_PRELIMINAR", Required: true, Kind: core.KindDate},
			{Name: "INVESTIGACION_DISCIPLINARIA", Required: true, Kind: core.KindDate},
			{Name: "IMPLICADO", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
			{Name: "IDENTIFICACION", Required: true, Kind: core.KindNIT},
			{Name: "DEPARTAMENTO", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "departamento"}},
			{Name: "CIUDAD", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "ciudad"}},
			{Name: "DIRECCION_SECCIONAL_O_EQUIVALENTE", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "direccion_seccional"}},
			{Name: "DEPENDENCIA", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "dependencia"}},
			{Name: "PROCESO", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "proceso"}},
			{Name: "SUBPROCESO", Required: true, Kind: core.KindString},
			{Name: "PROCEDIMIENTO", Required: true, Kind: core.KindString},
			{Name: "CARGO", Required: true, Kind: core.KindString},
			{Name: "ORIGEN", Required: true, Kind: core.KindString},
			{Name: "CONDUCTA", Required: true, Kind: core.KindString},
			{Name: "ETAPA_PROCESAL", Required: true, Kind: core.KindString},
			{Name: "FECHA_FALLO", Required: true, Kind: core.KindDate},
			{Name: "SANCION_IMPUESTA", Required: true, Kind: core.KindString},
			{Name: "HECHO", Required: true},
			{Name: "DECISION", Required: true, Kind: core.KindString},
			{Name: "PROCESO_AFECTADO", Required: true, Kind: core.KindString},
			{Name: "SENALADOS_O_VINCULADOS", Required: true, Kind: core.KindString},
			{Name: "ADECUACION_TIPICA", Required: true, Kind: core.KindString},
			{Name: "ABOGADO", Required: true, Kind: core.KindString},
			{Name: "SENTIDO_DEL_FALLO", Required: true, Kind: core.KindString},
			{Name: "QUEJOSO", Required: true, Kind: core.KindString},
			{Name: "IDENTIFICACION_QUEJOSO", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 5, MaxLen: 20}},
			{Name: "TIPO_DE_PROCESO", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_proceso"}},
			{Name: "FECHA_PLIEGO_DE_CARGOS", Required: true, Kind: core.KindDate},
			{Name: "FECHA_CITACION", Required: true, Kind: core.KindDate},
			{Name: "FECHA_CIERRE_DE_INVESTIGACION", Required: true, Kind: core.KindDate},
		},
		map[string]string{
			"FECHA_DE_RADICACION":                         "FECHA_RADICACION",
			"FECHA_DE_LOS_HECHOS":                         "FECHA_HECHOS",
			"FECHA_DE_INDAGACION_PRELIMINAR":              "INDAGACION_PRELIMINAR",
			"FECHA_DE_INVESTIGACION_DISCIPLINARIA":        "INVESTIGACION_DISCIPLINARIA",
			"DOCUMENTO_DEL_IMPLICADO":                     "IDENTIFICACION",
			"DEPARTAMENTO_DE_LOS_HECHOS":                  "DEPARTAMENTO",
			"CIUDAD_DE_LOS_HECHOS":                        "CIUDAD",
			"DIRECCION_SECCIONAL":                         "DIRECCION_SECCIONAL_O_EQUIVALENTE",
			"FECHA_DE_FALLO":                              "FECHA_FALLO",
			"HECHOS":                                      "HECHO",
			"DECISION_DE_LA_INVESTIGACION":                "DECISION",
			"TIPO_DE_PROCESO_AFECTADO":                    "PROCESO_AFECTADO",
			"SENALADOS_O_VINCULADOS_CON_LA_INVESTIGACION": "SENALADOS_O_VINCULADOS",
			"DOC_QUEJOSO":                                 "IDENTIFICACION_QUEJOSO",
			"FECHA_DE_PLIEGO_DE__CARGOS":                  "FECHA_PLIEGO_DE_CARGOS",
			"FECHA_DE_CIERRE_INVESTIGACION":               "FECHA_CIERRE_DE_INVESTIGACION",
		},
	)
	s.Label = "Procesos disciplinarios"
	return s
}

// DIANPQR is the contract for DIAN citizen petitions (PQR).
func DIANPQR() *core.Schema {
	s := core.NewSchema("DIAN", "pqr",
		[]core.CanonicalHeader{
			{Name: "NUMERO_RADICADO", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 1, MaxLen: 50}},
			{Name: "TIPO_PQR", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_pqr"}},
			{Name: "ESTADO_PQR", Required: true, Kind: core.KindChoice, Params: core.Params{FieldKey: "estado_pqr"}},
			{Name: "FECHA_RADICACION", Required: true, Kind: core.KindDate},
			{Name: "FECHA_RESPUESTA", Kind: core.KindDate},
			{Name: "NIT", Kind: core.KindNIT},
			{Name: "RAZON_SOCIAL", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
			{Name: "CORREO_ELECTRONICO", Kind: core.KindEmail},
			{Name: "TELEFONO", Kind: core.KindPhone},
			{Name: "DESCRIPCION"},
			{Name: "FUNCIONARIO_ASIGNADO", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 100}},
		},
		map[string]string{
			"RADICADO": "NUMERO_RADICADO",
			"ESTADO":   "ESTADO_PQR",
			"EMAIL":    "CORREO_ELECTRONICO",
			"CORREO":   "CORREO_ELECTRONICO",
		},
	)
	s.Label = "Peticiones, quejas y reclamos"
	return s
}
