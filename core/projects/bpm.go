package projects

import "github.com/LFQuintero/excelsior/core"

func registerBPM(reg *core.SchemaRegistry) {
	reg.MustRegister(BPM())
}

// BPM is the contract for the UGPP BPM audit-case extract. The project
// ships a single table, so the schema registers as the project-level
// default (empty module). The source spreadsheet is maintained by hand,
// so several canonical names carry the "#" prefix the analysts use, and
// the synonym map absorbs the punctuation variants that show up in
// exports.
func BPM() *core.Schema {
	s := core.NewSchema("BPM", "",
		[]core.CanonicalHeader{
			{Name: "ORDEN", Required: true, Kind: core.KindInteger, Params: core.Params{Min: core.Bound(1)}},
			{Name: "NOMBRE_ARCHIVO", Required: true, Kind: core.KindString},
			{Name: "MES_REPORTE", Required: true, Kind: core.KindDate},
			{Name: "TIPO_EXPEDIENTE", Required: true, Kind: core.KindString},
			{Name: "ID_EXPEDIENTE_ECM", Kind: core.KindString, Params: core.Params{MinLen: 1}},
			{Name: "FECHA_REPARTO", Required: true, Kind: core.KindDate},
			{Name: "ANO_REPARTO", Kind: core.KindInteger, Params: core.Params{Min: core.Bound(2000), Max: core.Bound(2035)}},
			{Name: "ANO_GESTION", Kind: core.KindInteger, Params: core.Params{Min: core.Bound(2000), Max: core.Bound(2035)}},
			{Name: "TIPO_DOC_IDENTIFICACION_APORTANTE", Kind: core.KindChoice, Params: core.Params{FieldKey: "tipo_documento"}},
			{Name: "NO_CC_O_NIT_APORTANTE", Required: true, Kind: core.KindNIT},
			{Name: "NOMBRES_Y_O_RAZON_SOCIAL_APORTANTE", Required: true, Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
			{Name: "TIPO_APORTANTE", Kind: core.KindString},
			{Name: "DIRECCION_RUT", Kind: core.KindString},
			{Name: "TELEFONO", Kind: core.KindPhone},
			{Name: "EMAIL", Kind: core.KindEmail},
			{Name: "#_EMPLEADOS", Kind: core.KindInteger, Params: core.Params{Min: core.Bound(0)}},
			{Name: "NOMBRES_Y_APELLIDOS_REP_LEGAL", Kind: core.KindString, Params: core.Params{MinLen: 2, MaxLen: 200}},
			{Name: "CC_O_NIT_REP_LEGAL", Kind: core.KindNIT},
			{Name: "TELEFONO_REP_LEGAL", Kind: core.KindPhone},
			{Name: "#_RADICADO_UGPP", Kind: core.KindString, Params: core.Params{MinLen: 1}},
			{Name: "FECHA_RAD_UGPP", Kind: core.KindDate},
			{Name: "FECHA_INICIO_FISCALIZACION", Required: true, Kind: core.KindDate},
			{Name: "FECHA_FIN_FISCALIZACION", Kind: core.KindDate},
			{Name: "ETAPA", Required: true, Kind: core.KindString},
			{Name: "VALOR_RDOC", Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
			{Name: "SANCIONES_POR_OMISION_RDOC", Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
			{Name: "SANCIONES_POR_INEXACTITUD_RDOC", Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
			{Name: "SANCIONES_POR_MORA_RDOC", Kind: core.KindFloat, Params: core.Params{Min: core.Bound(0)}},
			{Name: "TIENE_RECURSO", Kind: core.KindBool},
			{Name: "MIGRADO_SI_NO", Kind: core.KindBool},
			{Name: "OBSERVACIONES_AL_RDOC"},
			{Name: "OBSERVACIONES_DEL_EXPEDIENTE"},
		},
		map[string]string{
			"TIENE_RECURSO?":         "TIENE_RECURSO",
			"NUMERO_DE_EMPLEADOS":    "#_EMPLEADOS",
			"NO_EMPLEADOS":           "#_EMPLEADOS",
			"NIT_APORTANTE":          "NO_CC_O_NIT_APORTANTE",
			"CC_O_NIT_APORTANTE":     "NO_CC_O_NIT_APORTANTE",
			"RAZON_SOCIAL_APORTANTE": "NOMBRES_Y_O_RAZON_SOCIAL_APORTANTE",
			"CORREO_ELECTRONICO":     "EMAIL",
			"RADICADO_UGPP":          "#_RADICADO_UGPP",
			"MIGRADO":                "MIGRADO_SI_NO",
		},
	)
	s.Label = "Expedientes de fiscalización"
	return s
}
