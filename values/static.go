// static.go provides the in-memory Source and the built-in fallback lists
// that ship with the engine. The built-ins mirror the catalogs the agencies
// publish and keep choice validation meaningful when no external source is
// configured.
package values

import "context"

// StaticSource serves value lists from an in-memory map. It backs the
// built-in fallback catalog and is convenient in tests.
type StaticSource struct {
	lists map[string]*ValueList
}

// NewStaticSource builds a StaticSource over the given lists.
func NewStaticSource(lists ...*ValueList) *StaticSource {
	s := &StaticSource{lists: make(map[string]*ValueList, len(lists))}
	for _, l := range lists {
		s.lists[normalizeKey(l.Key)] = l
	}
	return s
}

// Load implements Source.
func (s *StaticSource) Load(_ context.Context, key string) (*ValueList, error) {
	if l, ok := s.lists[normalizeKey(key)]; ok {
		return l, nil
	}
	return nil, ErrNotFound
}

// Add registers or replaces a list. It is not safe for concurrent use with
// Load; populate the source before handing it to a Registry.
func (s *StaticSource) Add(l *ValueList) {
	s.lists[normalizeKey(l.Key)] = l
}

// Builtin returns the built-in fallback catalog. The registry consults it
// when the configured source has no list for a key, so deployments without
// a database or list directory still validate against the published
// catalogs.
func Builtin() *StaticSource {
	return NewStaticSource(
		// DIAN notification tracking.
		NewValueList("estado_notificacion",
			[]string{"notificado", "pendiente", "devuelto", "cancelado"},
			map[string]string{
				"notificada": "notificado",
				"devuelta":   "devuelto",
				"cancelada":  "cancelado",
			}),
		NewValueList("proceso",
			[]string{"asistencia al cliente", "fiscalización y liquidación", "operación aduanera"},
			map[string]string{
				"fiscalizacion": "fiscalización y liquidación",
				"aduanas":       "operación aduanera",
			}),
		NewValueList("dependencia",
			[]string{"nivel central", "dirección seccional"},
			nil),
		NewValueList("medio_notificacion",
			[]string{"correo", "correo electrónico", "edicto", "personal", "aviso"},
			map[string]string{
				"email":  "correo electrónico",
				"e-mail": "correo electrónico",
			}),

		// Case files shared across agencies.
		NewValueList("tipo_proceso",
			[]string{"disciplinario", "administrativo", "sancionatorio", "preventivo"},
			nil),
		NewValueList("estado_proceso",
			[]string{"en trámite", "resuelto", "archivado", "suspendido", "apelado"},
			map[string]string{
				"tramite": "en trámite",
			}),
		NewValueList("tipo_documento",
			[]string{"cédula de ciudadanía", "cédula de extranjería", "nit", "pasaporte", "tarjeta de identidad"},
			map[string]string{
				"cc": "cédula de ciudadanía",
				"ce": "cédula de extranjería",
				"ti": "tarjeta de identidad",
			}),
		NewValueList("tipo_sancion",
			[]string{"amonestación", "multa", "suspensión", "cancelación de licencia", "inhabilitación"},
			nil),

		// PQR intake.
		NewValueList("tipo_pqr",
			[]string{"petición", "queja", "reclamo", "sugerencia", "denuncia", "consulta"},
			nil),
		NewValueList("estado_pqr",
			[]string{"radicado", "en trámite", "respondido", "cerrado", "archivado"},
			nil),

		// COLJUEGOS organizational units and licensing.
		NewValueList("direccion_seccional",
			[]string{
				"gerencia control a las operaciones ilegales",
				"gerencia de cobro",
				"gerencia financiera",
				"gerencia seguimiento contractual",
				"vicepresidencia de desarrollo organizacional",
				"vicepresidencia de operaciones",
				"vicepresidencia desarrollo comercial",
			},
			map[string]string{
				"control operaciones ilegales": "gerencia control a las operaciones ilegales",
				"cobro":                        "gerencia de cobro",
			}),
		NewValueList("estado_licencia",
			[]string{"activa", "suspendida", "cancelada", "vencida", "en trámite"},
			nil),

		// UGPP pension and contribution catalogs.
		NewValueList("regimen_pensional",
			[]string{
				"régimen de prima media",
				"régimen de ahorro individual",
				"régimen de prima media con prestación definida",
			},
			map[string]string{
				"prima media":       "régimen de prima media",
				"ahorro individual": "régimen de ahorro individual",
			}),
		NewValueList("tipo_afiliacion",
			[]string{"dependiente", "independiente", "pensionado", "beneficiario"},
			nil),
		NewValueList("estado_afiliacion",
			[]string{"activo", "inactivo", "suspendido", "retirado"},
			nil),
		NewValueList("estado_pago",
			[]string{"pagado", "pendiente", "vencido", "cancelado"},
			nil),
		NewValueList("medio_pago",
			[]string{"transferencia", "consignación", "pago electrónico", "cheque"},
			map[string]string{
				"pse": "pago electrónico",
			}),
	)
}
