package validation

const mensajeNoNulo = "Este campo no admite el valor null."

// mensajes asocia "campo.etiqueta" con el texto que ve el cliente.
var mensajes = map[string]string{
	// Registro
	"siglaTipoDocumento.required": "La sigla del tipo de documento es requerida.",
	"siglaTipoDocumento.min":      "La sigla debe tener entre 1 y 5 caracteres.",
	"siglaTipoDocumento.max":      "La sigla debe tener entre 1 y 5 caracteres.",
	"nombres.required":            "Los nombres son requeridos.",
	"nombres.min":                 "Los nombres deben tener entre 1 y 200 caracteres.",
	"nombres.max":                 "Los nombres deben tener entre 1 y 200 caracteres.",
	"apellidos.required":          "Los apellidos son requeridos.",
	"apellidos.min":               "Los apellidos deben tener entre 1 y 200 caracteres.",
	"apellidos.max":               "Los apellidos deben tener entre 1 y 200 caracteres.",
	"numeroDocumento.required":    "El número de documento es requerido.",
	"numeroDocumento.number":      "El número de documento solo puede contener dígitos.",
	"numeroDocumento.min":         "El número de documento debe tener entre 5 y 20 dígitos.",
	"numeroDocumento.max":         "El número de documento debe tener entre 5 y 20 dígitos.",
	"correo.required":             "El correo electrónico es requerido.",
	"correo.email":                "Debe proporcionar un correo electrónico válido.",
	"facultadNombres.required":    "Se requiere al menos una facultad y debe ser un array.",
	"facultadNombres.min":         "Se requiere al menos una facultad y debe ser un array.",
	"facultadNombres.notblank":    "Cada nombre de facultad en el array debe ser un texto no vacío.",
	"fechaFin.fechaiso":           "La fecha de fin debe tener formato YYYY-MM-DD.",
	"fechaFin.fechanopasada":      "La fecha de fin no puede ser anterior a la fecha actual.",

	// Actualización
	"nuevosNombres.min":                "Los nuevos nombres deben tener entre 2 y 200 caracteres.",
	"nuevosNombres.max":                "Los nuevos nombres deben tener entre 2 y 200 caracteres.",
	"nuevosApellidos.min":              "Los nuevos apellidos deben tener entre 2 y 200 caracteres.",
	"nuevosApellidos.max":              "Los nuevos apellidos deben tener entre 2 y 200 caracteres.",
	"nuevoCorreo.email":                "Debe proporcionar un nuevo correo electrónico válido.",
	"nuevaFechaFin.fechaiso":           "La nueva fecha de fin debe tener formato YYYY-MM-DD.",
	"nuevosNombresFacultades.notblank": "Cada nombre de facultad en el array debe ser un texto no vacío.",

	// Tipo JSON incorrecto
	"siglaTipoDocumento.tipo":      "La sigla del tipo de documento debe ser un texto.",
	"nombres.tipo":                 "Los nombres deben ser un texto.",
	"apellidos.tipo":               "Los apellidos deben ser un texto.",
	"numeroDocumento.tipo":         "El número de documento debe enviarse como texto.",
	"correo.tipo":                  "El correo electrónico debe ser un texto.",
	"facultadNombres.tipo":         "Las facultades deben enviarse como un array de textos.",
	"fechaFin.tipo":                "La fecha de fin debe ser un texto con formato YYYY-MM-DD.",
	"nuevosNombres.tipo":           "Los nuevos nombres deben ser un texto.",
	"nuevosApellidos.tipo":         "Los nuevos apellidos deben ser un texto.",
	"nuevoCorreo.tipo":             "El nuevo correo electrónico debe ser un texto.",
	"nuevaFechaFin.tipo":           "La nueva fecha de fin debe ser un texto con formato YYYY-MM-DD.",
	"nuevosNombresFacultades.tipo": "Las nuevas facultades deben enviarse como un array de textos.",
}
