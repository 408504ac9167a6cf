package validation_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
	"entrenadores/internal/validation"
)

// fixedNow devuelve siempre el 15 de marzo de 2030 al mediodía.
func fixedNow() time.Time {
	return time.Date(2030, 3, 15, 12, 0, 0, 0, time.UTC)
}

func registroValido() domain.RegistroEntrenador {
	return domain.RegistroEntrenador{
		SiglaTipoDocumento: "CC",
		Nombres:            "Laura",
		Apellidos:          "Gómez",
		NumeroDocumento:    "1012345678",
		Correo:             "laura.gomez@uni.edu.co",
		FacultadNombres:    []string{"Ingeniería"},
	}
}

// camposDe extrae los nombres de campo reportados por un ValidationError.
func camposDe(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	verr, ok := err.(*apperror.ValidationError)
	require.True(t, ok, "se esperaba *ValidationError, se obtuvo %T", err)
	assert.Equal(t, http.StatusBadRequest, verr.HTTPStatus())

	nombres := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		assert.NotEmpty(t, f.Mensaje)
		nombres = append(nombres, f.Campo)
	}
	return nombres
}

func TestValidarRegistro_Success(t *testing.T) {
	v := validation.NewWithClock(fixedNow)
	r := registroValido()
	r.FechaFin = "2030-03-15" // el mismo día es válido

	assert.NoError(t, v.ValidarRegistro(&r))
}

func TestValidarRegistro_ReportsAllMissingFieldsAtOnce(t *testing.T) {
	v := validation.NewWithClock(fixedNow)
	r := domain.RegistroEntrenador{Nombres: "   "}

	campos := camposDe(t, v.ValidarRegistro(&r))

	assert.ElementsMatch(t, []string{
		"siglaTipoDocumento", "nombres", "apellidos", "numeroDocumento", "correo", "facultadNombres",
	}, campos)
}

func TestValidarRegistro_NormalizesEmailAndTrims(t *testing.T) {
	v := validation.NewWithClock(fixedNow)
	r := registroValido()
	r.Correo = "  Laura.Gomez@Uni.EDU.co "
	r.Nombres = "  Laura  "
	r.FacultadNombres = []string{" Ingeniería "}

	require.NoError(t, v.ValidarRegistro(&r))

	assert.Equal(t, "laura.gomez@uni.edu.co", r.Correo)
	assert.Equal(t, "Laura", r.Nombres)
	assert.Equal(t, []string{"Ingeniería"}, r.FacultadNombres)
}

func TestValidarRegistro_FieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.RegistroEntrenador)
		campo  string
	}{
		{"sigla demasiado larga", func(r *domain.RegistroEntrenador) { r.SiglaTipoDocumento = "ABCDEF" }, "siglaTipoDocumento"},
		{"documento con letras", func(r *domain.RegistroEntrenador) { r.NumeroDocumento = "12A45678" }, "numeroDocumento"},
		{"documento corto", func(r *domain.RegistroEntrenador) { r.NumeroDocumento = "1234" }, "numeroDocumento"},
		{"documento largo", func(r *domain.RegistroEntrenador) { r.NumeroDocumento = "123456789012345678901" }, "numeroDocumento"},
		{"correo inválido", func(r *domain.RegistroEntrenador) { r.Correo = "no-es-correo" }, "correo"},
		{"lista vacía", func(r *domain.RegistroEntrenador) { r.FacultadNombres = []string{} }, "facultadNombres"},
		{"elemento en blanco", func(r *domain.RegistroEntrenador) { r.FacultadNombres = []string{"Ingeniería", "  "} }, "facultadNombres[1]"},
		{"fecha mal formada", func(r *domain.RegistroEntrenador) { r.FechaFin = "31/12/2030" }, "fechaFin"},
		{"fecha pasada", func(r *domain.RegistroEntrenador) { r.FechaFin = "2030-03-14" }, "fechaFin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validation.NewWithClock(fixedNow)
			r := registroValido()
			tt.mutate(&r)

			assert.Equal(t, []string{tt.campo}, camposDe(t, v.ValidarRegistro(&r)))
		})
	}
}

func TestValidarRegistro_WrongTypeReportedOnce(t *testing.T) {
	v := validation.NewWithClock(fixedNow)
	r := registroValido()
	r.Nombres = ""
	r.FacultadNombres = nil

	err := v.ValidarRegistro(&r, "nombres", "facultadNombres")

	assert.Equal(t, []string{"nombres", "facultadNombres"}, camposDe(t, err))
	verr := err.(*apperror.ValidationError)
	assert.Equal(t, "Los nombres deben ser un texto.", verr.Fields[0].Mensaje)
	assert.Equal(t, "Las facultades deben enviarse como un array de textos.", verr.Fields[1].Mensaje)
}

func TestValidarActualizacion_EmptyIsValid(t *testing.T) {
	v := validation.New()
	a := domain.ActualizacionEntrenador{}

	assert.NoError(t, v.ValidarActualizacion(&a))
}

func TestValidarActualizacion_ClearInstructionsAreValid(t *testing.T) {
	v := validation.New()
	a := domain.ActualizacionEntrenador{
		NuevaFechaFin:           domain.ComoNulo[string](),
		NuevosNombresFacultades: domain.ConValor([]string{}),
	}

	assert.NoError(t, v.ValidarActualizacion(&a))
}

func TestValidarActualizacion_Rules(t *testing.T) {
	v := validation.New()
	a := domain.ActualizacionEntrenador{
		NuevosNombres:           domain.ConValor(" A "),
		NuevosApellidos:         domain.ComoNulo[string](),
		NuevoCorreo:             domain.ConValor("sin-arroba"),
		NuevaFechaFin:           domain.ConValor("mañana"),
		NuevosNombresFacultades: domain.ConValor([]string{"Artes", ""}),
	}

	campos := camposDe(t, v.ValidarActualizacion(&a))

	assert.ElementsMatch(t, []string{
		"nuevosNombres", "nuevosApellidos", "nuevoCorreo", "nuevaFechaFin", "nuevosNombresFacultades[1]",
	}, campos)
}

func TestValidarActualizacion_Normalizes(t *testing.T) {
	v := validation.New()
	a := domain.ActualizacionEntrenador{
		NuevoCorreo:   domain.ConValor(" Nuevo@Uni.EDU.co"),
		NuevosNombres: domain.ConValor("  Ana María "),
		NuevaFechaFin: domain.ConValor("2020-01-01"), // en actualización se permite una fecha pasada
	}

	require.NoError(t, v.ValidarActualizacion(&a))
	assert.Equal(t, "nuevo@uni.edu.co", a.NuevoCorreo.Valor)
	assert.Equal(t, "Ana María", a.NuevosNombres.Valor)
}

func TestValidarActualizacion_WrongType(t *testing.T) {
	v := validation.New()
	a := domain.ActualizacionEntrenador{NuevosNombres: domain.ConValor("A")}

	campos := camposDe(t, v.ValidarActualizacion(&a, "nuevoCorreo"))

	assert.Equal(t, []string{"nuevoCorreo", "nuevosNombres"}, campos)
}

func TestValidarCredenciales_WrongType(t *testing.T) {
	v := validation.New()

	err := v.ValidarCredencialesAdmin(&domain.CredencialesAdmin{}, "numeroDocumento")

	verr, ok := err.(*apperror.ValidationError)
	require.True(t, ok)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "numeroDocumento", verr.Fields[0].Campo)
	assert.Equal(t, "El número de documento debe enviarse como texto.", verr.Fields[0].Mensaje)
}

func TestValidarID(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.ValidarID("entrenadorID", "6a1d0c9e-7b1f-4a8e-9a52-3f3e2f0b9d11"))
	assert.Equal(t, []string{"entrenadorID"}, camposDe(t, v.ValidarID("entrenadorID", "123")))
}

func TestValidarCredenciales(t *testing.T) {
	v := validation.New()

	err := v.ValidarCredencialesAdmin(&domain.CredencialesAdmin{NumeroDocumento: "  "})
	require.Error(t, err)
	_, _, msg := apperror.MapToHTTPStatus(err)
	assert.Equal(t, "Número de documento requerido.", msg)

	err = v.ValidarCredencialesEntrenador(&domain.CredencialesEntrenador{Correo: "a@b.co"})
	require.Error(t, err)
	_, _, msg = apperror.MapToHTTPStatus(err)
	assert.Equal(t, "Correo y número de documento requeridos.", msg)

	c := domain.CredencialesEntrenador{Correo: " A@B.CO ", NumeroDocumento: " 123 "}
	require.NoError(t, v.ValidarCredencialesEntrenador(&c))
	assert.Equal(t, "a@b.co", c.Correo)
	assert.Equal(t, "123", c.NumeroDocumento)
}
