// Package validation concentra las reglas declarativas de entrada de la API.
// Cada operación tiene un único conjunto de reglas y todos los errores se
// devuelven juntos en un apperror.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/google/uuid"

	"entrenadores/internal/domain"
	apperror "entrenadores/internal/errors"
)

// MensajeValidacion encabeza toda respuesta 400 por reglas de entrada.
const MensajeValidacion = "Errores de validación."

// Validator envuelve go-playground/validator con las reglas propias del dominio.
type Validator struct {
	v   *validator.Validate
	now func() time.Time
}

// New crea un Validator con las etiquetas personalizadas registradas.
func New() *Validator {
	return NewWithClock(time.Now)
}

// NewWithClock permite fijar el reloj usado por la regla "fechanopasada".
func NewWithClock(now func() time.Time) *Validator {
	val := &Validator{v: validator.New(), now: now}

	// Los errores se reportan con el nombre JSON del campo.
	val.v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Solo fallan si la etiqueta ya está registrada, lo que no ocurre con un validador nuevo.
	_ = val.v.RegisterValidation("notblank", validators.NotBlank)
	_ = val.v.RegisterValidation("fechaiso", fechaISO)
	_ = val.v.RegisterValidation("fechanopasada", val.fechaNoPasada)

	return val
}

// ValidarRegistro normaliza y valida el payload de alta. tipoInvalido lista los
// campos que llegaron con un tipo JSON incorrecto y se reportan en el mismo lote.
func (val *Validator) ValidarRegistro(r *domain.RegistroEntrenador, tipoInvalido ...string) error {
	r.SiglaTipoDocumento = strings.TrimSpace(r.SiglaTipoDocumento)
	r.Nombres = strings.TrimSpace(r.Nombres)
	r.Apellidos = strings.TrimSpace(r.Apellidos)
	r.NumeroDocumento = strings.TrimSpace(r.NumeroDocumento)
	r.Correo = normalizarCorreo(r.Correo)
	r.FechaFin = strings.TrimSpace(r.FechaFin)
	r.FacultadNombres = recortarTodos(r.FacultadNombres)

	return val.validar(r, MensajeValidacion, tipoInvalido)
}

// reglasActualizacion es la vista validable de domain.ActualizacionEntrenador:
// un puntero nil representa un campo ausente o nulo.
type reglasActualizacion struct {
	NuevosNombres           *string  `json:"nuevosNombres" validate:"omitnil,min=2,max=200"`
	NuevosApellidos         *string  `json:"nuevosApellidos" validate:"omitnil,min=2,max=200"`
	NuevoCorreo             *string  `json:"nuevoCorreo" validate:"omitnil,email"`
	NuevaFechaFin           *string  `json:"nuevaFechaFin" validate:"omitnil,fechaiso"`
	NuevosNombresFacultades []string `json:"nuevosNombresFacultades" validate:"omitempty,dive,notblank"`
}

// ValidarActualizacion normaliza y valida una modificación parcial.
// Los campos de texto no admiten null; la fecha de fin y las facultades sí.
func (val *Validator) ValidarActualizacion(a *domain.ActualizacionEntrenador, tipoInvalido ...string) error {
	campos := camposDeTipo(tipoInvalido)

	for _, c := range []struct {
		nombre string
		campo  *domain.Campo[string]
	}{
		{"nuevosNombres", &a.NuevosNombres},
		{"nuevosApellidos", &a.NuevosApellidos},
		{"nuevoCorreo", &a.NuevoCorreo},
	} {
		if c.campo.Presente && c.campo.Nulo {
			campos = append(campos, apperror.FieldError{Campo: c.nombre, Mensaje: mensajeNoNulo})
		}
	}

	reglas := reglasActualizacion{}
	if a.NuevosNombres.TieneValor() {
		a.NuevosNombres.Valor = strings.TrimSpace(a.NuevosNombres.Valor)
		reglas.NuevosNombres = &a.NuevosNombres.Valor
	}
	if a.NuevosApellidos.TieneValor() {
		a.NuevosApellidos.Valor = strings.TrimSpace(a.NuevosApellidos.Valor)
		reglas.NuevosApellidos = &a.NuevosApellidos.Valor
	}
	if a.NuevoCorreo.TieneValor() {
		a.NuevoCorreo.Valor = normalizarCorreo(a.NuevoCorreo.Valor)
		reglas.NuevoCorreo = &a.NuevoCorreo.Valor
	}
	if a.NuevaFechaFin.TieneValor() {
		a.NuevaFechaFin.Valor = strings.TrimSpace(a.NuevaFechaFin.Valor)
		reglas.NuevaFechaFin = &a.NuevaFechaFin.Valor
	}
	if a.NuevosNombresFacultades.TieneValor() {
		a.NuevosNombresFacultades.Valor = recortarTodos(a.NuevosNombresFacultades.Valor)
		reglas.NuevosNombresFacultades = a.NuevosNombresFacultades.Valor
	}

	campos = append(campos, sinRepetir(val.campos(reglas), tipoInvalido)...)
	if len(campos) > 0 {
		return apperror.NewValidationError(MensajeValidacion, campos...)
	}
	return nil
}

// ValidarID comprueba que un parámetro de ruta sea un UUID.
func (val *Validator) ValidarID(campo, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperror.NewValidationError(MensajeValidacion, apperror.FieldError{
			Campo:   campo,
			Mensaje: "El ID del entrenador en la URL debe ser un UUID válido.",
		})
	}
	return nil
}

// ValidarCredencialesAdmin exige el número de documento del administrador.
func (val *Validator) ValidarCredencialesAdmin(c *domain.CredencialesAdmin, tipoInvalido ...string) error {
	c.NumeroDocumento = strings.TrimSpace(c.NumeroDocumento)
	return val.validar(c, "Número de documento requerido.", tipoInvalido)
}

// ValidarCredencialesEntrenador exige correo y número de documento.
func (val *Validator) ValidarCredencialesEntrenador(c *domain.CredencialesEntrenador, tipoInvalido ...string) error {
	c.Correo = normalizarCorreo(c.Correo)
	c.NumeroDocumento = strings.TrimSpace(c.NumeroDocumento)
	return val.validar(c, "Correo y número de documento requeridos.", tipoInvalido)
}

// validar ejecuta las reglas de la estructura y agrupa los errores bajo msg.
// Un campo con tipo incorrecto se reporta una sola vez, antes que las reglas.
func (val *Validator) validar(s interface{}, msg string, tipoInvalido []string) error {
	campos := append(camposDeTipo(tipoInvalido), sinRepetir(val.campos(s), tipoInvalido)...)
	if len(campos) > 0 {
		return apperror.NewValidationError(msg, campos...)
	}
	return nil
}

func camposDeTipo(nombres []string) []apperror.FieldError {
	campos := make([]apperror.FieldError, 0, len(nombres))
	for _, n := range nombres {
		campos = append(campos, apperror.FieldError{Campo: n, Mensaje: mensajeTipo(n)})
	}
	return campos
}

// sinRepetir descarta los errores de reglas de campos ya reportados por tipo.
func sinRepetir(campos []apperror.FieldError, tipoInvalido []string) []apperror.FieldError {
	if len(tipoInvalido) == 0 {
		return campos
	}
	out := campos[:0]
	for _, c := range campos {
		if !slices.Contains(tipoInvalido, campoBase(c.Campo)) {
			out = append(out, c)
		}
	}
	return out
}

// campos traduce los errores de go-playground a mensajes en español.
func (val *Validator) campos(s interface{}) []apperror.FieldError {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// InvalidValidationError: programación incorrecta, no entrada del cliente.
		return []apperror.FieldError{{Campo: "payload", Mensaje: err.Error()}}
	}

	campos := make([]apperror.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		campos = append(campos, apperror.FieldError{
			Campo:   fe.Field(),
			Mensaje: mensajePara(fe),
		})
	}
	return campos
}

// fechaISO acepta fechas "YYYY-MM-DD" o fecha y hora RFC 3339.
func fechaISO(fl validator.FieldLevel) bool {
	_, err := domain.ParseFecha(fl.Field().String())
	return err == nil
}

// fechaNoPasada exige una fecha igual o posterior al día actual.
func (val *Validator) fechaNoPasada(fl validator.FieldLevel) bool {
	t, err := domain.ParseFecha(fl.Field().String())
	if err != nil {
		return false
	}
	return !diaCalendario(t).Before(diaCalendario(val.now()))
}

func diaCalendario(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func normalizarCorreo(correo string) string {
	return strings.ToLower(strings.TrimSpace(correo))
}

func recortarTodos(valores []string) []string {
	if valores == nil {
		return nil
	}
	out := make([]string, len(valores))
	for i, v := range valores {
		out[i] = strings.TrimSpace(v)
	}
	return out
}

// mensajePara busca el texto de un campo/etiqueta; los elementos de listas
// ("facultadNombres[2]") comparten el mensaje de su lista.
func mensajePara(fe validator.FieldError) string {
	campo := campoBase(fe.Field())
	if m, ok := mensajes[campo+"."+fe.Tag()]; ok {
		return m
	}
	return fmt.Sprintf("El campo %s no es válido.", campo)
}

// campoBase quita el índice de los elementos de listas: "facultadNombres[2]" -> "facultadNombres".
func campoBase(campo string) string {
	if i := strings.IndexByte(campo, '['); i >= 0 {
		return campo[:i]
	}
	return campo
}

func mensajeTipo(campo string) string {
	if m, ok := mensajes[campo+".tipo"]; ok {
		return m
	}
	return fmt.Sprintf("El campo %s tiene un tipo de dato inválido.", campo)
}
