package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "entrenadores/internal/errors"
	"entrenadores/internal/pkg/logger"
	"entrenadores/internal/pkg/response"
)

func render(t *testing.T, rs *response.Responder, err error) (int, map[string]interface{}) {
	t.Helper()
	rec := httptest.NewRecorder()
	rs.Error(rec, httptest.NewRequest(http.MethodGet, "/x", nil), err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestError_ValidationFieldsGoToErrors(t *testing.T) {
	rs := response.New(logger.NewNopLogger(), false)
	err := apperror.NewValidationError("Errores de validación.",
		apperror.FieldError{Campo: "correo", Mensaje: "Debe proporcionar un correo electrónico válido."})

	code, body := render(t, rs, err)

	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_ERROR", body["category"])
	assert.Equal(t, []interface{}{map[string]interface{}{"campo": "correo", "mensaje": "Debe proporcionar un correo electrónico válido."}}, body["errors"])
	assert.NotContains(t, body, "details")
}

func TestError_InternalHidesCauseInProduction(t *testing.T) {
	rs := response.New(logger.NewNopLogger(), false)

	code, body := render(t, rs, apperror.NewInternalError(apperror.MensajeErrorInterno, errors.New("pq: relation does not exist")))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, apperror.MensajeErrorInterno, body["message"])
	assert.NotContains(t, body, "stack")
}

func TestError_InternalExposesStackOutsideProduction(t *testing.T) {
	rs := response.New(logger.NewNopLogger(), true)

	_, body := render(t, rs, apperror.NewInternalError(apperror.MensajeErrorInterno, errors.New("pq: relation does not exist")))

	assert.Contains(t, body["stack"], "relation does not exist")
}

func TestError_ClientErrorsNeverCarryStack(t *testing.T) {
	rs := response.New(logger.NewNopLogger(), true)

	code, body := render(t, rs, apperror.NewNotFoundError("Entrenador no encontrado."))

	assert.Equal(t, http.StatusNotFound, code)
	assert.NotContains(t, body, "stack")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Nombre string `json:"nombre"`
	}

	ok := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nombre":"Ana"}`))
	tipoInvalido, err := response.DecodeJSON(ok, &dst)
	require.NoError(t, err)
	assert.Empty(t, tipoInvalido)
	assert.Equal(t, "Ana", dst.Nombre)

	for _, body := range []string{"{", "[1,2", "[]", "5", `"texto"`} {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		_, err := response.DecodeJSON(req, &dst)

		var bad *apperror.BadRequestError
		require.True(t, errors.As(err, &bad), body)
		assert.Equal(t, response.MsgPayloadInvalido, bad.Message())
	}
}

func TestDecodeJSON_EmptyBodyIsEmptyObject(t *testing.T) {
	for _, body := range []string{"", "   ", "null"} {
		var dst struct {
			Nombre string `json:"nombre"`
		}
		req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))

		tipoInvalido, err := response.DecodeJSON(req, &dst)

		require.NoError(t, err, body)
		assert.Empty(t, tipoInvalido)
		assert.Empty(t, dst.Nombre)
	}
}

func TestDecodeJSON_WrongTypesAreReportedPerField(t *testing.T) {
	var dst struct {
		Nombre     string   `json:"nombre"`
		Documento  string   `json:"documento"`
		Facultades []string `json:"facultades"`
		Interno    string   `json:"-"`
	}
	body := `{"nombre":5,"documento":"123","facultades":["A",3],"Interno":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))

	tipoInvalido, err := response.DecodeJSON(req, &dst)

	require.NoError(t, err)
	assert.Equal(t, []string{"nombre", "facultades"}, tipoInvalido)
	assert.Equal(t, "123", dst.Documento)
	assert.Empty(t, dst.Nombre)
	assert.Nil(t, dst.Facultades)
	assert.Empty(t, dst.Interno)
}
