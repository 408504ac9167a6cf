package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	apperror "entrenadores/internal/errors"
)

// MsgPayloadInvalido se devuelve cuando el cuerpo no es un objeto JSON.
const MsgPayloadInvalido = "Payload JSON inválido."

// maxBodyBytes limita el tamaño de los cuerpos aceptados.
const maxBodyBytes = 1 << 20

// DecodeJSON lee el cuerpo de r en la estructura apuntada por dst.
// Un cuerpo vacío o null equivale a {}. Cada campo se decodifica por separado:
// los que traen un tipo JSON incorrecto quedan en su valor cero y sus nombres
// se devuelven para que la validación los reporte junto con el resto.
// Solo un cuerpo que no es un objeto JSON produce un BadRequestError.
func DecodeJSON(r *http.Request, dst interface{}) ([]string, error) {
	destino := reflect.ValueOf(dst)
	if destino.Kind() != reflect.Ptr || destino.Elem().Kind() != reflect.Struct {
		return nil, apperror.NewInternalError(apperror.MensajeErrorInterno,
			fmt.Errorf("destino de decodificación no soportado: %T", dst))
	}

	var crudos map[string]json.RawMessage
	if r.Body != nil {
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&crudos)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, apperror.NewBadRequestError(MsgPayloadInvalido, nil)
		}
	}

	elem := destino.Elem()
	tipo := elem.Type()
	var tipoInvalido []string
	for i := 0; i < tipo.NumField(); i++ {
		campo := tipo.Field(i)
		if !campo.IsExported() {
			continue
		}
		nombre := nombreJSON(campo)
		if nombre == "" {
			continue
		}
		crudo, ok := crudos[nombre]
		if !ok {
			continue
		}
		if err := json.Unmarshal(crudo, elem.Field(i).Addr().Interface()); err != nil {
			elem.Field(i).Set(reflect.Zero(campo.Type))
			tipoInvalido = append(tipoInvalido, nombre)
		}
	}

	return tipoInvalido, nil
}

func nombreJSON(campo reflect.StructField) string {
	nombre := strings.SplitN(campo.Tag.Get("json"), ",", 2)[0]
	switch nombre {
	case "-":
		return ""
	case "":
		return campo.Name
	}
	return nombre
}
