package domain

import (
	"bytes"
	"encoding/json"
)

// Campo modela un atributo JSON opcional con tres estados: ausente, null o con valor.
// El decodificador solo invoca UnmarshalJSON cuando la clave existe en el payload,
// por lo que el valor cero de Campo equivale a "ausente".
type Campo[T any] struct {
	Presente bool
	Nulo     bool
	Valor    T
}

// UnmarshalJSON marca el campo como presente y registra si llegó como null.
func (c *Campo[T]) UnmarshalJSON(data []byte) error {
	c.Presente = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var cero T
		c.Nulo = true
		c.Valor = cero
		return nil
	}
	c.Nulo = false
	return json.Unmarshal(data, &c.Valor)
}

// MarshalJSON serializa null cuando el campo está ausente o es nulo.
func (c Campo[T]) MarshalJSON() ([]byte, error) {
	if !c.Presente || c.Nulo {
		return []byte("null"), nil
	}
	return json.Marshal(c.Valor)
}

// ConValor construye un Campo presente.
func ConValor[T any](v T) Campo[T] {
	return Campo[T]{Presente: true, Valor: v}
}

// ComoNulo construye un Campo presente con valor null explícito.
func ComoNulo[T any]() Campo[T] {
	return Campo[T]{Presente: true, Nulo: true}
}

// TieneValor indica si el campo trae un valor utilizable.
func (c Campo[T]) TieneValor() bool {
	return c.Presente && !c.Nulo
}
