// Package llamada arma las consultas que invocan funciones almacenadas de PostgreSQL
// en notación nombrada (param => $n). Solo los argumentos agregados viajan en la
// llamada; los omitidos toman el valor por defecto declarado en la función.
package llamada

import (
	"fmt"
	"strings"
)

// Llamada acumula los argumentos de una función almacenada.
type Llamada struct {
	funcion string
	nombres []string
	args    []interface{}
}

// Nueva inicia la llamada a la función indicada (e.g., "cc.DesactivarEntrenadorUFT").
func Nueva(funcion string) *Llamada {
	return &Llamada{funcion: funcion}
}

// Con agrega un argumento nombrado.
func (l *Llamada) Con(nombre string, valor interface{}) *Llamada {
	l.nombres = append(l.nombres, nombre)
	l.args = append(l.args, valor)
	return l
}

// ConSi agrega el argumento solo cuando presente es verdadero.
func (l *Llamada) ConSi(presente bool, nombre string, valor interface{}) *Llamada {
	if presente {
		return l.Con(nombre, valor)
	}
	return l
}

// Nombres devuelve los parámetros agregados, en orden.
func (l *Llamada) Nombres() []string {
	return append([]string(nil), l.nombres...)
}

// SQL devuelve la consulta y sus argumentos posicionales.
// Sin columnas se selecciona "*".
func (l *Llamada) SQL(columnas ...string) (string, []interface{}) {
	sel := "*"
	if len(columnas) > 0 {
		sel = strings.Join(columnas, ", ")
	}

	params := make([]string, len(l.nombres))
	for i, n := range l.nombres {
		params[i] = fmt.Sprintf("%s => $%d", n, i+1)
	}

	query := fmt.Sprintf("SELECT %s FROM %s(%s)", sel, l.funcion, strings.Join(params, ", "))
	return query, l.args
}
