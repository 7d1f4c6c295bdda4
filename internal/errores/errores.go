// Package errores define la taxonomía de errores del dashboard.
package errores

import (
	"errors"
	"fmt"
)

// ErrNoEncontrado indica que el registro pedido no existe.
var ErrNoEncontrado = errors.New("registro no encontrado")

// ErrorConfiguracion indica una variable de entorno obligatoria ausente.
// Es fatal en el arranque y no se reintenta.
type ErrorConfiguracion struct {
	Variable string
}

func (e *ErrorConfiguracion) Error() string {
	return fmt.Sprintf("variable de configuración %s no definida", e.Variable)
}

// ErrorConexionNoDisponible indica que no hay handle de base de datos
// después de agotar los reintentos. El caller puede volver a intentar.
type ErrorConexionNoDisponible struct {
	Err error
}

func (e *ErrorConexionNoDisponible) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("la conexión a la base de datos no está disponible: %v", e.Err)
	}
	return "la conexión a la base de datos no está disponible"
}

func (e *ErrorConexionNoDisponible) Unwrap() error { return e.Err }

// ErrorEsquema indica que la migración de tablas falló.
type ErrorEsquema struct {
	Err error
}

func (e *ErrorEsquema) Error() string {
	return fmt.Sprintf("no se pudo inicializar el esquema: %v", e.Err)
}

func (e *ErrorEsquema) Unwrap() error { return e.Err }

// ErrorOperacion envuelve un fallo del store con la entidad y el verbo
// de la operación que lo provocó.
type ErrorOperacion struct {
	Entidad string
	Verbo   string
	Err     error
}

func (e *ErrorOperacion) Error() string {
	return fmt.Sprintf("no se pudo %s %s: %v", e.Verbo, e.Entidad, e.Err)
}

func (e *ErrorOperacion) Unwrap() error { return e.Err }

// Operacion es el constructor que usan los repositorios.
func Operacion(entidad, verbo string, err error) error {
	return &ErrorOperacion{Entidad: entidad, Verbo: verbo, Err: err}
}
