package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrRemote       = errors.New("fallo del almacén remoto")
)

// RemoteError envuelve el fallo de una llamada al almacén tabular remoto.
// Op es la operación (get-range, update-range, append-row, delete-rows...)
// y Rango el rango u hoja sobre el que se operaba. errors.Is(err, ErrRemote)
// es verdadero para cualquier RemoteError.
type RemoteError struct {
	Op    string
	Rango string
	Err   error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("almacén remoto: %s %s: %v", e.Op, e.Rango, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Is hace que RemoteError responda a errors.Is(err, ErrRemote).
func (e *RemoteError) Is(target error) bool { return target == ErrRemote }

// NewRemoteError construye un RemoteError.
func NewRemoteError(op, rango string, err error) *RemoteError {
	return &RemoteError{Op: op, Rango: rango, Err: err}
}
