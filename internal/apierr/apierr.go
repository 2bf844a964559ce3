package apierr

import (
	"errors"
	"fmt"
)

// ===============================
// Errores del cliente HTTP
// ===============================

// TransportError: la petición nunca llegó (red, DNS, timeout, cancelación).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError: el backend respondió fuera del rango 2xx.
type StatusError struct {
	Op      string
	Status  int
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

// DecodeError: respuesta 2xx con payload que no se pudo decodificar.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decoding response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ===============================
// Helpers
// ===============================

func IsStatus(err error, status int) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status == status
	}
	return false
}

// IsAuth detecta 401/403: el token fue rechazado y la sesión
// debe cerrarse (fail closed).
func IsAuth(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status == 401 || se.Status == 403
	}
	return false
}
