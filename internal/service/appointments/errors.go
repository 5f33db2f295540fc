package appointments

import "errors"

var (
	// ErrAppointmentNotFound se devuelve cuando la cita no existe
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied se devuelve cuando el correo no coincide con el de la cita
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel se devuelve cuando la cita ya no puede cancelarse
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidInput se devuelve ante datos de entrada inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal se devuelve ante errores internos del servicio
	ErrInternal = errors.New("service: internal error")
)
