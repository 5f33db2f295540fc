package get_available_days

import "errors"

var (
	// ErrInvalidInput se devuelve cuando falta la hora consultada
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTime se devuelve cuando la hora no tiene formato HH:MM.
	// Es un error de validación: se rechaza antes de calcular, nunca se
	// sustituye en silencio por un valor por defecto.
	ErrInvalidTime = errors.New("invalid time format")

	// ErrNoOpenDays se devuelve cuando no hay ningún día hábil en el horizonte
	ErrNoOpenDays = errors.New("no open days in horizon")

	// ErrInternal se devuelve ante errores internos del usecase
	ErrInternal = errors.New("usecase: internal error")
)
