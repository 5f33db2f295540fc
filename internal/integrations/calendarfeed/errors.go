package calendarfeed

import "errors"

var (
	// ErrEventNotFound se devuelve cuando el evento no existe en el calendario
	ErrEventNotFound = errors.New("calendar event not found")

	// ErrInternal se devuelve ante errores internos del cliente
	ErrInternal = errors.New("calendarfeed client: internal error")

	// ErrInvalidResponse se devuelve ante una respuesta malformada del feed
	ErrInvalidResponse = errors.New("calendarfeed client: invalid response")
)
