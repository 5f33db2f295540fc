package create_appointment

import "errors"

var (
	// ErrInvalidInput se devuelve ante datos del solicitante incompletos o inválidos
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDateTime se devuelve cuando fechaHoraISO no es un instante ISO-8601 válido
	ErrInvalidDateTime = errors.New("invalid appointment datetime")

	// ErrSlotNotOffered se devuelve cuando el instante no corresponde a un
	// horario ofrecido (domingo, festivo o hora fuera de plantilla)
	ErrSlotNotOffered = errors.New("slot not offered on that day")

	// ErrSlotInPast se devuelve cuando el día solicitado no está en el horizonte
	// (el día actual nunca se ofrece)
	ErrSlotInPast = errors.New("appointment day outside booking horizon")

	// ErrSlotOccupied se devuelve cuando el slot ya está reservado
	ErrSlotOccupied = errors.New("slot already occupied")

	// ErrInternal se devuelve ante errores internos del usecase
	ErrInternal = errors.New("usecase: internal error")
)
