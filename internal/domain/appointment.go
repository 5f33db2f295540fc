package domain

import (
	"time"

	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

// AppointmentStatus estado de una cita
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmada"
	StatusCancelled AppointmentStatus = "cancelada"
)

// Appointment representa una cita de terapia agendada
type Appointment struct {
	ID         int64
	Referencia string // código público de la reserva (UUID)

	// Datos del solicitante
	Nombre   string
	Email    string
	Telefono string

	// Slot reservado
	Fecha           time.Time // día de la cita (sin hora)
	Hora            types.TimeString
	DurationMinutes int
	FechaHora       time.Time // instante de inicio en la zona de operación

	Estado AppointmentStatus

	// Referencia del comprobante de pago subido por el usuario;
	// se guarda la URL pública tal cual, sin procesar el pago
	ComprobanteURL *string

	// Evento creado en el calendario externo
	EventID      *string
	LinkCalendar *string

	MotivoCancelacion *string
	CancelledAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive indica si la cita sigue vigente
func (a *Appointment) IsActive() bool {
	return a.Estado != StatusCancelled
}

// CanBeCancelled indica si la cita puede cancelarse
func (a *Appointment) CanBeCancelled() bool {
	return a.Estado == StatusConfirmed
}

// SlotEnd devuelve el instante de fin del slot reservado
func (a *Appointment) SlotEnd() time.Time {
	return a.FechaHora.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
