package appointments

import (
	"context"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
)

// AppointmentRepository interfaz del repositorio de citas
type AppointmentRepository interface {
	GetByEmail(ctx context.Context, email string, includeInactive bool) ([]*domain.Appointment, error)
	GetByEventID(ctx context.Context, eventID string) (*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason string) error
}

// CalendarClient interfaz del feed de calendario externo
type CalendarClient interface {
	DeleteEvent(ctx context.Context, eventID string) error
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
