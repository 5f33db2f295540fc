package create_appointment

import (
	"context"
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	"github.com/vibracionalta/VA-AgendaService/internal/integrations/calendarfeed"
)

// AppointmentRepository interfaz del repositorio de citas
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetActiveInWindow devuelve las citas activas con inicio dentro de [from, to)
	GetActiveInWindow(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// CalendarClient interfaz del feed de calendario externo
type CalendarClient interface {
	BusyIntervals(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error)
	CreateEvent(ctx context.Context, event *calendarfeed.CreateEventRequest) (*calendarfeed.Event, error)
}

// TransactionManager interfaz para la transacción de reserva
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interfaz para obtener la hora actual (sustituible en pruebas)
type TimeProvider interface {
	Now() time.Time
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider proveedor de tiempo real para producción
type RealTimeProvider struct{}

// Now devuelve la hora actual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
