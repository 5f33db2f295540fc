package get_available_days

import (
	"context"
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
)

// CalendarClient interfaz del feed de calendario externo
type CalendarClient interface {
	// BusyIntervals devuelve los intervalos ocupados dentro de la ventana indicada
	BusyIntervals(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error)
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
