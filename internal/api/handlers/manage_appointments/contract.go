package manage_appointments

import (
	"context"

	"github.com/vibracionalta/VA-AgendaService/internal/service/appointments/models"
)

type AppointmentService interface {
	List(ctx context.Context, req *models.ListCitasRequest) (*models.CitaListResponse, error)
	Cancel(ctx context.Context, req *models.CancelCitaRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
