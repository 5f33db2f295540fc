package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	apptRepo "github.com/vibracionalta/VA-AgendaService/internal/infra/storage/appointment"
	"github.com/vibracionalta/VA-AgendaService/internal/integrations/calendarfeed"
	"github.com/vibracionalta/VA-AgendaService/internal/service/appointments/models"
)

// Service servicio de consulta y cancelación de citas
type Service struct {
	appointments AppointmentRepository
	calendar     CalendarClient
	logger       Logger
}

// NewService crea un nuevo servicio de citas
func NewService(
	appointments AppointmentRepository,
	calendar CalendarClient,
	logger Logger,
) *Service {
	return &Service{
		appointments: appointments,
		calendar:     calendar,
		logger:       logger,
	}
}

// List devuelve las citas activas asociadas a un correo
func (s *Service) List(ctx context.Context, req *models.ListCitasRequest) (*models.CitaListResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" {
		s.logger.Warn("List: missing email")
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	s.logger.Info("List: fetching appointments for email=%s", email)

	appointments, err := s.appointments.GetByEmail(ctx, email, false)
	if err != nil {
		s.logger.Error("List: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for email=%s", len(appointments), email)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel cancela la cita identificada por el evento de calendario.
// Solo el correo que hizo la reserva puede cancelarla.
func (s *Service) Cancel(ctx context.Context, req *models.CancelCitaRequest) error {
	email := normalizeEmail(req.Email)
	if email == "" || req.EventID == "" {
		s.logger.Warn("Cancel: missing email or eventId")
		return fmt.Errorf("%w: email and eventId are required", ErrInvalidInput)
	}
	if len(req.MotivoCancelacion) > domain.MaxMotivoLength {
		s.logger.Warn("Cancel: motivo exceeds %d characters", domain.MaxMotivoLength)
		return fmt.Errorf("%w: motivo exceeds %d characters", ErrInvalidInput, domain.MaxMotivoLength)
	}

	s.logger.Info("Cancel: cancelling appointment event=%s by email=%s", req.EventID, email)

	appt, err := s.appointments.GetByEventID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Cancel: appointment event=%s not found", req.EventID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error for event=%s: %v", req.EventID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if appt.Email != email {
		s.logger.Warn("Cancel: email=%s does not own appointment event=%s", email, req.EventID)
		return ErrAccessDenied
	}

	if !appt.CanBeCancelled() {
		s.logger.Warn("Cancel: appointment event=%s cannot be cancelled, estado=%s", req.EventID, appt.Estado)
		return ErrCannotCancel
	}

	motivo := strings.TrimSpace(req.MotivoCancelacion)
	if motivo == "" {
		motivo = "No especificado"
	}

	if err := s.appointments.Cancel(ctx, appt.ID, motivo); err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Cancel: repository error cancelling id=%d: %v", appt.ID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// El evento puede haber desaparecido del calendario; no revierte la cancelación
	if err := s.calendar.DeleteEvent(ctx, req.EventID); err != nil {
		if errors.Is(err, calendarfeed.ErrEventNotFound) {
			s.logger.Warn("Cancel: calendar event=%s already gone", req.EventID)
		} else {
			s.logger.Error("Cancel: failed to delete calendar event=%s: %v", req.EventID, err)
		}
	}

	s.logger.Info("Cancel: cancelled appointment id=%d, event=%s", appt.ID, req.EventID)
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
