package create_appointment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	"github.com/vibracionalta/VA-AgendaService/internal/integrations/calendarfeed"
	availability "github.com/vibracionalta/VA-AgendaService/internal/usecase/get_available_days"
	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

// UseCase use case de creación de cita
type UseCase struct {
	engine       *availability.Engine
	appointments AppointmentRepository
	calendar     CalendarClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea un nuevo use case de creación de cita
func NewUseCase(
	engine *availability.Engine,
	appointments AppointmentRepository,
	calendar CalendarClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		engine:       engine,
		appointments: appointments,
		calendar:     calendar,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute crea la cita revalidando el slot dentro de una transacción
// serializable: dos peticiones concurrentes por el mismo slot no pueden
// reservarlo dos veces.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	slotStart, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	loc := uc.engine.Location()
	slotStart = slotStart.In(loc)
	now := uc.timeProvider.Now()

	uc.logger.Info("CreateAppointment: email=%s, slot=%s", req.Email, slotStart.Format(time.RFC3339))

	// 1. El día debe estar dentro del horizonte de reserva
	if err := validateHorizon(slotStart, now, uc.engine.HorizonDays(), loc); err != nil {
		uc.logger.Warn("CreateAppointment: slot %s outside horizon", slotStart.Format(time.RFC3339))
		return nil, err
	}

	// 2. Las reglas de plantilla no dependen de la ocupación: se comprueban antes
	if !uc.engine.SlotFree(slotStart, nil) {
		uc.logger.Warn("CreateAppointment: slot %s not offered", slotStart.Format(time.RFC3339))
		return nil, ErrSlotNotOffered
	}

	duration := time.Duration(uc.engine.DurationMinutes()) * time.Minute
	slotEnd := slotStart.Add(duration)

	var created *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Ocupación contra el calendario externo
		busy, err := uc.calendar.BusyIntervals(txCtx, slotStart.AddDate(0, 0, -1), slotEnd.AddDate(0, 0, 1))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to fetch busy intervals: %v", err)
			return fmt.Errorf("%w: failed to fetch busy intervals: %v", ErrInternal, err)
		}

		// 4. Ocupación contra las citas activas ya registradas (bloquea la ventana)
		existing, err := uc.appointments.GetActiveInWindow(txCtx, slotStart.AddDate(0, 0, -1), slotEnd.AddDate(0, 0, 1))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to fetch existing appointments: %v", err)
			return fmt.Errorf("%w: failed to fetch existing appointments: %v", ErrInternal, err)
		}
		for _, appt := range existing {
			busy = append(busy, domain.BusyInterval{Start: appt.FechaHora, End: appt.SlotEnd()})
		}

		if !uc.engine.SlotFree(slotStart, busy) {
			uc.logger.Warn("CreateAppointment: slot %s already occupied", slotStart.Format(time.RFC3339))
			return ErrSlotOccupied
		}

		// 5. Evento en el calendario externo
		event, err := uc.calendar.CreateEvent(txCtx, buildEventRequest(req, slotStart, slotEnd))
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create calendar event: %v", err)
			return fmt.Errorf("%w: failed to create calendar event: %v", ErrInternal, err)
		}

		appt := &domain.Appointment{
			Referencia:      uuid.NewString(),
			Nombre:          strings.TrimSpace(req.Nombre),
			Email:           strings.ToLower(strings.TrimSpace(req.Email)),
			Telefono:        strings.TrimSpace(req.Telefono),
			Fecha:           time.Date(slotStart.Year(), slotStart.Month(), slotStart.Day(), 0, 0, 0, 0, loc),
			Hora:            types.NewTimeString(slotStart),
			DurationMinutes: uc.engine.DurationMinutes(),
			FechaHora:       slotStart,
			Estado:          domain.StatusConfirmed,
			ComprobanteURL:  req.ComprobanteURL,
			EventID:         &event.ID,
		}
		if event.HTMLLink != "" {
			appt.LinkCalendar = &event.HTMLLink
		}

		created, err = uc.appointments.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to persist appointment: %v", err)
			return fmt.Errorf("%w: failed to persist appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created referencia=%s, event=%s, slot=%s",
		created.Referencia, *created.EventID, slotStart.Format(time.RFC3339))

	return &Response{
		Referencia:   created.Referencia,
		EventID:      *created.EventID,
		LinkCalendar: created.LinkCalendar,
		Fecha:        slotStart.Format(domain.DateFormat),
		Hora:         created.Hora.String(),
	}, nil
}

// buildEventRequest construye el evento de calendario de la cita
func buildEventRequest(req *Request, slotStart, slotEnd time.Time) *calendarfeed.CreateEventRequest {
	nombre := strings.TrimSpace(req.Nombre)
	return &calendarfeed.CreateEventRequest{
		Summary: fmt.Sprintf("Sesión de Terapia Angelical - %s", nombre),
		Description: fmt.Sprintf("Reserva de %s (%s, tel. %s)",
			nombre, strings.TrimSpace(req.Email), strings.TrimSpace(req.Telefono)),
		Start: calendarfeed.EventTime{DateTime: slotStart.Format(time.RFC3339)},
		End:   calendarfeed.EventTime{DateTime: slotEnd.Format(time.RFC3339)},
	}
}
