package create_appointment

import (
	"errors"
	"net/http"

	"github.com/vibracionalta/VA-AgendaService/internal/api/handlers"
	createAppointment "github.com/vibracionalta/VA-AgendaService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgInvalidData        = "datos de la reserva inválidos"
	msgInvalidDateTime    = "fecha y hora inválidas, se espera un instante ISO-8601"
	msgSlotNotOffered     = "el horario elegido no está disponible para citas"
	msgSlotInPast         = "el día elegido está fuera del horizonte de agenda"
	msgSlotOccupied       = "el horario elegido ya fue reservado"
	msgCreated            = "Tu cita ha sido agendada con éxito"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/citas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /citas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Llamamos al use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /citas - Invalid data: email=%s, error=%v", req.Email, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, createAppointment.ErrInvalidDateTime):
			h.logger.Warn("POST /citas - Invalid datetime: fecha_hora=%s", req.FechaHoraISO)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, createAppointment.ErrSlotNotOffered):
			h.logger.Warn("POST /citas - Slot not offered: fecha_hora=%s", req.FechaHoraISO)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createAppointment.ErrSlotInPast):
			h.logger.Warn("POST /citas - Day outside horizon: fecha_hora=%s", req.FechaHoraISO)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createAppointment.ErrSlotOccupied):
			h.logger.Warn("POST /citas - Slot occupied: fecha_hora=%s", req.FechaHoraISO)
			handlers.RespondError(w, http.StatusConflict, msgSlotOccupied)

		default:
			h.logger.Error("POST /citas - Failed to create appointment: email=%s, fecha_hora=%s, error=%v",
				req.Email, req.FechaHoraISO, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Formamos la respuesta HTTP
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /citas - Appointment created successfully: referencia=%s, event_id=%s, fecha=%s %s",
		result.Referencia, result.EventID, result.Fecha, result.Hora)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
