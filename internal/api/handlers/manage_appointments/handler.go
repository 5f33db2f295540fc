package manage_appointments

import (
	"errors"
	"net/http"

	"github.com/vibracionalta/VA-AgendaService/internal/api/handlers"
	"github.com/vibracionalta/VA-AgendaService/internal/service/appointments"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgUnknownAction      = "acción desconocida, se espera listar o cancelar"
	msgMissingEmail       = "el email es obligatorio"
	msgMissingCancelData  = "el email y el eventId son obligatorios"
	msgNotFound           = "cita no encontrada"
	msgForbidden          = "la cita no pertenece a ese email"
	msgCannotCancel       = "la cita ya no puede cancelarse"
	msgCancelled          = "Tu cita ha sido cancelada"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/gestionar-citas
// Body: {"accion": "listar"|"cancelar", ...}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req ManageAppointmentsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /gestionar-citas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Despachamos por accion
	switch req.Accion {
	case AccionListar:
		h.handleList(w, r, &req)
	case AccionCancelar:
		h.handleCancel(w, r, &req)
	default:
		h.logger.Warn("POST /gestionar-citas - Unknown action: accion=%s", req.Accion)
		handlers.RespondBadRequest(w, msgUnknownAction)
	}
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request, req *ManageAppointmentsRequest) {
	result, err := h.service.List(r.Context(), req.ToListRequest())
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /gestionar-citas - Missing email for listar")
			handlers.RespondBadRequest(w, msgMissingEmail)

		default:
			h.logger.Error("POST /gestionar-citas - Failed to list appointments: email=%s, error=%v",
				req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /gestionar-citas - Appointments listed successfully: email=%s, citas_count=%d",
		req.Email, len(result.Citas))
	handlers.RespondJSON(w, http.StatusOK, FromServiceList(result))
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request, req *ManageAppointmentsRequest) {
	err := h.service.Cancel(r.Context(), req.ToCancelRequest())
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("POST /gestionar-citas - Invalid cancel request: email=%s, event_id=%s",
				req.Email, req.EventID)
			handlers.RespondBadRequest(w, msgMissingCancelData)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("POST /gestionar-citas - Appointment not found: event_id=%s", req.EventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("POST /gestionar-citas - Access denied: email=%s, event_id=%s",
				req.Email, req.EventID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("POST /gestionar-citas - Cannot cancel: event_id=%s", req.EventID)
			handlers.RespondBadRequest(w, msgCannotCancel)

		default:
			h.logger.Error("POST /gestionar-citas - Failed to cancel appointment: event_id=%s, error=%v",
				req.EventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /gestionar-citas - Appointment cancelled successfully: email=%s, event_id=%s",
		req.Email, req.EventID)
	handlers.RespondJSON(w, http.StatusOK, &CancelCitaResponse{
		Success: true,
		Mensaje: msgCancelled,
	})
}
