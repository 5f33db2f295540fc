package get_available_days

import (
	"errors"
	"net/http"

	"github.com/vibracionalta/VA-AgendaService/internal/api/handlers"
	getAvailableDays "github.com/vibracionalta/VA-AgendaService/internal/usecase/get_available_days"
)

const (
	msgInvalidRequestBody = "cuerpo de la petición inválido"
	msgMissingHora        = "la hora es obligatoria"
	msgInvalidHora        = "formato de hora inválido, se espera HH:MM"
	msgNoOpenDays         = "no hay días disponibles en el horizonte de agenda"
)

type Handler struct {
	useCase GetAvailableDaysUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDaysUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/dias-disponibles
// Body: {"hora": "HH:MM"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Decodificamos el body
	var req AvailableDaysRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /dias-disponibles - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Llamamos al use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrInvalidInput):
			h.logger.Warn("POST /dias-disponibles - Missing hora")
			handlers.RespondBadRequest(w, msgMissingHora)

		case errors.Is(err, getAvailableDays.ErrInvalidTime):
			h.logger.Warn("POST /dias-disponibles - Invalid hora: hora=%s", req.Hora)
			handlers.RespondBadRequest(w, msgInvalidHora)

		default:
			h.logger.Error("POST /dias-disponibles - Failed to compute days: hora=%s, error=%v", req.Hora, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Formamos la respuesta HTTP
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /dias-disponibles - Days computed successfully: hora=%s, total_dias=%d",
		result.HoraConsultada, response.TotalDias)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// HandleLegacy GET /api/v1/dias-disponibles
// Devuelve las franjas del siguiente día hábil en la forma legada,
// para los clientes que aún no envían la hora en el body.
func (h *Handler) HandleLegacy(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.ExecuteLegacy(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, getAvailableDays.ErrNoOpenDays):
			h.logger.Warn("GET /dias-disponibles - No open days in horizon")
			handlers.RespondNotFound(w, msgNoOpenDays)

		default:
			h.logger.Error("GET /dias-disponibles - Failed to compute franjas: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromLegacyResponse(result)

	h.logger.Info("GET /dias-disponibles - Franjas computed successfully: fecha=%s, disponibles=%d/%d",
		response.Fecha, response.FranjasDisponibles, response.TotalFranjas)
	handlers.RespondJSON(w, http.StatusOK, response)
}
