package manage_appointments

import (
	"github.com/vibracionalta/VA-AgendaService/internal/service/appointments/models"
)

// Acciones aceptadas en el campo accion
const (
	AccionListar   = "listar"
	AccionCancelar = "cancelar"
)

// ManageAppointmentsRequest HTTP request model.
// El endpoint es un despachador por accion, como lo consume el frontend.
type ManageAppointmentsRequest struct {
	Accion            string `json:"accion"`
	Email             string `json:"email"`
	EventID           string `json:"eventId"`
	MotivoCancelacion string `json:"motivoCancelacion"`
}

// ListCitasResponse HTTP response model de la acción listar
type ListCitasResponse struct {
	Success bool                  `json:"success"`
	Citas   []models.CitaResponse `json:"citas"`
}

// CancelCitaResponse HTTP response model de la acción cancelar
type CancelCitaResponse struct {
	Success bool   `json:"success"`
	Mensaje string `json:"mensaje"`
}

// ToListRequest crea el request de listado del servicio
func (r *ManageAppointmentsRequest) ToListRequest() *models.ListCitasRequest {
	return &models.ListCitasRequest{
		Email: r.Email,
	}
}

// ToCancelRequest crea el request de cancelación del servicio
func (r *ManageAppointmentsRequest) ToCancelRequest() *models.CancelCitaRequest {
	return &models.CancelCitaRequest{
		Email:             r.Email,
		EventID:           r.EventID,
		MotivoCancelacion: r.MotivoCancelacion,
	}
}

// FromServiceList convierte la respuesta del servicio en el response HTTP
func FromServiceList(resp *models.CitaListResponse) *ListCitasResponse {
	return &ListCitasResponse{
		Success: true,
		Citas:   resp.Citas,
	}
}
