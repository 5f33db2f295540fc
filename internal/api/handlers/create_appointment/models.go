package create_appointment

import (
	createAppointment "github.com/vibracionalta/VA-AgendaService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Nombre         string  `json:"nombre"`
	Email          string  `json:"email"`
	Telefono       string  `json:"telefono"`
	FechaHoraISO   string  `json:"fechaHoraISO"`
	ComprobanteURL *string `json:"comprobanteUrl,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Success      bool    `json:"success"`
	Mensaje      string  `json:"mensaje"`
	Referencia   string  `json:"referencia"`
	EventID      string  `json:"eventId"`
	LinkCalendar *string `json:"linkCalendar,omitempty"`
	Fecha        string  `json:"fecha"`
	Hora         string  `json:"hora"`
}

// ToUseCaseRequest crea el request del use case desde el body HTTP
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		Nombre:         r.Nombre,
		Email:          r.Email,
		Telefono:       r.Telefono,
		FechaHoraISO:   r.FechaHoraISO,
		ComprobanteURL: r.ComprobanteURL,
	}
}

// FromUseCaseResponse convierte la respuesta del use case en el response HTTP
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	return &CreateAppointmentResponse{
		Success:      true,
		Mensaje:      msgCreated,
		Referencia:   resp.Referencia,
		EventID:      resp.EventID,
		LinkCalendar: resp.LinkCalendar,
		Fecha:        resp.Fecha,
		Hora:         resp.Hora,
	}
}
