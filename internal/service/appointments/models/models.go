package models

import (
	"fmt"
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
)

// Request modelos

// ListCitasRequest petición de listado de citas por correo
type ListCitasRequest struct {
	Email string
}

// CancelCitaRequest petición de cancelación de una cita
type CancelCitaRequest struct {
	Email             string
	EventID           string
	MotivoCancelacion string
}

// Response modelos

// CitaResponse cita en el formato que consume el frontend
type CitaResponse struct {
	EventID      string  `json:"eventId"`
	Titulo       string  `json:"titulo"`
	Fecha        string  `json:"fecha"`        // yyyy-MM-dd
	Hora         string  `json:"hora"`         // HH:MM
	FechaLegible string  `json:"fechaLegible"` // dd MMM yyyy
	FechaISO     string  `json:"fechaISO"`     // ISO-8601
	Descripcion  string  `json:"descripcion"`
	LinkCalendar *string `json:"linkCalendar,omitempty"`
	Estado       string  `json:"estado"`
}

// CitaListResponse listado de citas de un correo
type CitaListResponse struct {
	Citas []CitaResponse `json:"citas"`
}

// FromDomainAppointment convierte el modelo de dominio en DTO
func FromDomainAppointment(a *domain.Appointment) *CitaResponse {
	if a == nil {
		return nil
	}

	eventID := ""
	if a.EventID != nil {
		eventID = *a.EventID
	}

	return &CitaResponse{
		EventID:      eventID,
		Titulo:       fmt.Sprintf("Sesión de Terapia Angelical - %s", a.Nombre),
		Fecha:        a.FechaHora.Format(domain.DateFormat),
		Hora:         a.Hora.String(),
		FechaLegible: a.FechaHora.Format(domain.LegibleDateFormat),
		FechaISO:     a.FechaHora.Format(time.RFC3339),
		Descripcion:  fmt.Sprintf("Reserva de %s (%s)", a.Nombre, a.Email),
		LinkCalendar: a.LinkCalendar,
		Estado:       string(a.Estado),
	}
}

// FromDomainAppointmentList convierte la lista de dominio en DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *CitaListResponse {
	resp := &CitaListResponse{
		Citas: make([]CitaResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if cita := FromDomainAppointment(appt); cita != nil {
			resp.Citas = append(resp.Citas, *cita)
		}
	}

	return resp
}
