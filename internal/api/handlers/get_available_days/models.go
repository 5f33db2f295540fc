package get_available_days

import (
	"time"

	getAvailableDays "github.com/vibracionalta/VA-AgendaService/internal/usecase/get_available_days"
)

// AvailableDaysRequest HTTP request model
type AvailableDaysRequest struct {
	Hora string `json:"hora"`
}

// AvailableDaysResponse HTTP response model
type AvailableDaysResponse struct {
	Success        bool           `json:"success"`
	HoraConsultada string         `json:"horaConsultada"`
	TotalDias      int            `json:"totalDias"`
	Dias           []AvailableDay `json:"dias"`
}

// AvailableDay modelo de día disponible
type AvailableDay struct {
	Fecha        string `json:"fecha"`
	DiaSemana    string `json:"diaSemana"`
	FechaLegible string `json:"fechaLegible"`
	Hora         string `json:"hora"`
	FechaHoraISO string `json:"fechaHoraISO"`
}

// LegacyFranjasResponse respuesta del endpoint GET con la forma legada de franjas
type LegacyFranjasResponse struct {
	Fecha              string   `json:"fecha"`
	HorarioLaboral     string   `json:"horarioLaboral"`
	TotalFranjas       int      `json:"totalFranjas"`
	FranjasOcupadas    int      `json:"franjasOcupadas"`
	FranjasDisponibles int      `json:"franjasDisponibles"`
	Franjas            []Franja `json:"franjas"`
}

// Franja modelo de franja horaria
type Franja struct {
	Inicio     string `json:"inicio"`
	Fin        string `json:"fin"`
	Disponible bool   `json:"disponible"`
	Datetime   string `json:"datetime"`
}

// ToUseCaseRequest crea el request del use case desde el body HTTP
func (r *AvailableDaysRequest) ToUseCaseRequest() *getAvailableDays.Request {
	return &getAvailableDays.Request{
		Hora: r.Hora,
	}
}

// FromUseCaseResponse convierte la respuesta del use case en el response HTTP
func FromUseCaseResponse(resp *getAvailableDays.Response) *AvailableDaysResponse {
	dias := make([]AvailableDay, len(resp.Dias))
	for i, dia := range resp.Dias {
		dias[i] = AvailableDay{
			Fecha:        dia.Fecha,
			DiaSemana:    dia.DiaSemana,
			FechaLegible: dia.FechaLegible,
			Hora:         dia.Hora.String(),
			FechaHoraISO: dia.FechaHoraISO.Format(time.RFC3339),
		}
	}

	return &AvailableDaysResponse{
		Success:        true,
		HoraConsultada: resp.HoraConsultada.String(),
		TotalDias:      len(dias),
		Dias:           dias,
	}
}

// FromLegacyResponse convierte la respuesta legada del use case en el response HTTP
func FromLegacyResponse(resp *getAvailableDays.LegacyResponse) *LegacyFranjasResponse {
	franjas := make([]Franja, len(resp.Franjas))
	for i, f := range resp.Franjas {
		franjas[i] = Franja{
			Inicio:     f.Inicio.String(),
			Fin:        f.Fin.String(),
			Disponible: f.Disponible,
			Datetime:   f.Datetime.Format(time.RFC3339),
		}
	}

	return &LegacyFranjasResponse{
		Fecha:              resp.Fecha,
		HorarioLaboral:     resp.HorarioLaboral,
		TotalFranjas:       resp.TotalFranjas,
		FranjasOcupadas:    resp.FranjasOcupadas,
		FranjasDisponibles: resp.FranjasDisponibles,
		Franjas:            franjas,
	}
}
