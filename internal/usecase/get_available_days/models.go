package get_available_days

import (
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

// Request petición de días disponibles para una hora concreta
type Request struct {
	Hora string // hora consultada en formato HH:MM
}

// Response lista ordenada de días en los que la hora consultada está libre
type Response struct {
	HoraConsultada types.TimeString
	Dias           []domain.AvailableDay
}

// Franja franja horaria del día, para la respuesta legada (GET sin cuerpo)
type Franja struct {
	Inicio     types.TimeString
	Fin        types.TimeString
	Disponible bool
	Datetime   time.Time
}

// LegacyResponse respuesta legada con todas las franjas del siguiente día hábil.
// La mantiene el endpoint GET para los clientes que aún parsean esta forma.
type LegacyResponse struct {
	Fecha              string // yyyy-MM-dd del día calculado
	HorarioLaboral     string // "HH:MM - HH:MM"
	TotalFranjas       int
	FranjasOcupadas    int
	FranjasDisponibles int
	Franjas            []Franja
}
