package domain

import (
	"time"

	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

// WeeklySchedule plantilla semanal de horarios de inicio permitidos.
// El domingo no tiene plantilla: el consultorio cierra.
type WeeklySchedule struct {
	Weekday  []types.TimeString // lunes a viernes
	Saturday []types.TimeString
}

// TimesFor devuelve los horarios permitidos para el día de la semana indicado.
// Devuelve nil para el domingo.
func (s WeeklySchedule) TimesFor(weekday time.Weekday) []types.TimeString {
	switch weekday {
	case time.Sunday:
		return nil
	case time.Saturday:
		return s.Saturday
	default:
		return s.Weekday
	}
}

// Offers indica si la plantilla del día contiene exactamente el horario dado.
// La pertenencia es por igualdad de valor, sin tolerancia ni redondeo.
func (s WeeklySchedule) Offers(weekday time.Weekday, hora types.TimeString) bool {
	for _, t := range s.TimesFor(weekday) {
		if t == hora {
			return true
		}
	}
	return false
}

// HolidaySet conjunto de fechas festivas (yyyy-MM-dd) en la zona de operación.
// Inmutable durante un cálculo de disponibilidad.
type HolidaySet map[string]struct{}

// NewHolidaySet construye el conjunto a partir de una lista de fechas
func NewHolidaySet(dates []string) HolidaySet {
	set := make(HolidaySet, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	return set
}

// Contains indica si la fecha (yyyy-MM-dd) es festiva
func (h HolidaySet) Contains(date string) bool {
	_, ok := h[date]
	return ok
}

// BusyInterval intervalo ya reservado en el calendario externo.
// Los intervalos no vienen ordenados ni libres de solapamientos entre sí.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// AvailableDay día con el horario consultado libre; salida del motor de disponibilidad
type AvailableDay struct {
	Fecha        string           // yyyy-MM-dd
	DiaSemana    string           // nombre del día en inglés, el cliente lo traduce
	FechaLegible string           // dd MMM yyyy
	Hora         types.TimeString // la hora consultada
	FechaHoraISO time.Time        // inicio del slot en la zona de operación
}
