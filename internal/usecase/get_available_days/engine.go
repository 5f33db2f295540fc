package get_available_days

import (
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

// Engine motor de disponibilidad: cálculo puro, sin E/S ni estado compartido.
// Con entradas iguales produce siempre la misma salida, por lo que es seguro
// invocarlo concurrentemente desde varias peticiones.
type Engine struct {
	schedule    domain.WeeklySchedule
	holidays    domain.HolidaySet
	loc         *time.Location
	horizonDays int
	duration    time.Duration
}

// NewEngine crea un motor con las plantillas, festivos y parámetros recibidos.
// Las tablas se inyectan explícitamente para poder sustituirlas en pruebas.
func NewEngine(
	schedule domain.WeeklySchedule,
	holidays domain.HolidaySet,
	loc *time.Location,
	horizonDays int,
	durationMinutes int,
) *Engine {
	return &Engine{
		schedule:    schedule,
		holidays:    holidays,
		loc:         loc,
		horizonDays: horizonDays,
		duration:    time.Duration(durationMinutes) * time.Minute,
	}
}

// HorizonDays devuelve el tamaño del horizonte en días
func (e *Engine) HorizonDays() int {
	return e.horizonDays
}

// DurationMinutes devuelve la duración de la cita en minutos
func (e *Engine) DurationMinutes() int {
	return int(e.duration / time.Minute)
}

// Location devuelve la zona horaria de operación
func (e *Engine) Location() *time.Location {
	return e.loc
}

// AvailableDays calcula los días del horizonte en los que la hora consultada
// está libre. Recorre los días desde mañana hasta now+horizonte, en orden
// cronológico; el día actual nunca se ofrece:
//  1. Los domingos se descartan.
//  2. Los festivos se descartan.
//  3. El día debe ofrecer exactamente la hora consultada en su plantilla.
//  4. El slot [inicio, inicio+duración) no debe solaparse con ningún intervalo ocupado.
//
// Una lista vacía es un resultado válido, no un error.
func (e *Engine) AvailableDays(hora types.TimeString, now time.Time, busy []domain.BusyInterval) []domain.AvailableDay {
	dias := make([]domain.AvailableDay, 0)

	day := startOfDay(now.In(e.loc))
	for d := 0; d < e.horizonDays; d++ {
		day = day.AddDate(0, 0, 1)

		if day.Weekday() == time.Sunday {
			continue
		}

		fecha := day.Format(domain.DateFormat)
		if e.holidays.Contains(fecha) {
			continue
		}

		// El día simplemente no ofrece esa hora: se salta, no es un error
		if !e.schedule.Offers(day.Weekday(), hora) {
			continue
		}

		slotStart, ok := atTime(day, hora)
		if !ok {
			continue
		}
		slotEnd := slotStart.Add(e.duration)

		if overlapsAny(slotStart, slotEnd, busy) {
			continue
		}

		dias = append(dias, domain.AvailableDay{
			Fecha:        fecha,
			DiaSemana:    day.Weekday().String(),
			FechaLegible: slotStart.Format(domain.LegibleDateFormat),
			Hora:         hora,
			FechaHoraISO: slotStart,
		})
	}

	return dias
}

// SlotFree indica si el slot que inicia en slotStart está libre según las
// reglas del motor: día hábil, hora ofrecida por la plantilla y sin solape
// con intervalos ocupados. Lo usa la creación de citas para revalidar.
func (e *Engine) SlotFree(slotStart time.Time, busy []domain.BusyInterval) bool {
	local := slotStart.In(e.loc)

	if local.Weekday() == time.Sunday {
		return false
	}
	if e.holidays.Contains(local.Format(domain.DateFormat)) {
		return false
	}
	if !e.schedule.Offers(local.Weekday(), types.NewTimeString(local)) {
		return false
	}
	return !overlapsAny(local, local.Add(e.duration), busy)
}

// NextOpenDay devuelve el primer día del horizonte que no es domingo ni festivo
func (e *Engine) NextOpenDay(now time.Time) (time.Time, bool) {
	day := startOfDay(now.In(e.loc))
	for d := 0; d < e.horizonDays; d++ {
		day = day.AddDate(0, 0, 1)
		if day.Weekday() == time.Sunday {
			continue
		}
		if e.holidays.Contains(day.Format(domain.DateFormat)) {
			continue
		}
		return day, true
	}
	return time.Time{}, false
}

// TimesFor expone la plantilla aplicable al día indicado
func (e *Engine) TimesFor(weekday time.Weekday) []types.TimeString {
	return e.schedule.TimesFor(weekday)
}

// overlapsAny indica si el slot [slotStart, slotEnd) se solapa con algún intervalo
func overlapsAny(slotStart, slotEnd time.Time, busy []domain.BusyInterval) bool {
	for _, b := range busy {
		if overlaps(slotStart, slotEnd, b) {
			return true
		}
	}
	return false
}

// overlaps evalúa el predicado de solape de tres cláusulas:
//
//	(S >= B && S < F) || (E > B && E <= F) || (S <= B && E >= F)
//
// con slot [S, E) y evento [B, F]. Un evento que termina justo cuando el slot
// empieza NO bloquea (S == F no cumple ninguna cláusula); un evento que empieza
// justo en S sí bloquea. La tercera cláusula cubre el evento contenido en el slot.
func overlaps(slotStart, slotEnd time.Time, b domain.BusyInterval) bool {
	startsDuring := !slotStart.Before(b.Start) && slotStart.Before(b.End)
	endsDuring := slotEnd.After(b.Start) && !slotEnd.After(b.End)
	contains := !slotStart.After(b.Start) && !slotEnd.Before(b.End)
	return startsDuring || endsDuring || contains
}

// startOfDay devuelve la medianoche del día de t, en la zona de t
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// atTime combina el día con la hora HH:MM, en la zona del día
func atTime(day time.Time, hora types.TimeString) (time.Time, bool) {
	h, m, err := hora.HourMinute()
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), true
}
