package get_available_days

import (
	"context"
	"fmt"
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	"github.com/vibracionalta/VA-AgendaService/pkg/types"
)

// UseCase use case de consulta de días disponibles para una hora
type UseCase struct {
	engine       *Engine
	calendar     CalendarClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea un nuevo use case de días disponibles
func NewUseCase(engine *Engine, calendar CalendarClient, logger Logger) *UseCase {
	return &UseCase{
		engine:       engine,
		calendar:     calendar,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute calcula los días del horizonte en los que la hora consultada está libre
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	hora, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableDays: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableDays: hora=%s", hora)

	now := uc.timeProvider.Now()

	busy, err := uc.fetchBusyIntervals(ctx, now)
	if err != nil {
		return nil, err
	}

	dias := uc.engine.AvailableDays(hora, now, busy)

	uc.logger.Info("GetAvailableDays: hora=%s, busy=%d, dias=%d", hora, len(busy), len(dias))

	return &Response{
		HoraConsultada: hora,
		Dias:           dias,
	}, nil
}

// ExecuteLegacy calcula las franjas del siguiente día hábil.
// Es la forma legada que devuelve el endpoint GET sin cuerpo.
func (uc *UseCase) ExecuteLegacy(ctx context.Context) (*LegacyResponse, error) {
	now := uc.timeProvider.Now()

	day, ok := uc.engine.NextOpenDay(now)
	if !ok {
		uc.logger.Warn("GetAvailableDaysLegacy: no open days within %d-day horizon", uc.engine.HorizonDays())
		return nil, ErrNoOpenDays
	}

	busy, err := uc.fetchBusyIntervals(ctx, now)
	if err != nil {
		return nil, err
	}

	times := uc.engine.TimesFor(day.Weekday())
	franjas := make([]Franja, 0, len(times))
	ocupadas := 0

	for _, t := range times {
		slotStart, ok := atTime(day, t)
		if !ok {
			continue
		}

		fin, err := t.AddMinutes(uc.engine.DurationMinutes())
		if err != nil {
			uc.logger.Warn("GetAvailableDaysLegacy: slot %s overflows the day, skipped", t)
			continue
		}

		disponible := !overlapsAny(slotStart, slotStart.Add(uc.engine.duration), busy)
		if !disponible {
			ocupadas++
		}

		franjas = append(franjas, Franja{
			Inicio:     t,
			Fin:        fin,
			Disponible: disponible,
			Datetime:   slotStart,
		})
	}

	uc.logger.Info("GetAvailableDaysLegacy: fecha=%s, franjas=%d, ocupadas=%d",
		day.Format(domain.DateFormat), len(franjas), ocupadas)

	return &LegacyResponse{
		Fecha:              day.Format(domain.DateFormat),
		HorarioLaboral:     workingHoursLabel(times, uc.engine.DurationMinutes()),
		TotalFranjas:       len(franjas),
		FranjasOcupadas:    ocupadas,
		FranjasDisponibles: len(franjas) - ocupadas,
		Franjas:            franjas,
	}, nil
}

// fetchBusyIntervals trae los intervalos ocupados cubriendo todo el horizonte
func (uc *UseCase) fetchBusyIntervals(ctx context.Context, now time.Time) ([]domain.BusyInterval, error) {
	windowStart := startOfDay(now.In(uc.engine.Location()))
	windowEnd := windowStart.AddDate(0, 0, uc.engine.HorizonDays()+1)

	busy, err := uc.calendar.BusyIntervals(ctx, windowStart, windowEnd)
	if err != nil {
		uc.logger.Error("GetAvailableDays: failed to fetch busy intervals: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch busy intervals: %v", ErrInternal, err)
	}
	return busy, nil
}

// workingHoursLabel construye la etiqueta "HH:MM - HH:MM" del horario laboral
func workingHoursLabel(times []types.TimeString, durationMinutes int) string {
	if len(times) == 0 {
		return ""
	}
	last := times[len(times)-1]
	end, err := last.AddMinutes(durationMinutes)
	if err != nil {
		end = last
	}
	return fmt.Sprintf("%s - %s", times[0], end)
}
