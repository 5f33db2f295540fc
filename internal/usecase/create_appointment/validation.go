package create_appointment

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// validateRequest valida los datos del solicitante y devuelve el instante de inicio
func validateRequest(req *Request) (time.Time, error) {
	if req == nil {
		return time.Time{}, fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return time.Time{}, fmt.Errorf("%w: nombre is required", ErrInvalidInput)
	}
	if len(nombre) > domain.MaxNombreLength {
		return time.Time{}, fmt.Errorf("%w: nombre exceeds %d characters", ErrInvalidInput, domain.MaxNombreLength)
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		return time.Time{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength || !emailPattern.MatchString(email) {
		return time.Time{}, fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}

	telefono := strings.TrimSpace(req.Telefono)
	if telefono == "" {
		return time.Time{}, fmt.Errorf("%w: telefono is required", ErrInvalidInput)
	}
	if len(telefono) > domain.MaxPhoneLength {
		return time.Time{}, fmt.Errorf("%w: telefono exceeds %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if req.FechaHoraISO == "" {
		return time.Time{}, fmt.Errorf("%w: fechaHoraISO is required", ErrInvalidInput)
	}

	slotStart, err := time.Parse(time.RFC3339, req.FechaHoraISO)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidDateTime, err)
	}

	return slotStart, nil
}

// validateHorizon comprueba que el día del slot esté dentro del horizonte:
// posterior al día de hoy y a lo sumo horizonDays días adelante
func validateHorizon(slotStart, now time.Time, horizonDays int, loc *time.Location) error {
	slotDay := startOfDayIn(slotStart, loc)
	today := startOfDayIn(now, loc)

	if !slotDay.After(today) {
		return ErrSlotInPast
	}

	maxDay := today.AddDate(0, 0, horizonDays)
	if slotDay.After(maxDay) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrSlotInPast, horizonDays)
	}

	return nil
}

func startOfDayIn(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
