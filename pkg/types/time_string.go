package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeFormat se devuelve cuando el valor no tiene formato HH:MM
	ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

	// ErrTimeOutOfRange se devuelve cuando una operación sale del rango 00:00-23:59
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString representa una hora del día en formato "HH:MM" (24 horas).
// La comparación entre horarios es por igualdad exacta de valor, sin tolerancia.
type TimeString string

// NewTimeString crea un TimeString a partir de un time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString crea un TimeString validando el formato HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	// Normalizamos para garantizar ceros a la izquierda ("9:00" -> "09:00")
	return TimeString(parsed.Format(timeLayout)), nil
}

// String devuelve la representación "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero indica si el valor está vacío
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate verifica que el valor tenga formato HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return nil
}

// HourMinute devuelve la hora y el minuto como enteros
func (t TimeString) HourMinute() (int, int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// minutes devuelve los minutos transcurridos desde las 00:00
func (t TimeString) minutes() (int, error) {
	h, m, err := t.HourMinute()
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// IsBefore indica si t es estrictamente anterior a other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter indica si t es estrictamente posterior a other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes devuelve un nuevo TimeString desplazado la cantidad de minutos indicada.
// Devuelve error si el resultado queda fuera del rango del día.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}

	total += minutes
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, t, minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Value implementa driver.Valuer para persistencia en base de datos
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan implementa sql.Scanner
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		*t = TimeString(v)
	case []byte:
		*t = TimeString(v)
	case time.Time:
		*t = NewTimeString(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
	return nil
}
