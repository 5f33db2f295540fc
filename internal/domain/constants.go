package domain

// Formatos de fecha y hora
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // yyyy-MM-dd

	// LegibleDateFormat formato "dd MMM yyyy" del campo fechaLegible.
	// Los nombres de mes en inglés son intencionales: el frontend los traduce.
	LegibleDateFormat = "02 Jan 2006"
)

// Valores por defecto del motor de disponibilidad
const (
	DefaultDurationMinutes = 90
	DefaultHorizonDays     = 60
	DefaultTimezone        = "America/Bogota"
)

// Límites de validación de datos del solicitante
const (
	MaxNombreLength = 120
	MaxEmailLength  = 254
	MaxPhoneLength  = 30
	MaxMotivoLength = 500
)

// DefaultWeekdayTimes horarios de lunes a viernes
var DefaultWeekdayTimes = []string{"09:00", "10:30", "12:30", "14:00", "16:00", "18:00"}

// DefaultSaturdayTimes los sábados solo se atiende a las 12:30
var DefaultSaturdayTimes = []string{"12:30"}

// DefaultHolidays festivos Colombia 2025
var DefaultHolidays = []string{
	"2025-01-01", "2025-01-06", "2025-03-24", "2025-04-17", "2025-04-18",
	"2025-05-01", "2025-06-02", "2025-06-23", "2025-06-30", "2025-07-07",
	"2025-07-20", "2025-08-07", "2025-08-18", "2025-10-13", "2025-11-03",
	"2025-11-17", "2025-12-08", "2025-12-25",
}
