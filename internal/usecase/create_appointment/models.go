package create_appointment

// Request petición de creación de cita
type Request struct {
	Nombre   string
	Email    string
	Telefono string

	// FechaHoraISO instante de inicio elegido, tal como lo devolvió la
	// consulta de días disponibles (ISO-8601)
	FechaHoraISO string

	// ComprobanteURL referencia del comprobante de pago ya subido (opcional)
	ComprobanteURL *string
}

// Response confirmación de la reserva
type Response struct {
	Referencia   string
	EventID      string
	LinkCalendar *string
	Fecha        string // yyyy-MM-dd
	Hora         string // HH:MM
}
