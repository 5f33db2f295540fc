package calendarfeed

// EventTime marca temporal de un evento del calendario externo.
// Los eventos de día completo traen solo Date; los de hora traen DateTime.
type EventTime struct {
	DateTime string `json:"dateTime"`
	Date     string `json:"date"`
	TimeZone string `json:"timeZone"`
}

// Event evento del calendario externo
type Event struct {
	ID          string    `json:"id"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	Status      string    `json:"status"`
	HTMLLink    string    `json:"htmlLink"`
}

// CreateEventRequest petición de creación de evento
type CreateEventRequest struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
}

// ErrorResponse error devuelto por el feed
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
