package appointment

import "errors"

var (
	// ErrAppointmentNotFound se devuelve cuando la cita no existe
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrBuildQuery se devuelve ante un error construyendo la consulta SQL
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery se devuelve ante un error ejecutando la consulta SQL
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow se devuelve ante un error leyendo el resultado de la consulta
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)
