package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	"github.com/vibracionalta/VA-AgendaService/pkg/dbmetrics"
	"github.com/vibracionalta/VA-AgendaService/pkg/psqlbuilder"
)

var appointmentColumns = []string{
	"id",
	"referencia",
	"nombre",
	"email",
	"telefono",
	"fecha",
	"hora",
	"duration_minutes",
	"fecha_hora",
	"estado",
	"comprobante_url",
	"event_id",
	"link_calendar",
	"motivo_cancelacion",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository repositorio de citas sobre PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository crea un nuevo repositorio de citas
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserta una cita. Si el contexto lleva una transacción activa
// (dbmetrics.WithExecutor) la usa; de lo contrario ejecuta sin transacción.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"referencia",
			"nombre",
			"email",
			"telefono",
			"fecha",
			"hora",
			"duration_minutes",
			"fecha_hora",
			"estado",
			"comprobante_url",
			"event_id",
			"link_calendar",
		).
		Values(
			appt.Referencia,
			appt.Nombre,
			appt.Email,
			appt.Telefono,
			appt.Fecha,
			appt.Hora,
			appt.DurationMinutes,
			appt.FechaHora,
			appt.Estado,
			appt.ComprobanteURL,
			appt.EventID,
			appt.LinkCalendar,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByEventID obtiene una cita por el identificador del evento de calendario
func (r *Repository) GetByEventID(ctx context.Context, eventID string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"event_id": eventID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEventID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByEventID")
}

// GetByEmail obtiene las citas de un correo, ordenadas por fecha de inicio.
// Por defecto solo devuelve citas activas; includeInactive añade las canceladas.
func (r *Repository) GetByEmail(ctx context.Context, email string, includeInactive bool) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"email": strings.ToLower(email)}).
		OrderBy("fecha_hora ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"estado": string(domain.StatusCancelled)})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// GetActiveInWindow obtiene las citas activas cuyo inicio cae en [from, to).
// Dentro de una transacción añade FOR UPDATE: el caso de uso de creación
// bloquea la ventana para evitar dobles reservas concurrentes.
func (r *Repository) GetActiveInWindow(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.GtOrEq{"fecha_hora": from}).
		Where(squirrel.Lt{"fecha_hora": to}).
		Where(squirrel.NotEq{"estado": string(domain.StatusCancelled)}).
		OrderBy("fecha_hora ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInWindow - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveInWindow - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// Cancel marca la cita como cancelada con el motivo recibido
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("estado", string(domain.StatusCancelled)).
		Set("motivo_cancelacion", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanOne(row rowScanner, op string) (*domain.Appointment, error) {
	appt, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, op, err)
	}
	return appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows iteration: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Referencia,
		&appt.Nombre,
		&appt.Email,
		&appt.Telefono,
		&appt.Fecha,
		&appt.Hora,
		&appt.DurationMinutes,
		&appt.FechaHora,
		&appt.Estado,
		&appt.ComprobanteURL,
		&appt.EventID,
		&appt.LinkCalendar,
		&appt.MotivoCancelacion,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}
