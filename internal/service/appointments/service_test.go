package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	apptRepo "github.com/vibracionalta/VA-AgendaService/internal/infra/storage/appointment"
	"github.com/vibracionalta/VA-AgendaService/internal/integrations/calendarfeed"
	"github.com/vibracionalta/VA-AgendaService/internal/service/appointments/models"
	"github.com/vibracionalta/VA-AgendaService/pkg/ptr"
)

type fakeRepo struct {
	byEmail   []*domain.Appointment
	byEventID *domain.Appointment

	emailErr  error
	eventErr  error
	cancelErr error

	requestedEmail string
	cancelledID    int64
	cancelReason   string
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string, _ bool) ([]*domain.Appointment, error) {
	f.requestedEmail = email
	return f.byEmail, f.emailErr
}

func (f *fakeRepo) GetByEventID(_ context.Context, _ string) (*domain.Appointment, error) {
	if f.eventErr != nil {
		return nil, f.eventErr
	}
	return f.byEventID, nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	f.cancelledID = id
	f.cancelReason = reason
	return f.cancelErr
}

type fakeCalendar struct {
	deleteErr error
	deletedID string
}

func (f *fakeCalendar) DeleteEvent(_ context.Context, eventID string) error {
	f.deletedID = eventID
	return f.deleteErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testAppointment(t *testing.T) *domain.Appointment {
	t.Helper()
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	return &domain.Appointment{
		ID:              7,
		Referencia:      "ref-7",
		Nombre:          "Ana María",
		Email:           "ana.maria@example.com",
		Telefono:        "+57 300 123 4567",
		Fecha:           time.Date(2025, 9, 11, 0, 0, 0, 0, loc),
		Hora:            "09:00",
		DurationMinutes: 90,
		FechaHora:       time.Date(2025, 9, 11, 9, 0, 0, 0, loc),
		Estado:          domain.StatusConfirmed,
		EventID:         ptr.Ptr("evt-123"),
	}
}

func TestService_List(t *testing.T) {
	repo := &fakeRepo{byEmail: []*domain.Appointment{testAppointment(t)}}
	svc := NewService(repo, &fakeCalendar{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListCitasRequest{Email: "  Ana.Maria@Example.com "})
	require.NoError(t, err)
	require.Len(t, resp.Citas, 1)

	// El correo se normaliza antes de consultar
	assert.Equal(t, "ana.maria@example.com", repo.requestedEmail)

	cita := resp.Citas[0]
	assert.Equal(t, "evt-123", cita.EventID)
	assert.Equal(t, "Sesión de Terapia Angelical - Ana María", cita.Titulo)
	assert.Equal(t, "2025-09-11", cita.Fecha)
	assert.Equal(t, "09:00", cita.Hora)
	assert.Equal(t, "confirmada", cita.Estado)
}

func TestService_List_EmptyResult(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeCalendar{}, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListCitasRequest{Email: "nadie@example.com"})
	require.NoError(t, err)
	assert.Empty(t, resp.Citas)
}

func TestService_List_MissingEmail(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeCalendar{}, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListCitasRequest{Email: "   "})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeRepo{byEventID: testAppointment(t)}
	calendar := &fakeCalendar{}
	svc := NewService(repo, calendar, nopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{
		Email:             "ana.maria@example.com",
		EventID:           "evt-123",
		MotivoCancelacion: "viaje imprevisto",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), repo.cancelledID)
	assert.Equal(t, "viaje imprevisto", repo.cancelReason)
	assert.Equal(t, "evt-123", calendar.deletedID)
}

func TestService_Cancel_DefaultReason(t *testing.T) {
	repo := &fakeRepo{byEventID: testAppointment(t)}
	svc := NewService(repo, &fakeCalendar{}, nopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{
		Email:   "ana.maria@example.com",
		EventID: "evt-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "No especificado", repo.cancelReason)
}

func TestService_Cancel_WrongEmail(t *testing.T) {
	repo := &fakeRepo{byEventID: testAppointment(t)}
	svc := NewService(repo, &fakeCalendar{}, nopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{
		Email:   "otra@example.com",
		EventID: "evt-123",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelledID, "no se cancela una cita ajena")
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := &fakeRepo{eventErr: apptRepo.ErrAppointmentNotFound}
	svc := NewService(repo, &fakeCalendar{}, nopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{
		Email:   "ana.maria@example.com",
		EventID: "evt-999",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	appt := testAppointment(t)
	appt.Estado = domain.StatusCancelled

	svc := NewService(&fakeRepo{byEventID: appt}, &fakeCalendar{}, nopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{
		Email:   "ana.maria@example.com",
		EventID: "evt-123",
	})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_MissingFields(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeCalendar{}, nopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{EventID: "evt-123"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Cancel(context.Background(), &models.CancelCitaRequest{Email: "ana@example.com"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel_CalendarEventAlreadyGone(t *testing.T) {
	repo := &fakeRepo{byEventID: testAppointment(t)}
	calendar := &fakeCalendar{deleteErr: calendarfeed.ErrEventNotFound}
	svc := NewService(repo, calendar, nopLogger{})

	// La cancelación local se mantiene aunque el evento ya no exista
	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{
		Email:   "ana.maria@example.com",
		EventID: "evt-123",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.cancelledID)
}

func TestService_Cancel_RepositoryFailure(t *testing.T) {
	repo := &fakeRepo{byEventID: testAppointment(t), cancelErr: errors.New("boom")}
	svc := NewService(repo, &fakeCalendar{}, nopLogger{})

	err := svc.Cancel(context.Background(), &models.CancelCitaRequest{
		Email:   "ana.maria@example.com",
		EventID: "evt-123",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
