package manage_appointments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibracionalta/VA-AgendaService/internal/service/appointments"
	"github.com/vibracionalta/VA-AgendaService/internal/service/appointments/models"
)

type fakeService struct {
	listResp *models.CitaListResponse
	listErr  error

	cancelErr error
	cancelled *models.CancelCitaRequest
}

func (f *fakeService) List(_ context.Context, _ *models.ListCitasRequest) (*models.CitaListResponse, error) {
	return f.listResp, f.listErr
}

func (f *fakeService) Cancel(_ context.Context, req *models.CancelCitaRequest) error {
	f.cancelled = req
	return f.cancelErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(t *testing.T, handler *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/gestionar-citas", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandler_Handle_Listar(t *testing.T) {
	service := &fakeService{
		listResp: &models.CitaListResponse{
			Citas: []models.CitaResponse{
				{
					EventID: "evt-123",
					Titulo:  "Sesión de Terapia Angelical - Ana María",
					Fecha:   "2025-09-11",
					Hora:    "09:00",
					Estado:  "confirmada",
				},
			},
		},
	}
	handler := NewHandler(service, nopLogger{})

	rec := post(t, handler, `{"accion":"listar","email":"ana.maria@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body ListCitasResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Citas, 1)
	assert.Equal(t, "evt-123", body.Citas[0].EventID)
}

func TestHandler_Handle_Cancelar(t *testing.T) {
	service := &fakeService{}
	handler := NewHandler(service, nopLogger{})

	rec := post(t, handler, `{"accion":"cancelar","email":"ana.maria@example.com","eventId":"evt-123","motivoCancelacion":"viaje"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body CancelCitaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.Mensaje)

	require.NotNil(t, service.cancelled)
	assert.Equal(t, "evt-123", service.cancelled.EventID)
	assert.Equal(t, "viaje", service.cancelled.MotivoCancelacion)
}

func TestHandler_Handle_UnknownAction(t *testing.T) {
	handler := NewHandler(&fakeService{}, nopLogger{})

	rec := post(t, handler, `{"accion":"reagendar","email":"ana@example.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_InvalidBody(t *testing.T) {
	handler := NewHandler(&fakeService{}, nopLogger{})

	rec := post(t, handler, `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_Handle_CancelErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"datos incompletos", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"cita no encontrada", appointments.ErrAppointmentNotFound, http.StatusNotFound},
		{"cita ajena", appointments.ErrAccessDenied, http.StatusForbidden},
		{"ya cancelada", appointments.ErrCannotCancel, http.StatusBadRequest},
		{"error interno", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeService{cancelErr: tt.serviceErr}, nopLogger{})

			rec := post(t, handler, `{"accion":"cancelar","email":"ana@example.com","eventId":"evt-123"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_Handle_ListErrors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{"email ausente", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"error interno", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeService{listErr: tt.serviceErr}, nopLogger{})

			rec := post(t, handler, `{"accion":"listar","email":"ana@example.com"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
