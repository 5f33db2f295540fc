package get_available_days

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibracionalta/VA-AgendaService/internal/domain"
	getAvailableDays "github.com/vibracionalta/VA-AgendaService/internal/usecase/get_available_days"
)

type fakeUseCase struct {
	resp       *getAvailableDays.Response
	legacyResp *getAvailableDays.LegacyResponse
	err        error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableDays.Request) (*getAvailableDays.Response, error) {
	return f.resp, f.err
}

func (f *fakeUseCase) ExecuteLegacy(_ context.Context) (*getAvailableDays.LegacyResponse, error) {
	return f.legacyResp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle_Success(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	useCase := &fakeUseCase{
		resp: &getAvailableDays.Response{
			HoraConsultada: "09:00",
			Dias: []domain.AvailableDay{
				{
					Fecha:        "2025-09-11",
					DiaSemana:    "Thursday",
					FechaLegible: "11 Sep 2025",
					Hora:         "09:00",
					FechaHoraISO: time.Date(2025, 9, 11, 9, 0, 0, 0, loc),
				},
			},
		},
	}
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dias-disponibles", strings.NewReader(`{"hora":"09:00"}`))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableDaysResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.True(t, body.Success)
	assert.Equal(t, "09:00", body.HoraConsultada)
	assert.Equal(t, 1, body.TotalDias)
	require.Len(t, body.Dias, 1)
	assert.Equal(t, "2025-09-11", body.Dias[0].Fecha)
	assert.Equal(t, "Thursday", body.Dias[0].DiaSemana)
	assert.Equal(t, "11 Sep 2025", body.Dias[0].FechaLegible)
	assert.Equal(t, "09:00", body.Dias[0].Hora)
	assert.Equal(t, "2025-09-11T09:00:00-05:00", body.Dias[0].FechaHoraISO)
}

func TestHandler_Handle_EmptyDays(t *testing.T) {
	useCase := &fakeUseCase{
		resp: &getAvailableDays.Response{
			HoraConsultada: "20:00",
			Dias:           []domain.AvailableDay{},
		},
	}
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dias-disponibles", strings.NewReader(`{"hora":"20:00"}`))
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableDaysResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 0, body.TotalDias)
	assert.NotNil(t, body.Dias)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		useCaseErr error
		wantStatus int
	}{
		{"body malformado", `{`, nil, http.StatusBadRequest},
		{"hora ausente", `{}`, getAvailableDays.ErrInvalidInput, http.StatusBadRequest},
		{"hora inválida", `{"hora":"99:99"}`, getAvailableDays.ErrInvalidTime, http.StatusBadRequest},
		{"error interno", `{"hora":"09:00"}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.useCaseErr}, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/dias-disponibles", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_HandleLegacy(t *testing.T) {
	loc, err := time.LoadLocation("America/Bogota")
	require.NoError(t, err)

	useCase := &fakeUseCase{
		legacyResp: &getAvailableDays.LegacyResponse{
			Fecha:              "2025-09-11",
			HorarioLaboral:     "09:00 - 19:30",
			TotalFranjas:       2,
			FranjasOcupadas:    1,
			FranjasDisponibles: 1,
			Franjas: []getAvailableDays.Franja{
				{
					Inicio:     "09:00",
					Fin:        "10:30",
					Disponible: false,
					Datetime:   time.Date(2025, 9, 11, 9, 0, 0, 0, loc),
				},
				{
					Inicio:     "10:30",
					Fin:        "12:00",
					Disponible: true,
					Datetime:   time.Date(2025, 9, 11, 10, 30, 0, 0, loc),
				},
			},
		},
	}
	handler := NewHandler(useCase, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dias-disponibles", nil)
	rec := httptest.NewRecorder()
	handler.HandleLegacy(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body LegacyFranjasResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "2025-09-11", body.Fecha)
	assert.Equal(t, "09:00 - 19:30", body.HorarioLaboral)
	assert.Equal(t, 2, body.TotalFranjas)
	assert.Equal(t, 1, body.FranjasOcupadas)
	assert.Equal(t, 1, body.FranjasDisponibles)
	require.Len(t, body.Franjas, 2)
	assert.False(t, body.Franjas[0].Disponible)
	assert.Equal(t, "2025-09-11T09:00:00-05:00", body.Franjas[0].Datetime)
}

func TestHandler_HandleLegacy_NoOpenDays(t *testing.T) {
	handler := NewHandler(&fakeUseCase{err: getAvailableDays.ErrNoOpenDays}, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dias-disponibles", nil)
	rec := httptest.NewRecorder()
	handler.HandleLegacy(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
