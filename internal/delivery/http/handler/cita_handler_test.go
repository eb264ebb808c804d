package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dental-clinic-api/internal/delivery/dto"
	"dental-clinic-api/internal/delivery/http/handler"
	"dental-clinic-api/internal/domain/repository"
	"dental-clinic-api/internal/usecase"
	"dental-clinic-api/pkg/validator"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCitaUsecase struct {
	createFn       func(context.Context, *dto.CreateCitaRequest) (*dto.CitaResponse, error)
	updateEstadoFn func(context.Context, uint, *dto.UpdateCitaEstadoRequest) (*dto.CitaResponse, error)
}

func (f *fakeCitaUsecase) Create(ctx context.Context, req *dto.CreateCitaRequest) (*dto.CitaResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeCitaUsecase) GetByID(ctx context.Context, id uint) (*dto.CitaResponse, error) {
	return nil, usecase.ErrCitaNotFound
}

func (f *fakeCitaUsecase) Search(ctx context.Context, filter *repository.CitaFilter) (*dto.CitaListResponse, error) {
	return &dto.CitaListResponse{}, nil
}

func (f *fakeCitaUsecase) UpdateEstado(ctx context.Context, id uint, req *dto.UpdateCitaEstadoRequest) (*dto.CitaResponse, error) {
	return f.updateEstadoFn(ctx, id, req)
}

func (f *fakeCitaUsecase) Reschedule(ctx context.Context, id uint, req *dto.RescheduleCitaRequest) (*dto.CitaResponse, error) {
	return nil, usecase.ErrCitaNotFound
}

func (f *fakeCitaUsecase) Cancel(ctx context.Context, id uint) error {
	return usecase.ErrCitaNotFound
}

func (f *fakeCitaUsecase) MarkNoShows(ctx context.Context) (*dto.SweepResponse, error) {
	return &dto.SweepResponse{}, nil
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCitaHandler_Create_SlotConflict(t *testing.T) {
	fake := &fakeCitaUsecase{
		createFn: func(ctx context.Context, req *dto.CreateCitaRequest) (*dto.CitaResponse, error) {
			return nil, usecase.ErrSlotTaken
		},
	}
	h := handler.NewCitaHandler(fake, validator.NewValidator())

	payload, _ := json.Marshal(dto.CreateCitaRequest{
		PacienteID:      3,
		DoctorID:        1,
		FechaConsulta:   "2025-03-14",
		HorarioConsulta: "09:30",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/citas", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "El horario seleccionado ya está ocupado", body["message"])
}

func TestCitaHandler_Create_ValidationFails(t *testing.T) {
	fake := &fakeCitaUsecase{
		createFn: func(ctx context.Context, req *dto.CreateCitaRequest) (*dto.CitaResponse, error) {
			t.Fatal("usecase should not be reached")
			return nil, nil
		},
	}
	h := handler.NewCitaHandler(fake, validator.NewValidator())

	// Missing fecha and horario.
	payload := []byte(`{"doctor_id": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/citas", bytes.NewReader(payload))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCitaHandler_UpdateEstado_NotFound(t *testing.T) {
	fake := &fakeCitaUsecase{
		updateEstadoFn: func(ctx context.Context, id uint, req *dto.UpdateCitaEstadoRequest) (*dto.CitaResponse, error) {
			return nil, usecase.ErrCitaNotFound
		},
	}
	h := handler.NewCitaHandler(fake, validator.NewValidator())

	payload := []byte(`{"estado": "Confirmada"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/citas/99/estado", bytes.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"id": "99"})
	rec := httptest.NewRecorder()

	h.UpdateEstado(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Cita no encontrada", body["message"])
}

func TestCitaHandler_UpdateEstado_InvalidTransition(t *testing.T) {
	fake := &fakeCitaUsecase{
		updateEstadoFn: func(ctx context.Context, id uint, req *dto.UpdateCitaEstadoRequest) (*dto.CitaResponse, error) {
			return nil, usecase.ErrCitaTerminal
		},
	}
	h := handler.NewCitaHandler(fake, validator.NewValidator())

	payload := []byte(`{"estado": "Confirmada"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/citas/7/estado", bytes.NewReader(payload))
	req = mux.SetURLVars(req, map[string]string{"id": "7"})
	rec := httptest.NewRecorder()

	h.UpdateEstado(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
