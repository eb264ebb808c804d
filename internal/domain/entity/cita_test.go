package entity_test

import (
	"testing"
	"time"

	"dental-clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestCitaEstado_CanTransition(t *testing.T) {
	cases := []struct {
		from    entity.CitaEstado
		to      entity.CitaEstado
		allowed bool
	}{
		{entity.CitaProgramada, entity.CitaConfirmada, true},
		{entity.CitaProgramada, entity.CitaEnProceso, true},
		{entity.CitaProgramada, entity.CitaCompletada, false},
		{entity.CitaConfirmada, entity.CitaEnProceso, true},
		{entity.CitaConfirmada, entity.CitaReagendada, true},
		{entity.CitaReagendada, entity.CitaReagendada, false},
		{entity.CitaEnProceso, entity.CitaCompletada, true},
		{entity.CitaEnProceso, entity.CitaConfirmada, false},
		{entity.CitaCompletada, entity.CitaProgramada, false},
		{entity.CitaCancelada, entity.CitaConfirmada, false},
		{entity.CitaNoAsistio, entity.CitaEnProceso, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransition(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestCitaEstado_IsTerminal(t *testing.T) {
	assert.True(t, entity.CitaCompletada.IsTerminal())
	assert.True(t, entity.CitaCancelada.IsTerminal())
	assert.True(t, entity.CitaNoAsistio.IsTerminal())
	assert.False(t, entity.CitaProgramada.IsTerminal())
	assert.False(t, entity.CitaEnProceso.IsTerminal())
}

func TestIsValidCitaEstado(t *testing.T) {
	assert.True(t, entity.IsValidCitaEstado("Programada"))
	assert.True(t, entity.IsValidCitaEstado("No_Asistio"))
	assert.False(t, entity.IsValidCitaEstado("programada"))
	assert.False(t, entity.IsValidCitaEstado(""))
	assert.False(t, entity.IsValidCitaEstado("Pendiente"))
}

func TestBuildSlotKey(t *testing.T) {
	fecha := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "7|2025-03-14|09:30", entity.BuildSlotKey(7, fecha, "09:30"))
}
