package entity_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

func abrirSesion(t *testing.T) *entity.CashSession {
	t.Helper()
	return entity.NewCashSession("ses-1", "shop-1", decimal.NewFromInt(100), "op-1", time.Now())
}

func TestCashSession_CierreExacto(t *testing.T) {
	s := abrirSesion(t)
	expected := decimal.NewFromInt(250)

	err := s.Close(expected, expected, "op-2", time.Now())

	require.NoError(t, err)
	assert.Equal(t, entity.SessionClosed, s.Status)
	assert.True(t, s.Difference.IsZero())
	assert.Equal(t, entity.CountExact, s.CountResult)
	assert.Equal(t, "op-2", s.ClosedBy)
	require.NotNil(t, s.ClosedAt)
}

func TestCashSession_CierreSobrante(t *testing.T) {
	s := abrirSesion(t)
	expected := decimal.NewFromInt(250)
	counted := expected.Add(decimal.NewFromInt(5))

	require.NoError(t, s.Close(expected, counted, "op-1", time.Now()))

	assert.True(t, s.Difference.Equal(decimal.NewFromInt(5)), "diferencia debe ser +5")
	assert.Equal(t, entity.CountSurplus, s.CountResult)
}

func TestCashSession_CierreFaltante(t *testing.T) {
	s := abrirSesion(t)
	expected := decimal.NewFromInt(250)
	counted := expected.Sub(decimal.NewFromInt(5))

	require.NoError(t, s.Close(expected, counted, "op-1", time.Now()))

	assert.True(t, s.Difference.Equal(decimal.NewFromInt(-5)), "diferencia debe ser -5")
	assert.Equal(t, entity.CountShortage, s.CountResult)
}

func TestCashSession_CerrarDosVecesFalla(t *testing.T) {
	s := abrirSesion(t)
	require.NoError(t, s.Close(decimal.Zero, decimal.Zero, "op-1", time.Now()))

	err := s.Close(decimal.Zero, decimal.Zero, "op-1", time.Now())
	assert.ErrorIs(t, err, domain.ErrSessionNotOpen)
}

func TestClassifyDifference(t *testing.T) {
	assert.Equal(t, entity.CountExact, entity.ClassifyDifference(decimal.Zero))
	assert.Equal(t, entity.CountSurplus, entity.ClassifyDifference(decimal.NewFromFloat(0.01)))
	assert.Equal(t, entity.CountShortage, entity.ClassifyDifference(decimal.NewFromFloat(-0.01)))
}
