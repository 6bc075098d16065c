package cashbox_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/cashbox"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

const (
	testShop     = "shop-1"
	testOperator = "user-1"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeSessionRepo struct {
	sessions map[string]*entity.CashSession
}

func (r *fakeSessionRepo) CreateOpen(s *entity.CashSession) error {
	for _, existing := range r.sessions {
		if existing.ShopID == s.ShopID && existing.Status == entity.SessionOpen {
			return domain.ErrSessionAlreadyOpen
		}
	}
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) GetByID(id string) (*entity.CashSession, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) GetOpenByShop(shopID string) (*entity.CashSession, error) {
	for _, s := range r.sessions {
		if s.ShopID == shopID && s.Status == entity.SessionOpen {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeSessionRepo) Close(s *entity.CashSession) error {
	existing, ok := r.sessions[s.ID]
	if !ok || existing.Status != entity.SessionOpen {
		return domain.ErrSessionNotOpen
	}
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

type fakeCashMovementRepo struct {
	movements []*entity.CashMovement
}

func (r *fakeCashMovementRepo) Create(m *entity.CashMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeCashMovementRepo) ListBySession(sessionID string) ([]*entity.CashMovement, error) {
	var out []*entity.CashMovement
	for _, m := range r.movements {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeCashMovementRepo) SumBySession(sessionID string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, m := range r.movements {
		if m.SessionID == sessionID {
			sum = sum.Add(m.Amount)
		}
	}
	return sum, nil
}

func newUseCase() (*cashbox.CashboxUseCase, *fakeSessionRepo, *fakeCashMovementRepo) {
	sessions := &fakeSessionRepo{sessions: map[string]*entity.CashSession{}}
	movements := &fakeCashMovementRepo{}
	return cashbox.NewCashboxUseCase(sessions, movements, logger.Nop()), sessions, movements
}

func amt(v string) decimal.Decimal {
	d, _ := decimal.NewFromString(v)
	return d
}

// ──────────────────────────────────────────────────────────────────────────────
// Apertura
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_CreaSesionAbierta(t *testing.T) {
	uc, _, _ := newUseCase()

	out, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("100.00")})
	require.NoError(t, err)

	assert.Equal(t, entity.SessionOpen, out.Status)
	assert.Equal(t, testShop, out.ShopID)
	assert.True(t, out.OpeningAmount.Equal(amt("100.00")))
	assert.Equal(t, testOperator, out.OpenedBy)
}

func TestOpen_MontoNegativo_Rechazado(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOpen_SegundaApertura_ConservaLaOriginal(t *testing.T) {
	uc, _, _ := newUseCase()

	first, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("100")})
	require.NoError(t, err)

	_, err = uc.Open(testShop, "otro-operador", dto.OpenSessionRequest{OpeningAmount: amt("200")})
	assert.ErrorIs(t, err, domain.ErrSessionAlreadyOpen)

	current, err := uc.Current(testShop)
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID, "la sesión original debe seguir abierta")
	assert.True(t, current.OpeningAmount.Equal(amt("100")), "el monto inicial original no debe cambiar")
}

func TestOpen_OtraTienda_NoInterfiere(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("100")})
	require.NoError(t, err)

	_, err = uc.Open("shop-2", testOperator, dto.OpenSessionRequest{OpeningAmount: amt("50")})
	assert.NoError(t, err, "el invariante de sesión única es por tienda")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cierre con arqueo
// ──────────────────────────────────────────────────────────────────────────────

// closeWith abre una sesión con monto inicial 100, registra movimientos netos
// por `net` y la cierra contando `counted`.
func closeWith(t *testing.T, net, counted string) *dto.CloseSessionResponse {
	t.Helper()
	uc, _, movements := newUseCase()

	opened, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("100")})
	require.NoError(t, err)

	if net != "0" {
		require.NoError(t, movements.Create(&entity.CashMovement{
			ID:        "mov-1",
			SessionID: opened.ID,
			ShopID:    testShop,
			Type:      entity.CashMovementSale,
			Amount:    amt(net),
		}))
	}

	out, err := uc.Close(testShop, testOperator, opened.ID, dto.CloseSessionRequest{CountedAmount: amt(counted)})
	require.NoError(t, err)
	return out
}

func TestClose_ArqueoExacto(t *testing.T) {
	out := closeWith(t, "50", "150")

	assert.True(t, out.ExpectedAmount.Equal(amt("150")), "esperado = inicial + movimientos")
	assert.True(t, out.Difference.IsZero())
	assert.Equal(t, entity.CountExact, out.CountResult)
}

func TestClose_Sobrante(t *testing.T) {
	out := closeWith(t, "50", "155")

	assert.True(t, out.Difference.Equal(amt("5")))
	assert.Equal(t, entity.CountSurplus, out.CountResult)
}

func TestClose_Faltante(t *testing.T) {
	out := closeWith(t, "50", "145")

	assert.True(t, out.Difference.Equal(amt("-5")))
	assert.Equal(t, entity.CountShortage, out.CountResult)
}

func TestClose_SesionInexistente(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Close(testShop, testOperator, "no-existe", dto.CloseSessionRequest{CountedAmount: amt("0")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClose_DobleCierre_Rechazado(t *testing.T) {
	uc, _, _ := newUseCase()

	opened, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("100")})
	require.NoError(t, err)

	_, err = uc.Close(testShop, testOperator, opened.ID, dto.CloseSessionRequest{CountedAmount: amt("100")})
	require.NoError(t, err)

	_, err = uc.Close(testShop, testOperator, opened.ID, dto.CloseSessionRequest{CountedAmount: amt("100")})
	assert.ErrorIs(t, err, domain.ErrSessionNotOpen)
}

func TestClose_SesionDeOtraTienda_Rechazado(t *testing.T) {
	uc, _, _ := newUseCase()

	opened, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("100")})
	require.NoError(t, err)

	_, err = uc.Close("shop-2", testOperator, opened.ID, dto.CloseSessionRequest{CountedAmount: amt("100")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos manuales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterIncomeExpense_AfectanElEsperado(t *testing.T) {
	uc, _, movements := newUseCase()

	opened, err := uc.Open(testShop, testOperator, dto.OpenSessionRequest{OpeningAmount: amt("100")})
	require.NoError(t, err)

	require.NoError(t, uc.RegisterIncome(testShop, testOperator, dto.CashMovementRequest{
		Amount: amt("30"), Description: "fondo extra",
	}))
	require.NoError(t, uc.RegisterExpense(testShop, testOperator, dto.CashMovementRequest{
		Amount: amt("12.50"), Description: "compra de bolsas",
	}))

	sum, err := movements.SumBySession(opened.ID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(amt("17.50")), "ingreso - egreso = 17.50, fue %s", sum)

	out, err := uc.Close(testShop, testOperator, opened.ID, dto.CloseSessionRequest{CountedAmount: amt("117.50")})
	require.NoError(t, err)
	assert.Equal(t, entity.CountExact, out.CountResult)
}

func TestRegisterExpense_SinSesionAbierta(t *testing.T) {
	uc, _, _ := newUseCase()

	err := uc.RegisterExpense(testShop, testOperator, dto.CashMovementRequest{
		Amount: amt("10"), Description: "egreso",
	})
	assert.ErrorIs(t, err, domain.ErrNoOpenSession)
}

func TestRegisterIncome_MontoInvalido(t *testing.T) {
	uc, _, _ := newUseCase()

	err := uc.RegisterIncome(testShop, testOperator, dto.CashMovementRequest{
		Amount: amt("0"), Description: "nada",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.RegisterIncome(testShop, testOperator, dto.CashMovementRequest{
		Amount: amt("10"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la descripción es obligatoria")
}

func TestCurrent_SinSesion(t *testing.T) {
	uc, _, _ := newUseCase()

	_, err := uc.Current(testShop)
	assert.ErrorIs(t, err, domain.ErrNoOpenSession)
}
