package purchases_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/purchases"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

const (
	testShop     = "shop-1"
	testOperator = "user-1"
)

type fakeProductRepo struct {
	products map[string]*entity.ShopProduct
}

func (r *fakeProductRepo) GetByID(id string) (*entity.ShopProduct, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) ListByShop(shopID string, limit, offset int) ([]*entity.ShopProduct, error) {
	return nil, nil
}

func (r *fakeProductRepo) Create(p *entity.ShopProduct) error { return nil }
func (r *fakeProductRepo) Update(p *entity.ShopProduct) error { return nil }

func (r *fakeProductRepo) GetForUpdate(id string) (*entity.ShopProduct, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) ApplyDelta(id string, delta int64) (*entity.ShopProduct, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if p.Quantity+delta < 0 {
		return nil, domain.ErrInsufficientStock
	}
	p.Quantity += delta
	cp := *p
	return &cp, nil
}

type fakePurchaseRepo struct {
	purchases map[string]*entity.Purchase
}

func (r *fakePurchaseRepo) Create(p *entity.Purchase) error {
	cp := *p
	r.purchases[p.ID] = &cp
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	p, ok := r.purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakePurchaseRepo) ListByShop(shopID string, limit, offset int) ([]*entity.Purchase, error) {
	return nil, nil
}

type fakeStockMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeStockMovementRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movements = append(r.movements, &cp)
	return nil
}

func (r *fakeStockMovementRepo) ListByProduct(shopProductID string, limit, offset int) ([]*entity.StockMovement, error) {
	return nil, nil
}

type fakeTxRunner struct {
	products  *fakeProductRepo
	purchases *fakePurchaseRepo
	stockMov  *fakeStockMovementRepo
}

func (r *fakeTxRunner) RunPurchase(_ context.Context, fn func(
	productRepo repository.ShopProductRepository,
	purchaseRepo repository.PurchaseRepository,
	stockMovRepo repository.StockMovementRepository,
) error) error {
	snap := make(map[string]*entity.ShopProduct, len(r.products.products))
	for k, v := range r.products.products {
		cp := *v
		snap[k] = &cp
	}
	stockSnap := len(r.stockMov.movements)

	err := fn(r.products, r.purchases, r.stockMov)
	if err != nil {
		r.products.products = snap
		r.stockMov.movements = r.stockMov.movements[:stockSnap]
	}
	return err
}

func newFixture(stock map[string]int64) (*purchases.RegisterPurchaseUseCase, *fakeTxRunner) {
	products := &fakeProductRepo{products: map[string]*entity.ShopProduct{}}
	for id, qty := range stock {
		products.products[id] = &entity.ShopProduct{
			ID:       id,
			ShopID:   testShop,
			Name:     "Producto " + id,
			Quantity: qty,
			Price:    decimal.NewFromInt(10),
		}
	}
	runner := &fakeTxRunner{
		products:  products,
		purchases: &fakePurchaseRepo{purchases: map[string]*entity.Purchase{}},
		stockMov:  &fakeStockMovementRepo{},
	}
	return purchases.NewRegisterPurchaseUseCase(runner, logger.Nop()), runner
}

func TestRegister_IncrementaStockYCalculaTotal(t *testing.T) {
	uc, runner := newFixture(map[string]int64{"A": 2, "B": 0})

	out, err := uc.Register(context.Background(), testShop, testOperator, dto.RegisterPurchaseRequest{
		Supplier: "Distribuidora Norte",
		Items: []dto.PurchaseLineRequest{
			{ShopProductID: "A", Quantity: 10, UnitCost: decimal.NewFromFloat(2.50)},
			{ShopProductID: "B", Quantity: 4, UnitCost: decimal.NewFromInt(3)},
		},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 12, runner.products.products["A"].Quantity)
	assert.EqualValues(t, 4, runner.products.products["B"].Quantity)
	// 10*2.50 + 4*3 = 37
	assert.True(t, out.Total.Equal(decimal.NewFromInt(37)), "total esperado 37, fue %s", out.Total)

	require.Len(t, runner.stockMov.movements, 2)
	for _, m := range runner.stockMov.movements {
		assert.Equal(t, entity.StockMovementPurchase, m.Type)
		assert.Equal(t, out.ID, m.ReferenceID)
	}
	assert.Len(t, runner.purchases.purchases, 1)
}

func TestRegister_ProductoInexistente_RechazoTotal(t *testing.T) {
	uc, runner := newFixture(map[string]int64{"A": 2})

	_, err := uc.Register(context.Background(), testShop, testOperator, dto.RegisterPurchaseRequest{
		Supplier: "Distribuidora Norte",
		Items: []dto.PurchaseLineRequest{
			{ShopProductID: "A", Quantity: 5, UnitCost: decimal.NewFromInt(1)},
			{ShopProductID: "Z", Quantity: 1, UnitCost: decimal.NewFromInt(1)},
		},
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualValues(t, 2, runner.products.products["A"].Quantity,
		"el fallo en Z no debe dejar el incremento de A aplicado")
	assert.Empty(t, runner.purchases.purchases)
	assert.Empty(t, runner.stockMov.movements)
}

func TestRegister_ValidacionDeEntrada(t *testing.T) {
	uc, _ := newFixture(map[string]int64{"A": 2})
	ctx := context.Background()

	_, err := uc.Register(ctx, testShop, testOperator, dto.RegisterPurchaseRequest{
		Items: []dto.PurchaseLineRequest{{ShopProductID: "A", Quantity: 1, UnitCost: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "proveedor obligatorio")

	_, err = uc.Register(ctx, testShop, testOperator, dto.RegisterPurchaseRequest{
		Supplier: "X",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "al menos una línea")

	_, err = uc.Register(ctx, testShop, testOperator, dto.RegisterPurchaseRequest{
		Supplier: "X",
		Items:    []dto.PurchaseLineRequest{{ShopProductID: "A", Quantity: 0, UnitCost: decimal.NewFromInt(1)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad positiva")
}

func TestRegister_LineasRepetidas_SeAgregan(t *testing.T) {
	uc, runner := newFixture(map[string]int64{"A": 0})

	_, err := uc.Register(context.Background(), testShop, testOperator, dto.RegisterPurchaseRequest{
		Supplier: "Distribuidora Norte",
		Items: []dto.PurchaseLineRequest{
			{ShopProductID: "A", Quantity: 3, UnitCost: decimal.NewFromInt(2)},
			{ShopProductID: "A", Quantity: 2, UnitCost: decimal.NewFromInt(2)},
		},
	})
	require.NoError(t, err)

	assert.EqualValues(t, 5, runner.products.products["A"].Quantity)
	assert.Len(t, runner.stockMov.movements, 1, "un solo movimiento agregado por producto")
	assert.EqualValues(t, 5, runner.stockMov.movements[0].Delta)
}
