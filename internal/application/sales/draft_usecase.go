package sales

import (
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/sale"
)

// DraftUseCase pre-valida un borrador contra la foto de stock del catálogo
// usando el mismo carrito que la composición en el POS. Es un guard blando
// para la UI (deshabilitar el botón de confirmar, marcar la línea ofensora);
// el guard definitivo sigue siendo la validación transaccional al confirmar.
type DraftUseCase struct {
	productRepo repository.ShopProductRepository
	saleRepo    repository.SaleRepository
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(productRepo repository.ShopProductRepository, saleRepo repository.SaleRepository) *DraftUseCase {
	return &DraftUseCase{productRepo: productRepo, saleRepo: saleRepo}
}

// Validate responde, línea por línea, si las cantidades pedidas caben en el
// tope disponible+original. Con SaleID valida en modo edición: las unidades
// ya confirmadas de esa venta cuentan como reutilizables.
func (uc *DraftUseCase) Validate(shopID string, in dto.ValidateDraftRequest) (*dto.DraftValidationResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	for _, it := range in.Items {
		if it.ShopProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	// Agregar líneas repetidas conservando el orden de aparición.
	requested := make(map[string]int64, len(in.Items))
	order := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		if _, seen := requested[it.ShopProductID]; !seen {
			order = append(order, it.ShopProductID)
		}
		requested[it.ShopProductID] += it.Quantity
	}

	available := make(map[string]int64, len(order))
	for _, id := range order {
		p, err := uc.productRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if p == nil || p.ShopID != shopID {
			return nil, domain.ErrNotFound
		}
		available[id] = p.Quantity
	}

	var cart *sale.Cart
	if in.SaleID != "" {
		previous, err := uc.saleRepo.GetByID(in.SaleID)
		if err != nil {
			return nil, err
		}
		if previous == nil || previous.ShopID != shopID {
			return nil, domain.ErrNotFound
		}
		if previous.Status != entity.SaleStatusCommitted {
			return nil, domain.ErrConflict
		}
		committed := make([]sale.Line, 0, len(previous.Items))
		for _, it := range previous.Items {
			committed = append(committed, sale.Line{ShopProductID: it.ShopProductID, Quantity: it.Quantity})
		}
		cart = sale.NewCartFromSale(in.SaleID, committed, available)
	} else {
		cart = sale.NewCart(available)
	}

	out := &dto.DraftValidationResponse{Ok: true}
	for _, id := range order {
		target := requested[id]
		for cart.Quantity(id) > target {
			cart.Decrement(id)
		}
		ok := true
		for cart.Quantity(id) < target {
			if err := cart.Increment(id); err != nil {
				ok = false
				break
			}
		}
		if !ok {
			out.Ok = false
		}
		out.Lines = append(out.Lines, dto.DraftLineStatus{
			ShopProductID: id,
			Requested:     target,
			MaxAllowed:    cart.MaxAllowed(id),
			Ok:            ok,
		})
	}
	return out, nil
}
