package catalog

import (
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// CatalogUseCase lecturas de catálogo para el POS: productos con stock
// disponible y precio vigente, y métodos de pago activos.
type CatalogUseCase struct {
	productRepo repository.ShopProductRepository
	paymentRepo repository.PaymentMethodRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(productRepo repository.ShopProductRepository, paymentRepo repository.PaymentMethodRepository) *CatalogUseCase {
	return &CatalogUseCase{productRepo: productRepo, paymentRepo: paymentRepo}
}

// ListProducts lista los productos de la tienda con stock y precio actuales.
func (uc *CatalogUseCase) ListProducts(shopID string, page dto.PageRequest) ([]dto.ShopProductResponse, error) {
	page.DefaultPage()
	products, err := uc.productRepo.ListByShop(shopID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ShopProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetProduct devuelve un producto de la tienda con su stock actual.
func (uc *CatalogUseCase) GetProduct(shopID, id string) (*dto.ShopProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil || p.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(p)
	return &resp, nil
}

// ListPaymentMethods métodos de pago activos.
func (uc *CatalogUseCase) ListPaymentMethods() ([]dto.PaymentMethodResponse, error) {
	methods, err := uc.paymentRepo.ListActive()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.PaymentMethodResponse{ID: m.ID, Name: m.Name, IsCash: m.IsCash})
	}
	return out, nil
}

func toProductResponse(p *entity.ShopProduct) dto.ShopProductResponse {
	return dto.ShopProductResponse{
		ID:        p.ID,
		ShopID:    p.ShopID,
		Name:      p.Name,
		SKU:       p.SKU,
		Quantity:  p.Quantity,
		Price:     p.Price,
		UpdatedAt: p.UpdatedAt,
	}
}
