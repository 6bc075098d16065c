package sales

import (
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SaleQueryUseCase lecturas de ventas para el historial del POS.
type SaleQueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueryUseCase construye el caso de uso.
func NewSaleQueryUseCase(saleRepo repository.SaleRepository) *SaleQueryUseCase {
	return &SaleQueryUseCase{saleRepo: saleRepo}
}

// List ventas de la tienda, más recientes primero.
func (uc *SaleQueryUseCase) List(shopID string, page dto.PageRequest) ([]dto.SaleResponse, error) {
	page.DefaultPage()
	items, err := uc.saleRepo.ListByShop(shopID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(items))
	for _, s := range items {
		out = append(out, *toSaleResponse(s))
	}
	return out, nil
}

// Get una venta con sus líneas.
func (uc *SaleQueryUseCase) Get(shopID, saleID string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.ShopID != shopID {
		return nil, domain.ErrNotFound
	}
	return toSaleResponse(s), nil
}
