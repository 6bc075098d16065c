package sales

import (
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ReceiptUseCase genera el ticket PDF de una venta confirmada.
type ReceiptUseCase struct {
	saleRepo    repository.SaleRepository
	paymentRepo repository.PaymentMethodRepository
	shopRepo    repository.ShopRepository
	generator   ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	paymentRepo repository.PaymentMethodRepository,
	shopRepo repository.ShopRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, paymentRepo: paymentRepo, shopRepo: shopRepo, generator: generator}
}

// Generate arma los datos del ticket y delega el render al generador.
func (uc *ReceiptUseCase) Generate(shopID, saleID string) ([]byte, error) {
	s, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.ShopID != shopID {
		return nil, domain.ErrNotFound
	}

	paymentName := s.PaymentMethodID
	if pm, err := uc.paymentRepo.GetByID(s.PaymentMethodID); err == nil && pm != nil {
		paymentName = pm.Name
	}
	shopName := s.ShopID
	if shop, err := uc.shopRepo.GetByID(s.ShopID); err == nil && shop != nil {
		shopName = shop.Name
	}

	data := ReceiptData{
		SaleID:        s.ID,
		ShopName:      shopName,
		PaymentMethod: paymentName,
		Total:         s.Total.StringFixed(2),
		IssuedAt:      s.CreatedAt.Format("2006-01-02 15:04"),
	}
	for _, it := range s.Items {
		data.Items = append(data.Items, ReceiptItem{
			Name:      it.ProductName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice.StringFixed(2),
			Subtotal:  it.Subtotal.StringFixed(2),
		})
	}
	return uc.generator.GenerateReceipt(data)
}
