package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/cashbox"
	"github.com/jhoicas/Ventas-api/internal/application/catalog"
	"github.com/jhoicas/Ventas-api/internal/application/purchases"
	"github.com/jhoicas/Ventas-api/internal/application/reports"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CatalogUC  *catalog.CatalogUseCase
	SubmitSale *sales.SubmitSaleUseCase
	VoidSale   *sales.VoidSaleUseCase
	SaleQuery  *sales.SaleQueryUseCase
	Receipt    *sales.ReceiptUseCase
	Draft      *sales.DraftUseCase
	CashboxUC  *cashbox.CashboxUseCase
	PurchaseUC *purchases.RegisterPurchaseUseCase
	ReportUC   *reports.ReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogo: productos y métodos de pago para armar el carrito
	catalogGroup := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/products", catalogHandler.ListProducts)
	catalogGroup.Get("/products/:id", catalogHandler.GetProduct)
	catalogGroup.Get("/payment-methods", catalogHandler.ListPaymentMethods)

	// Ventas: pre-validar borrador, confirmar (nueva o edición), anular,
	// historial, ticket
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SubmitSale, deps.VoidSale, deps.SaleQuery, deps.Receipt, deps.Draft)
	salesGroup.Post("/", saleHandler.Submit)
	salesGroup.Post("/draft/validate", saleHandler.ValidateDraft)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Post("/:id/void", saleHandler.Void)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Caja: sesiones, arqueo y movimientos manuales
	cashboxGroup := protected.Group("/cashbox")
	cashboxHandler := NewCashboxHandler(deps.CashboxUC)
	cashboxGroup.Post("/open", cashboxHandler.Open)
	cashboxGroup.Post("/:id/close", cashboxHandler.Close)
	cashboxGroup.Get("/current", cashboxHandler.Current)
	cashboxGroup.Post("/income", cashboxHandler.Income)
	cashboxGroup.Post("/expense", cashboxHandler.Expense)

	// Compras a proveedor: solo admin
	purchasesGroup := protected.Group("/purchases", RequireRole(entity.RoleAdmin))
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Register)

	// Reportes: solo admin
	reportsGroup := protected.Group("/reports", RequireRole(entity.RoleAdmin))
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.SalesSeries)
}
