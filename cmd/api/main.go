package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/cashbox"
	"github.com/jhoicas/Ventas-api/internal/application/catalog"
	"github.com/jhoicas/Ventas-api/internal/application/purchases"
	"github.com/jhoicas/Ventas-api/internal/application/reports"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	infracache "github.com/jhoicas/Ventas-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/Ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Ventas-api/internal/interfaces/http"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	shopRepo := postgres.NewShopRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewShopProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	sessionRepo := postgres.NewCashSessionRepository(pool)
	cashMovRepo := postgres.NewCashMovementRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Métodos de pago: cache Redis si está configurado, si no fallback nulo.
	var pmCache infracache.PaymentMethodCache = infracache.NoopPaymentMethodCache{}
	if cfg.Redis.Addr != "" {
		redisCache := infracache.NewRedisPaymentMethodCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Msg("Redis no disponible, cache de métodos de pago deshabilitado")
		} else {
			pmCache = redisCache
			defer redisCache.Close()
		}
	}
	paymentRepo := infracache.NewCachedPaymentMethodRepository(
		postgres.NewPaymentMethodRepository(pool),
		pmCache,
		time.Duration(cfg.Redis.TTLSecs)*time.Second,
	)

	authUC := auth.NewAuthUseCase(userRepo, shopRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	catalogUC := catalog.NewCatalogUseCase(productRepo, paymentRepo)
	submitSaleUC := sales.NewSubmitSaleUseCase(txRunner, sessionRepo, paymentRepo, saleRepo, log)
	voidSaleUC := sales.NewVoidSaleUseCase(txRunner, sessionRepo, paymentRepo, saleRepo, log)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo)
	receiptUC := sales.NewReceiptUseCase(saleRepo, paymentRepo, shopRepo, infrapdf.NewMarotoReceiptGenerator())
	draftUC := sales.NewDraftUseCase(productRepo, saleRepo)
	cashboxUC := cashbox.NewCashboxUseCase(sessionRepo, cashMovRepo, log)
	purchaseUC := purchases.NewRegisterPurchaseUseCase(txRunner, log)
	reportUC := reports.NewReportUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ventas API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CatalogUC:  catalogUC,
		SubmitSale: submitSaleUC,
		VoidSale:   voidSaleUC,
		SaleQuery:  saleQueryUC,
		Receipt:    receiptUC,
		Draft:      draftUC,
		CashboxUC:  cashboxUC,
		PurchaseUC: purchaseUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
