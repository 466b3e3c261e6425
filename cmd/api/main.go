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

	"github.com/jhoicas/tienda-api/internal/application/layaway"
	"github.com/jhoicas/tienda-api/internal/application/purchases"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/application/stock"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/tienda-api/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tienda-api/internal/interfaces/http"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
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

	stockRepo := postgres.NewStockItemRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	sizeRepo := postgres.NewSizeRepository(pool)
	providerRepo := postgres.NewProviderRepository(pool)
	methodRepo := postgres.NewPaymentMethodRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)

	txRunner := postgres.NewTxRunner(pool)
	ledger := stock.NewLedger()

	purchaseUC := purchases.NewCreatePurchaseUseCase(txRunner, ledger, providerRepo, userRepo, purchaseRepo)
	saleUC := sales.NewSaleUseCase(txRunner, ledger, saleRepo, customerRepo, userRepo, methodRepo)
	planUC := layaway.NewPlanUseCase(txRunner, ledger, planRepo, customerRepo, userRepo)
	stockUC := stock.NewUseCase(stockRepo)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.StoreName)
	receiptUC := sales.NewReceiptUseCase(
		saleRepo, stockRepo, productRepo, colorRepo, sizeRepo,
		customerRepo, userRepo, methodRepo, receiptGen,
	)

	productUC := usecase.NewProductUseCase(productRepo, brandRepo)
	catalogUC := usecase.NewCatalogUseCase(brandRepo, colorRepo, sizeRepo, providerRepo, methodRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, userRepo)

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
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PurchaseUC: purchaseUC,
		SaleUC:     saleUC,
		ReceiptUC:  receiptUC,
		PlanUC:     planUC,
		StockUC:    stockUC,
		ProductUC:  productUC,
		CatalogUC:  catalogUC,
		CustomerUC: customerUC,
		UserUC:     userUC,
		ExpenseUC:  expenseUC,
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
