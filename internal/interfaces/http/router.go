package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/layaway"
	"github.com/jhoicas/tienda-api/internal/application/purchases"
	"github.com/jhoicas/tienda-api/internal/application/sales"
	"github.com/jhoicas/tienda-api/internal/application/stock"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PurchaseUC *purchases.CreatePurchaseUseCase
	SaleUC     *sales.SaleUseCase
	ReceiptUC  *sales.ReceiptUseCase
	PlanUC     *layaway.PlanUseCase
	StockUC    *stock.UseCase
	ProductUC  *usecase.ProductUseCase
	CatalogUC  *usecase.CatalogUseCase
	CustomerUC *usecase.CustomerUseCase
	UserUC     *usecase.UserUseCase
	ExpenseUC  *usecase.ExpenseUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Compras a proveedor
	purchasesGroup := api.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)

	// Ventas
	salesGroup := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC, deps.ReceiptUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Post("/:id/cancel", saleHandler.Cancel)
	salesGroup.Get("/:id/receipt", saleHandler.DownloadReceipt)

	// Planes separe
	plansGroup := api.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC)
	plansGroup.Post("/", planHandler.Create)
	plansGroup.Get("/", planHandler.ListActive)
	plansGroup.Get("/overdue", planHandler.ListOverdue)
	plansGroup.Get("/:id", planHandler.GetByID)
	plansGroup.Put("/:id", planHandler.Update)
	plansGroup.Delete("/:id", planHandler.Delete)
	plansGroup.Post("/:id/payments", planHandler.ApplyPayment)
	plansGroup.Get("/:id/payments", planHandler.ListPayments)

	// Stock
	stockGroup := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Get("/", stockHandler.List)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Put("/:id/prices", stockHandler.UpdatePrices)

	// Productos
	productsGroup := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	productsGroup.Post("/", productHandler.Create)
	productsGroup.Get("/", productHandler.List)
	productsGroup.Get("/:id", productHandler.GetByID)

	// Catálogos auxiliares
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	brands := api.Group("/brands")
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/", catalogHandler.ListBrands)
	colors := api.Group("/colors")
	colors.Post("/", catalogHandler.CreateColor)
	colors.Get("/", catalogHandler.ListColors)
	sizes := api.Group("/sizes")
	sizes.Post("/", catalogHandler.CreateSize)
	sizes.Get("/", catalogHandler.ListSizes)
	providers := api.Group("/providers")
	providers.Post("/", catalogHandler.CreateProvider)
	providers.Get("/", catalogHandler.ListProviders)
	methods := api.Group("/payment-methods")
	methods.Post("/", catalogHandler.CreatePaymentMethod)
	methods.Get("/", catalogHandler.ListPaymentMethods)

	// Clientes
	customersGroup := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customersGroup.Post("/", customerHandler.Create)
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Get("/:id", customerHandler.GetByID)

	// Usuarios
	usersGroup := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	usersGroup.Post("/", userHandler.Create)
	usersGroup.Get("/", userHandler.List)
	usersGroup.Get("/:id", userHandler.GetByID)

	// Gastos
	expensesGroup := api.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expensesGroup.Post("/", expenseHandler.Create)
	expensesGroup.Get("/", expenseHandler.List)
	expensesGroup.Get("/:id", expenseHandler.GetByID)
	expensesGroup.Delete("/:id", expenseHandler.Delete)
}
