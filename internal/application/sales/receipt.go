package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-api/internal/domain"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/domain/repository"
)

// ReceiptLine línea enriquecida para el recibo impreso: nombre de producto,
// variante legible y subtotal ya calculado.
type ReceiptLine struct {
	ProductName string
	Variant     string
	Quantity    int64
	Price       decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptHeader datos legibles de la cabecera del recibo, ya resueltos a
// nombres.
type ReceiptHeader struct {
	CustomerName      string
	UserName          string
	PaymentMethodName string
}

// ReceiptPDFGenerator puerto de generación del recibo de venta.
type ReceiptPDFGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, header ReceiptHeader, lines []ReceiptLine) ([]byte, error)
}

// ReceiptUseCase arma el recibo de una venta: resuelve nombres de producto,
// color y talla de cada línea y delega el render al generador.
type ReceiptUseCase struct {
	saleRepo     repository.SaleRepository
	stockRepo    repository.StockItemRepository
	productRepo  repository.ProductRepository
	colorRepo    repository.ColorRepository
	sizeRepo     repository.SizeRepository
	customerRepo repository.CustomerRepository
	userRepo     repository.UserRepository
	methodRepo   repository.PaymentMethodRepository
	generator    ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReceiptUseCase(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockItemRepository,
	productRepo repository.ProductRepository,
	colorRepo repository.ColorRepository,
	sizeRepo repository.SizeRepository,
	customerRepo repository.CustomerRepository,
	userRepo repository.UserRepository,
	methodRepo repository.PaymentMethodRepository,
	generator ReceiptPDFGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		saleRepo:     saleRepo,
		stockRepo:    stockRepo,
		productRepo:  productRepo,
		colorRepo:    colorRepo,
		sizeRepo:     sizeRepo,
		customerRepo: customerRepo,
		userRepo:     userRepo,
		methodRepo:   methodRepo,
		generator:    generator,
	}
}

// DownloadReceipt genera el PDF del recibo y devuelve bytes y nombre de archivo.
func (uc *ReceiptUseCase) DownloadReceipt(ctx context.Context, saleID string) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}

	header := ReceiptHeader{CustomerName: "Cliente de mostrador"}
	if sale.CustomerID != nil {
		if customer, cErr := uc.customerRepo.GetByID(*sale.CustomerID); cErr == nil && customer != nil {
			header.CustomerName = customer.Name
		}
	}
	if user, uErr := uc.userRepo.GetByID(sale.UserID); uErr == nil && user != nil {
		header.UserName = user.Name
	}
	if method, mErr := uc.methodRepo.GetByID(sale.PaymentMethodID); mErr == nil && method != nil {
		header.PaymentMethodName = method.Name
	}

	rawLines, err := uc.saleRepo.GetLines(saleID)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: obtener líneas: %w", err)
	}

	enriched := make([]ReceiptLine, 0, len(rawLines))
	for _, l := range rawLines {
		line := ReceiptLine{
			ProductName: "Artículo " + l.StockItemID,
			Quantity:    l.Quantity,
			Price:       l.Price,
			Subtotal:    l.Price.Mul(decimal.NewFromInt(l.Quantity)),
		}
		if item, iErr := uc.stockRepo.GetByID(l.StockItemID); iErr == nil && item != nil {
			if product, pErr := uc.productRepo.GetByID(item.ProductID); pErr == nil && product != nil {
				line.ProductName = product.Name
			}
			line.Variant = uc.variantLabel(item)
		}
		enriched = append(enriched, line)
	}

	pdfBytes, err = uc.generator.GenerateReceipt(ctx, sale, header, enriched)
	if err != nil {
		return nil, "", fmt.Errorf("receipt: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("venta_%s.pdf", sale.ID)
	return pdfBytes, filename, nil
}

// variantLabel arma la etiqueta "Color / Talla" de la variante, omitiendo lo
// que no aplique.
func (uc *ReceiptUseCase) variantLabel(item *entity.StockItem) string {
	var parts []string
	if item.ColorID != nil {
		if color, err := uc.colorRepo.GetByID(*item.ColorID); err == nil && color != nil {
			parts = append(parts, color.Name)
		}
	}
	if item.SizeID != nil {
		if size, err := uc.sizeRepo.GetByID(*item.SizeID); err == nil && size != nil {
			parts = append(parts, size.Name)
		}
	}
	switch len(parts) {
	case 2:
		return parts[0] + " / " + parts[1]
	case 1:
		return parts[0]
	}
	return ""
}
