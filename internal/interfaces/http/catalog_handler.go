package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-api/internal/application/dto"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// CatalogHandler maneja los catálogos auxiliares: marcas, colores, tallas,
// proveedores y medios de pago.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func (h *CatalogHandler) CreateBrand(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	brand, err := h.uc.CreateBrand(in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToBrandResponse(brand))
}

func (h *CatalogHandler) ListBrands(c *fiber.Ctx) error {
	brands, err := h.uc.ListBrands()
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.NamedResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.ToBrandResponse(b))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateColor(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	color, err := h.uc.CreateColor(in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToColorResponse(color))
}

func (h *CatalogHandler) ListColors(c *fiber.Ctx) error {
	colors, err := h.uc.ListColors()
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.NamedResponse, 0, len(colors))
	for _, color := range colors {
		out = append(out, dto.ToColorResponse(color))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateSize(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	size, err := h.uc.CreateSize(in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSizeResponse(size))
}

func (h *CatalogHandler) ListSizes(c *fiber.Ctx) error {
	sizes, err := h.uc.ListSizes()
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.NamedResponse, 0, len(sizes))
	for _, size := range sizes {
		out = append(out, dto.ToSizeResponse(size))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreateProvider(c *fiber.Ctx) error {
	var in dto.CreateProviderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	provider, err := h.uc.CreateProvider(in.Name, in.Phone)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProviderResponse(provider))
}

func (h *CatalogHandler) ListProviders(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	providers, err := h.uc.ListProviders(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, dto.ToProviderResponse(p))
	}
	return c.JSON(out)
}

func (h *CatalogHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	var in dto.NamedRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := dto.Validate(in); err != nil {
		return writeError(c, err)
	}
	method, err := h.uc.CreatePaymentMethod(in.Name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToPaymentMethodResponse(method))
}

func (h *CatalogHandler) ListPaymentMethods(c *fiber.Ctx) error {
	methods, err := h.uc.ListPaymentMethods()
	if err != nil {
		return writeError(c, err)
	}
	out := make([]dto.NamedResponse, 0, len(methods))
	for _, m := range methods {
		out = append(out, dto.ToPaymentMethodResponse(m))
	}
	return c.JSON(out)
}
