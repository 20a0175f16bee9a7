package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/command"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ProductHandler traduce peticiones HTTP a comandos/consultas de Product.
type ProductHandler struct {
	m   *mediator.Mediator
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(m *mediator.Mediator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{m: m, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  command.CreateProductCommand  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var cmd command.CreateProductCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := mediator.Send[*dto.ProductResult](c.Context(), h.m, cmd)
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	c.Set(fiber.HeaderLocation, "/api/products/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResult
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := mediator.Send[*dto.ProductResult](c.Context(), h.m, query.GetProductQuery{ID: c.Params("id")})
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Success      200  {array}  dto.ProductResult
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := mediator.Send[[]dto.ProductResult](c.Context(), h.m, query.GetProductsQuery{})
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Count godoc
// @Summary      Conteo de productos por estado
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductCountResult
// @Router       /api/products/count [get]
func (h *ProductHandler) Count(c *fiber.Ctx) error {
	out, err := mediator.Send[*dto.ProductCountResult](c.Context(), h.m, query.GetProductsCountQuery{})
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ChangeStatus godoc
// @Summary      Cambiar estado de un producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  command.ChangeProductStatusCommand  true  "Estado destino"
// @Success      201   {object}  dto.ProductResult
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/status [post]
func (h *ProductHandler) ChangeStatus(c *fiber.Ctx) error {
	var cmd command.ChangeProductStatusCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cmd.ID = c.Params("id")
	out, err := mediator.Send[*dto.ProductResult](c.Context(), h.m, cmd)
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	c.Set(fiber.HeaderLocation, "/api/products/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Sell godoc
// @Summary      Vender un producto (InStock -> Sold)
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      201  {object}  dto.ProductResult
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/sell [post]
func (h *ProductHandler) Sell(c *fiber.Ctx) error {
	out, err := mediator.Send[*dto.ProductResult](c.Context(), h.m, command.SellProductCommand{ID: c.Params("id")})
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	c.Set(fiber.HeaderLocation, "/api/products/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductHandler) logFailure(c *fiber.Ctx, err error) {
	h.log.Warn().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("petición de producto fallida")
}
