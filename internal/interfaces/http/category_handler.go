package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/command"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// CategoryHandler traduce peticiones HTTP a comandos/consultas de Category.
type CategoryHandler struct {
	m   *mediator.Mediator
	log *logger.Logger
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(m *mediator.Mediator, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{m: m, log: log}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  command.CreateCategoryCommand  true  "Datos de la categoría"
// @Success      201   {object}  dto.CategoryResult
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var cmd command.CreateCategoryCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := mediator.Send[*dto.CategoryResult](c.Context(), h.m, cmd)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderLocation, "/api/categories/"+out.ID)
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResult
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := mediator.Send[[]dto.CategoryResult](c.Context(), h.m, query.GetCategoriesQuery{})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Renombrar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  command.UpdateCategoryCommand  true  "Nuevo nombre"
// @Success      200   {object}  dto.CategoryResult
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var cmd command.UpdateCategoryCommand
	if err := c.BodyParser(&cmd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	cmd.ID = c.Params("id")
	out, err := mediator.Send[*dto.CategoryResult](c.Context(), h.m, cmd)
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar categoría (cascada a sus productos)
// @Tags         categories
// @Param        id  path  string  true  "ID de la categoría"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	_, err := mediator.Send[struct{}](c.Context(), h.m, command.DeleteCategoryCommand{ID: c.Params("id")})
	if err != nil {
		h.logFailure(c, err)
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CategoryHandler) logFailure(c *fiber.Ctx, err error) {
	h.log.Warn().
		Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg("petición de categoría fallida")
}
