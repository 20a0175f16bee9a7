package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// writeError traduce cada clase de error de dominio a un status HTTP distinto,
// manteniendo distinguibles validación, no-encontrado, transición ilegal y
// conflicto de concurrencia.
//
//	ValidationError          -> 400 VALIDATION (violaciones en el cuerpo)
//	ErrNotFound              -> 404 NOT_FOUND
//	ErrConcurrencyConflict   -> 409 CONCURRENCY_CONFLICT
//	ErrDuplicate             -> 409 DUPLICATE
//	ErrInvalidTransition     -> 422 INVALID_TRANSITION
//	ErrCategoryNotFound      -> 422 CATEGORY_NOT_FOUND
//	resto                    -> 500 INTERNAL
func writeError(c *fiber.Ctx, err error) error {
	var vErr *mediator.ValidationError
	switch {
	case errors.As(err, &vErr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "uno o más campos violan las reglas declaradas", Violations: vErr.Violations,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrConcurrencyConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CONCURRENCY_CONFLICT", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "DUPLICATE", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_TRANSITION", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "CATEGORY_NOT_FOUND", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "error inesperado",
		})
	}
}
