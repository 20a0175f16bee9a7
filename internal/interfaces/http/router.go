package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Mediator *mediator.Mediator
	Log      *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.Mediator, deps.Log)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.Mediator, deps.Log)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// /count antes de /:id para que fiber no lo capture como parámetro
	products.Get("/count", productHandler.Count)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/status", productHandler.ChangeStatus)
	products.Post("/:id/sell", productHandler.Sell)
}
