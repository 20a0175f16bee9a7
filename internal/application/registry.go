package application

import (
	"github.com/jhoicas/almacen-api/internal/application/command"
	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// NewMediator cablea todos los handlers y validadores sobre un mediador nuevo.
// Los validadores se registran solo para comandos; las consultas se despachan
// directas. Se invoca una vez en el arranque.
func NewMediator(products repository.ProductRepository, categories repository.CategoryRepository) *mediator.Mediator {
	m := mediator.New()

	categoryCmds := command.NewCategoryCommands(categories)
	productCmds := command.NewProductCommands(products, categories)
	productQueries := query.NewProductQueries(products)
	categoryQueries := query.NewCategoryQueries(categories)

	// Comandos: validador + handler
	mediator.Validate(m, command.ValidateCreateCategory)
	mediator.Register(m, categoryCmds.Create)
	mediator.Validate(m, command.ValidateUpdateCategory)
	mediator.Register(m, categoryCmds.Update)
	mediator.Validate(m, command.ValidateDeleteCategory)
	mediator.Register(m, categoryCmds.Delete)
	mediator.Validate(m, command.ValidateCreateProduct)
	mediator.Register(m, productCmds.Create)
	mediator.Validate(m, command.ValidateChangeProductStatus)
	mediator.Register(m, productCmds.ChangeStatus)
	mediator.Validate(m, command.ValidateSellProduct)
	mediator.Register(m, productCmds.Sell)

	// Consultas
	mediator.Register(m, productQueries.GetProduct)
	mediator.Register(m, productQueries.GetProducts)
	mediator.Register(m, productQueries.GetProductsCount)
	mediator.Register(m, categoryQueries.GetCategories)

	return m
}
