package command

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ChangeProductStatusCommand transiciona el estado de un producto.
// Solo es legal desde InStock; Sold y Damaged son terminales.
type ChangeProductStatusCommand struct {
	ID     string        `json:"-"`
	Status entity.Status `json:"status"`
}

// SellProductCommand vende un producto: especialización de ChangeStatus(Sold).
type SellProductCommand struct {
	ID string `json:"-"`
}

// ValidateChangeProductStatus exige id válido y un estado del enumerado.
func ValidateChangeProductStatus(cmd ChangeProductStatusCommand) []mediator.Violation {
	v := requireUUID("id", cmd.ID)
	if !cmd.Status.Valid() {
		v = append(v, mediator.Violation{Field: "status", Message: "debe ser 1 (InStock), 2 (Sold) o 3 (Damaged)"})
	}
	return v
}

// ValidateSellProduct exige un id válido.
func ValidateSellProduct(cmd SellProductCommand) []mediator.Violation {
	return requireUUID("id", cmd.ID)
}

// ChangeStatus carga el producto, verifica la legalidad de la transición y
// guarda con compare-and-swap usando el token leído en la carga. Un escritor
// concurrente que gane la carrera produce domain.ErrConcurrencyConflict; la
// política de reintento queda en manos del llamador.
func (h *ProductCommands) ChangeStatus(ctx context.Context, cmd ChangeProductStatusCommand) (*dto.ProductResult, error) {
	product, err := h.products.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.CanTransitionTo(cmd.Status) {
		return nil, domain.ErrInvalidTransition
	}
	expected := product.RowVersion
	product.ApplyStatus(cmd.Status, time.Now().UTC())
	if err := h.products.Save(ctx, product, expected); err != nil {
		return nil, err
	}
	category, err := h.categories.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}
	categoryName := ""
	if category != nil {
		categoryName = category.Name
	}
	return dto.NewProductResult(product, categoryName), nil
}

// Sell equivale a ChangeStatus(Sold).
func (h *ProductCommands) Sell(ctx context.Context, cmd SellProductCommand) (*dto.ProductResult, error) {
	return h.ChangeStatus(ctx, ChangeProductStatusCommand{ID: cmd.ID, Status: entity.StatusSold})
}
