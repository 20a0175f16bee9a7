package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/mediator"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CreateProductCommand da de alta un producto; siempre nace InStock.
type CreateProductCommand struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	BarCode     string          `json:"bar_code"`
	Weight      decimal.Decimal `json:"weight"`
	CategoryID  string          `json:"category_id"`
}

// ValidateCreateProduct exige nombre, categoría válida y peso no negativo.
func ValidateCreateProduct(cmd CreateProductCommand) []mediator.Violation {
	v := requireName(cmd.Name)
	v = append(v, requireUUID("category_id", cmd.CategoryID)...)
	if cmd.Weight.IsNegative() {
		v = append(v, mediator.Violation{Field: "weight", Message: "no puede ser negativo"})
	}
	return v
}

// ProductCommands handlers de mutación para Product (motor del ciclo de vida).
type ProductCommands struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
}

// NewProductCommands construye los handlers.
func NewProductCommands(products repository.ProductRepository, categories repository.CategoryRepository) *ProductCommands {
	return &ProductCommands{products: products, categories: categories}
}

// Create verifica la integridad referencial contra Category y persiste el
// producto con estado inicial InStock.
func (h *ProductCommands) Create(ctx context.Context, cmd CreateProductCommand) (*dto.ProductResult, error) {
	category, err := h.categories.GetByID(ctx, cmd.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	now := time.Now().UTC()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        cmd.Name,
		Description: cmd.Description,
		BarCode:     cmd.BarCode,
		Weight:      cmd.Weight,
		Status:      entity.StatusInStock,
		CategoryID:  cmd.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
		RowVersion:  uuid.New().String(),
	}
	if err := h.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResult(product, category.Name), nil
}
