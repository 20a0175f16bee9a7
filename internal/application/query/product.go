package query

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Consultas de solo lectura: nunca mutan estado ni tocan tokens de concurrencia.

// GetProductQuery obtiene la proyección completa de un producto.
type GetProductQuery struct {
	ID string
}

// GetProductsQuery lista todos los productos (orden estable por fecha de creación).
type GetProductsQuery struct{}

// GetProductsCountQuery conteo de productos agrupado por estado.
type GetProductsCountQuery struct{}

// ProductQueries handlers de lectura para Product.
type ProductQueries struct {
	products repository.ProductRepository
}

// NewProductQueries construye los handlers.
func NewProductQueries(products repository.ProductRepository) *ProductQueries {
	return &ProductQueries{products: products}
}

// GetProduct devuelve la proyección o domain.ErrNotFound.
func (h *ProductQueries) GetProduct(ctx context.Context, q GetProductQuery) (*dto.ProductResult, error) {
	pc, err := h.products.GetWithCategory(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	if pc == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResult(&pc.Product, pc.CategoryName), nil
}

// GetProducts devuelve todas las proyecciones ordenadas por CreatedAt ascendente.
func (h *ProductQueries) GetProducts(ctx context.Context, _ GetProductsQuery) ([]dto.ProductResult, error) {
	list, err := h.products.ListWithCategory(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResult, 0, len(list))
	for _, pc := range list {
		items = append(items, *dto.NewProductResult(&pc.Product, pc.CategoryName))
	}
	return items, nil
}

// GetProductsCount devuelve los conteos por estado.
func (h *ProductQueries) GetProductsCount(ctx context.Context, _ GetProductsCountQuery) (*dto.ProductCountResult, error) {
	counts, err := h.products.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ProductCountResult{
		InStock: counts.InStock,
		Sold:    counts.Sold,
		Damaged: counts.Damaged,
	}, nil
}
