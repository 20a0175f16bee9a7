package query

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// GetCategoriesQuery lista todas las categorías.
type GetCategoriesQuery struct{}

// CategoryQueries handlers de lectura para Category.
type CategoryQueries struct {
	categories repository.CategoryRepository
}

// NewCategoryQueries construye los handlers.
func NewCategoryQueries(categories repository.CategoryRepository) *CategoryQueries {
	return &CategoryQueries{categories: categories}
}

// GetCategories devuelve todas las categorías.
func (h *CategoryQueries) GetCategories(ctx context.Context, _ GetCategoriesQuery) ([]dto.CategoryResult, error) {
	list, err := h.categories.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResult, 0, len(list))
	for _, c := range list {
		items = append(items, *dto.NewCategoryResult(c))
	}
	return items, nil
}
