package dto

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// Mapeo puro entidad → proyección; sin efectos secundarios.

// NewProductResult construye la proyección de un producto con el nombre de su categoría.
func NewProductResult(p *entity.Product, categoryName string) *ProductResult {
	if p == nil {
		return nil
	}
	return &ProductResult{
		ID:           p.ID,
		Name:         p.Name,
		BarCode:      p.BarCode,
		Description:  p.Description,
		Weight:       p.Weight,
		Status:       int(p.Status),
		StatusName:   p.Status.String(),
		CategoryID:   p.CategoryID,
		CategoryName: categoryName,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		RowVersion:   p.RowVersion,
	}
}

// NewCategoryResult construye la proyección de una categoría.
func NewCategoryResult(c *entity.Category) *CategoryResult {
	if c == nil {
		return nil
	}
	return &CategoryResult{
		ID:         c.ID,
		Name:       c.Name,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
		RowVersion: c.RowVersion,
	}
}
