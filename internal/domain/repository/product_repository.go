package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductWithCategory proyección de lectura: producto más el nombre de su categoría.
type ProductWithCategory struct {
	Product      entity.Product
	CategoryName string
}

// StatusCount conteo de productos agrupado por estado.
type StatusCount struct {
	InStock int64
	Sold    int64
	Damaged int64
}

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Save es compare-and-swap sobre RowVersion: escribe solo si el token
// almacenado sigue siendo expectedVersion. Si el producto no existe devuelve
// domain.ErrNotFound; si otro escritor ganó la carrera devuelve
// domain.ErrConcurrencyConflict. En éxito regenera product.RowVersion.
// GetByID devuelve (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetWithCategory(ctx context.Context, id string) (*ProductWithCategory, error)
	ListWithCategory(ctx context.Context) ([]*ProductWithCategory, error)
	CountByStatus(ctx context.Context) (StatusCount, error)
	Save(ctx context.Context, product *entity.Product, expectedVersion string) error
}
