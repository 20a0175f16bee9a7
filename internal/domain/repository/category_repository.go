package repository

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
// Delete elimina en cascada los productos de la categoría. Save sigue la
// misma disciplina compare-and-swap que ProductRepository.Save.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Save(ctx context.Context, category *entity.Category, expectedVersion string) error
	Delete(ctx context.Context, id string) error
}
