package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Store almacén en memoria compartido por los repositorios de categorías y
// productos. Respeta las mismas semánticas que el esquema SQL: compare-and-swap
// sobre RowVersion, FK de producto hacia categoría y borrado en cascada.
// Se usa en los tests y en el modo de desarrollo sin PostgreSQL (DB_DRIVER=memory).
type Store struct {
	mu         sync.Mutex
	categories map[string]entity.Category
	products   map[string]entity.Product
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		categories: make(map[string]entity.Category),
		products:   make(map[string]entity.Product),
	}
}

// Categories repositorio de categorías sobre este almacén.
func (s *Store) Categories() *CategoryRepo {
	return &CategoryRepo{store: s}
}

// Products repositorio de productos sobre este almacén.
func (s *Store) Products() *ProductRepo {
	return &ProductRepo{store: s}
}

// checkCtx simula la frontera de E/S: una petición cancelada no toca el almacén.
func checkCtx(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
