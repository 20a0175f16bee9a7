package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	store *Store
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, dup := r.store.categories[category.ID]; dup {
		return domain.ErrDuplicate
	}
	r.store.categories[category.ID] = *category
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	c, ok := r.store.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

// List lista todas las categorías por fecha de creación ascendente.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]*entity.Category, 0, len(r.store.categories))
	for _, c := range r.store.categories {
		c := c
		list = append(list, &c)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

// Save compare-and-swap sobre RowVersion.
func (r *CategoryRepo) Save(ctx context.Context, category *entity.Category, expectedVersion string) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.categories[category.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.RowVersion != expectedVersion {
		return domain.ErrConcurrencyConflict
	}
	category.RowVersion = uuid.New().String()
	r.store.categories[category.ID] = *category
	return nil
}

// Delete elimina la categoría y, en cascada, todos sus productos.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.categories, id)
	for pid, p := range r.store.products {
		if p.CategoryID == id {
			delete(r.store.products, pid)
		}
	}
	return nil
}
