package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación en memoria del puerto ProductRepository.
type ProductRepo struct {
	store *Store
}

// Create persiste un producto nuevo; emula la FK hacia categories.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, dup := r.store.products[product.ID]; dup {
		return domain.ErrDuplicate
	}
	if _, ok := r.store.categories[product.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	r.store.products[product.ID] = *product
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// GetWithCategory proyección producto + nombre de categoría.
func (r *ProductRepo) GetWithCategory(ctx context.Context, id string) (*repository.ProductWithCategory, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	return &repository.ProductWithCategory{
		Product:      p,
		CategoryName: r.store.categories[p.CategoryID].Name,
	}, nil
}

// ListWithCategory todos los productos por fecha de creación ascendente.
func (r *ProductRepo) ListWithCategory(ctx context.Context) ([]*repository.ProductWithCategory, error) {
	if err := checkCtx(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	list := make([]*repository.ProductWithCategory, 0, len(r.store.products))
	for _, p := range r.store.products {
		list = append(list, &repository.ProductWithCategory{
			Product:      p,
			CategoryName: r.store.categories[p.CategoryID].Name,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i].Product, list[j].Product
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID < b.ID
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return list, nil
}

// CountByStatus conteo agrupado por estado.
func (r *ProductRepo) CountByStatus(ctx context.Context) (repository.StatusCount, error) {
	var counts repository.StatusCount
	if err := checkCtx(ctx); err != nil {
		return counts, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.products {
		switch p.Status {
		case entity.StatusInStock:
			counts.InStock++
		case entity.StatusSold:
			counts.Sold++
		case entity.StatusDamaged:
			counts.Damaged++
		}
	}
	return counts, nil
}

// Save compare-and-swap sobre RowVersion: solo escribe si el token almacenado
// coincide con expectedVersion; el perdedor de una carrera recibe
// domain.ErrConcurrencyConflict y el estado almacenado queda intacto.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product, expectedVersion string) error {
	if err := checkCtx(ctx); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	stored, ok := r.store.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.RowVersion != expectedVersion {
		return domain.ErrConcurrencyConflict
	}
	if _, ok := r.store.categories[product.CategoryID]; !ok {
		return domain.ErrCategoryNotFound
	}
	product.RowVersion = uuid.New().String()
	r.store.products[product.ID] = *product
	return nil
}
