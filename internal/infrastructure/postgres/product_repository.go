package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto. Una violación de FK hacia categories se
// traduce a domain.ErrCategoryNotFound.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, description, bar_code, weight, status, category_id, created_at, updated_at, row_version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.BarCode,
		product.Weight, int(product.Status), product.CategoryID,
		product.CreatedAt, product.UpdatedAt, product.RowVersion,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `
		SELECT id, name, description, bar_code, weight, status, category_id, created_at, updated_at, row_version
		FROM products WHERE id = $1`
	var p entity.Product
	var status int
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.BarCode, &p.Weight, &status,
		&p.CategoryID, &p.CreatedAt, &p.UpdatedAt, &p.RowVersion,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	p.Status = entity.Status(status)
	return &p, nil
}

// GetWithCategory obtiene la proyección producto + nombre de categoría.
func (r *ProductRepo) GetWithCategory(ctx context.Context, id string) (*repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.description, p.bar_code, p.weight, p.status, p.category_id,
		       p.created_at, p.updated_at, p.row_version, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`
	var pc repository.ProductWithCategory
	var status int
	err := r.q.QueryRow(ctx, query, id).Scan(
		&pc.Product.ID, &pc.Product.Name, &pc.Product.Description, &pc.Product.BarCode,
		&pc.Product.Weight, &status, &pc.Product.CategoryID,
		&pc.Product.CreatedAt, &pc.Product.UpdatedAt, &pc.Product.RowVersion, &pc.CategoryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product with category: %w", err)
	}
	pc.Product.Status = entity.Status(status)
	return &pc, nil
}

// ListWithCategory lista todos los productos con su categoría, orden estable
// por fecha de creación ascendente.
func (r *ProductRepo) ListWithCategory(ctx context.Context) ([]*repository.ProductWithCategory, error) {
	query := `
		SELECT p.id, p.name, p.description, p.bar_code, p.weight, p.status, p.category_id,
		       p.created_at, p.updated_at, p.row_version, c.name
		FROM products p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.created_at ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*repository.ProductWithCategory
	for rows.Next() {
		var pc repository.ProductWithCategory
		var status int
		if err := rows.Scan(
			&pc.Product.ID, &pc.Product.Name, &pc.Product.Description, &pc.Product.BarCode,
			&pc.Product.Weight, &status, &pc.Product.CategoryID,
			&pc.Product.CreatedAt, &pc.Product.UpdatedAt, &pc.Product.RowVersion, &pc.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		pc.Product.Status = entity.Status(status)
		list = append(list, &pc)
	}
	return list, rows.Err()
}

// CountByStatus conteo agrupado por estado.
func (r *ProductRepo) CountByStatus(ctx context.Context) (repository.StatusCount, error) {
	var counts repository.StatusCount
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM products GROUP BY status`)
	if err != nil {
		return counts, fmt.Errorf("count products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var status int
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return counts, fmt.Errorf("scan count: %w", err)
		}
		switch entity.Status(status) {
		case entity.StatusInStock:
			counts.InStock = n
		case entity.StatusSold:
			counts.Sold = n
		case entity.StatusDamaged:
			counts.Damaged = n
		}
	}
	return counts, rows.Err()
}

// Save actualiza con compare-and-swap sobre row_version: un UPDATE condicionado
// al token esperado. Cero filas afectadas se desambigua releyendo el token:
// producto inexistente -> ErrNotFound; token distinto -> ErrConcurrencyConflict.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product, expectedVersion string) error {
	newVersion := uuid.New().String()
	query := `
		UPDATE products
		SET name = $2, description = $3, bar_code = $4, weight = $5, status = $6,
		    category_id = $7, updated_at = $8, row_version = $9
		WHERE id = $1 AND row_version = $10`
	cmd, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.BarCode,
		product.Weight, int(product.Status), product.CategoryID,
		product.UpdatedAt, newVersion, expectedVersion,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		var current string
		err := r.q.QueryRow(ctx, `SELECT row_version FROM products WHERE id = $1`, product.ID).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("check product version: %w", err)
		}
		return domain.ErrConcurrencyConflict
	}
	product.RowVersion = newVersion
	return nil
}
