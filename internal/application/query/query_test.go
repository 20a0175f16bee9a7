package query_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/memory"
)

func seedCategory(t *testing.T, store *memory.Store, name string) *entity.Category {
	t.Helper()
	now := time.Now().UTC()
	c := &entity.Category{
		ID:         uuid.New().String(),
		Name:       name,
		CreatedAt:  now,
		UpdatedAt:  now,
		RowVersion: uuid.New().String(),
	}
	require.NoError(t, store.Categories().Create(context.Background(), c))
	return c
}

func seedProduct(t *testing.T, store *memory.Store, categoryID, name string, status entity.Status, createdAt time.Time) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "desc " + name,
		BarCode:     "770" + name,
		Weight:      decimal.NewFromFloat(2.25),
		Status:      status,
		CategoryID:  categoryID,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
		RowVersion:  uuid.New().String(),
	}
	require.NoError(t, store.Products().Create(context.Background(), p))
	return p
}

func TestGetProduct_Inexistente(t *testing.T) {
	store := memory.NewStore()
	h := query.NewProductQueries(store.Products())

	_, err := h.GetProduct(context.Background(), query.GetProductQuery{ID: uuid.New().String()})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La proyección debe reflejar exactamente los campos almacenados.
func TestGetProduct_ProyeccionExacta(t *testing.T) {
	store := memory.NewStore()
	h := query.NewProductQueries(store.Products())
	cat := seedCategory(t, store, "Ferretería")
	p := seedProduct(t, store, cat.ID, "martillo", entity.StatusInStock, time.Now().UTC())

	out, err := h.GetProduct(context.Background(), query.GetProductQuery{ID: p.ID})
	require.NoError(t, err)

	assert.Equal(t, p.ID, out.ID)
	assert.Equal(t, p.Name, out.Name)
	assert.Equal(t, p.BarCode, out.BarCode)
	assert.Equal(t, p.Description, out.Description)
	assert.True(t, p.Weight.Equal(out.Weight))
	assert.Equal(t, int(p.Status), out.Status)
	assert.Equal(t, p.CategoryID, out.CategoryID)
	assert.Equal(t, "Ferretería", out.CategoryName)
	assert.Equal(t, p.RowVersion, out.RowVersion)
}

// Orden estable por fecha de creación ascendente.
func TestGetProducts_OrdenPorCreacion(t *testing.T) {
	store := memory.NewStore()
	h := query.NewProductQueries(store.Products())
	cat := seedCategory(t, store, "Papelería")
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	seedProduct(t, store, cat.ID, "tercero", entity.StatusInStock, base.Add(2*time.Hour))
	seedProduct(t, store, cat.ID, "primero", entity.StatusInStock, base)
	seedProduct(t, store, cat.ID, "segundo", entity.StatusSold, base.Add(time.Hour))

	out, err := h.GetProducts(context.Background(), query.GetProductsQuery{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "primero", out[0].Name)
	assert.Equal(t, "segundo", out[1].Name)
	assert.Equal(t, "tercero", out[2].Name)
}

func TestGetProducts_VacioDevuelveListaVacia(t *testing.T) {
	store := memory.NewStore()
	h := query.NewProductQueries(store.Products())

	out, err := h.GetProducts(context.Background(), query.GetProductsQuery{})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestGetProductsCount_AgrupaPorEstado(t *testing.T) {
	store := memory.NewStore()
	h := query.NewProductQueries(store.Products())
	cat := seedCategory(t, store, "Mixta")
	now := time.Now().UTC()
	for i := 0; i < 3; i++ {
		seedProduct(t, store, cat.ID, "stock", entity.StatusInStock, now)
	}
	for i := 0; i < 2; i++ {
		seedProduct(t, store, cat.ID, "vendido", entity.StatusSold, now)
	}
	seedProduct(t, store, cat.ID, "dañado", entity.StatusDamaged, now)

	out, err := h.GetProductsCount(context.Background(), query.GetProductsCountQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.InStock)
	assert.Equal(t, int64(2), out.Sold)
	assert.Equal(t, int64(1), out.Damaged)
}

func TestGetCategories_ListaTodas(t *testing.T) {
	store := memory.NewStore()
	h := query.NewCategoryQueries(store.Categories())
	seedCategory(t, store, "A")
	seedCategory(t, store, "B")

	out, err := h.GetCategories(context.Background(), query.GetCategoriesQuery{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}
