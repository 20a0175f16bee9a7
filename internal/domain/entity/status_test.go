package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Reglas del ciclo de vida: solo se transiciona desde InStock; Sold y Damaged
// son terminales (Damaged no es alcanzable desde Sold).
func TestProduct_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    entity.Status
		to      entity.Status
		allowed bool
	}{
		{"InStock a Sold", entity.StatusInStock, entity.StatusSold, true},
		{"InStock a Damaged", entity.StatusInStock, entity.StatusDamaged, true},
		{"InStock a InStock", entity.StatusInStock, entity.StatusInStock, true},
		{"Sold a InStock", entity.StatusSold, entity.StatusInStock, false},
		{"Sold a Damaged", entity.StatusSold, entity.StatusDamaged, false},
		{"Damaged a Sold", entity.StatusDamaged, entity.StatusSold, false},
		{"Damaged a InStock", entity.StatusDamaged, entity.StatusInStock, false},
		{"InStock a estado desconocido", entity.StatusInStock, entity.Status(9), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &entity.Product{Status: tc.from}
			assert.Equal(t, tc.allowed, p.CanTransitionTo(tc.to))
		})
	}
}

func TestProduct_ApplyStatus(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 5, 2, 12, 30, 0, 0, time.UTC)
	p := &entity.Product{Status: entity.StatusInStock, CreatedAt: created, UpdatedAt: created}

	p.ApplyStatus(entity.StatusSold, now)

	assert.Equal(t, entity.StatusSold, p.Status)
	assert.Equal(t, now, p.UpdatedAt)
	assert.Equal(t, created, p.CreatedAt, "CreatedAt no debe cambiar")
}

func TestStatus_Propiedades(t *testing.T) {
	assert.True(t, entity.StatusInStock.Valid())
	assert.False(t, entity.StatusInStock.Terminal())
	assert.True(t, entity.StatusSold.Terminal())
	assert.True(t, entity.StatusDamaged.Terminal())
	assert.False(t, entity.Status(0).Valid())

	assert.Equal(t, "InStock", entity.StatusInStock.String())
	assert.Equal(t, "Sold", entity.StatusSold.String())
	assert.Equal(t, "Damaged", entity.StatusDamaged.String())
	assert.Equal(t, "Unknown", entity.Status(42).String())
}
