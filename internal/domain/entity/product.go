package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario. Status sigue el ciclo de vida
// InStock → Sold/Damaged; RowVersion es el token de concurrencia optimista y
// se regenera en cada escritura exitosa.
type Product struct {
	ID          string
	Name        string
	Description string
	BarCode     string
	Weight      decimal.Decimal // peso, nunca negativo
	Status      Status
	CategoryID  string // FK obligatoria hacia Category
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RowVersion  string
}

// CanTransitionTo regla del ciclo de vida: solo se puede transicionar desde
// InStock; Sold y Damaged son terminales.
func (p *Product) CanTransitionTo(target Status) bool {
	return p.Status == StatusInStock && target.Valid()
}

// ApplyStatus aplica la transición ya validada y actualiza la marca de tiempo.
// El llamador debe verificar CanTransitionTo antes.
func (p *Product) ApplyStatus(target Status, now time.Time) {
	p.Status = target
	p.UpdatedAt = now
}
