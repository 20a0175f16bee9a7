package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductResult proyección de lectura de un producto, usada como respuesta de
// consultas y de comandos que lo mutan.
type ProductResult struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BarCode      string          `json:"bar_code"`
	Description  string          `json:"description"`
	Weight       decimal.Decimal `json:"weight"`
	Status       int             `json:"status"`
	StatusName   string          `json:"status_name"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	RowVersion   string          `json:"row_version"`
}

// ProductCountResult conteo de productos agrupado por estado.
type ProductCountResult struct {
	InStock int64 `json:"in_stock"`
	Sold    int64 `json:"sold"`
	Damaged int64 `json:"damaged"`
}
