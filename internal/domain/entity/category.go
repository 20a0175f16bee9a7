package entity

import "time"

// Category agrupa productos. Borrar una categoría elimina en cascada sus
// productos (FK ON DELETE CASCADE en el esquema).
type Category struct {
	ID         string
	Name       string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	RowVersion string // token de concurrencia optimista
}
