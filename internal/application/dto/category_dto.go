package dto

import "time"

// CategoryResult salida de una categoría.
type CategoryResult struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	RowVersion string    `json:"row_version"`
}
