package entity

// Status estado del ciclo de vida de un producto.
// InStock es el estado inicial; Sold y Damaged son terminales.
type Status int

const (
	StatusInStock Status = 1
	StatusSold    Status = 2
	StatusDamaged Status = 3
)

// Valid indica si el valor corresponde a un estado conocido.
func (s Status) Valid() bool {
	return s == StatusInStock || s == StatusSold || s == StatusDamaged
}

// Terminal indica si el estado no admite más transiciones.
func (s Status) Terminal() bool {
	return s == StatusSold || s == StatusDamaged
}

// String nombre legible del estado (usado en respuestas y logs).
func (s Status) String() string {
	switch s {
	case StatusInStock:
		return "InStock"
	case StatusSold:
		return "Sold"
	case StatusDamaged:
		return "Damaged"
	default:
		return "Unknown"
	}
}
