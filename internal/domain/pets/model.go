package pets

import "time"

// Pet representa un paciente animal. Referencia a su dueño solo por id
// (nunca embebido) para serializar siempre en una sola dirección.
type Pet struct {
	ID      string
	OwnerID string

	Name    string
	Species string // perro, gato, ave...
	Breed   string
	Age     int
	Weight  float64
	Color   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
