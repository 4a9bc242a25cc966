package appointments

import (
	"strings"
	"time"
)

// Status define los estados de una cita.
// @Enum SCHEDULED, COMPLETED, CANCELLED
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus matchea case-insensitive contra los tres estados.
// No hay máquina de estados: cualquier estado puede reasignarse a cualquier otro.
func ParseStatus(s string) (Status, bool) {
	switch Status(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusScheduled:
		return StatusScheduled, true
	case StatusCompleted:
		return StatusCompleted, true
	case StatusCancelled:
		return StatusCancelled, true
	default:
		return "", false
	}
}

// Appointment vincula una mascota y un veterinario en un instante exacto.
// Referencias por id, nunca embebidas.
type Appointment struct {
	ID             string
	PetID          string
	VeterinarianID string

	StartsAt time.Time
	Reason   string
	Status   Status
}
