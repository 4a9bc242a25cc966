package appointments

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, a Appointment) error
	GetByID(ctx context.Context, id string) (Appointment, error)
	List(ctx context.Context) ([]Appointment, error)
	Update(ctx context.Context, a Appointment) error
	Delete(ctx context.Context, id string) error

	ListByPet(ctx context.Context, petID string) ([]Appointment, error)
	ListByVeterinarian(ctx context.Context, vetID string) ([]Appointment, error)
	ListByStatus(ctx context.Context, status Status) ([]Appointment, error)
	ListByTimeRange(ctx context.Context, from, to time.Time) ([]Appointment, error)

	// ListByVeterinarianAndTime es el query del chequeo de conflicto:
	// match exacto de timestamp, no solapamiento de intervalos.
	ListByVeterinarianAndTime(ctx context.Context, vetID string, at time.Time) ([]Appointment, error)

	DeleteByPet(ctx context.Context, petID string) error
	DeleteByVeterinarian(ctx context.Context, vetID string) error
}
