package treatments

import "context"

type Repository interface {
	Create(ctx context.Context, t Treatment) error
	GetByID(ctx context.Context, id string) (Treatment, error)
	List(ctx context.Context) ([]Treatment, error)
	ListByAppointment(ctx context.Context, appointmentID string) ([]Treatment, error)
	Update(ctx context.Context, t Treatment) error
	Delete(ctx context.Context, id string) error
	DeleteByAppointment(ctx context.Context, appointmentID string) error
}
