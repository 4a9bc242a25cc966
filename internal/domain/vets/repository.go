package vets

import "context"

type Repository interface {
	Create(ctx context.Context, v Veterinarian) error
	GetByID(ctx context.Context, id string) (Veterinarian, error)
	List(ctx context.Context) ([]Veterinarian, error)
	ListBySpecialization(ctx context.Context, specialization string) ([]Veterinarian, error)
	Update(ctx context.Context, v Veterinarian) error
	Delete(ctx context.Context, id string) error

	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
