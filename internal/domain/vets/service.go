package vets

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("email already in use")
	ErrNotFound     = errors.New("veterinarian not found")
)

// AppointmentPurger borra en cascada las citas del veterinario (y sus tratamientos).
type AppointmentPurger interface {
	PurgeByVeterinarian(ctx context.Context, vetID string) error
}

type Service struct {
	repo         Repository
	appointments AppointmentPurger
}

func NewService(repo Repository, appointments AppointmentPurger) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
	}
}

type CreateInput struct {
	Name           string
	Specialization string
	Email          string
	Phone          string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Veterinarian, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return Veterinarian{}, ErrInvalidInput
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return Veterinarian{}, err
	}
	if taken {
		return Veterinarian{}, ErrEmailTaken
	}

	v := Veterinarian{
		ID:             uuid.NewString(),
		Name:           name,
		Specialization: strings.TrimSpace(in.Specialization),
		Email:          email,
		Phone:          strings.TrimSpace(in.Phone),
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return Veterinarian{}, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Veterinarian, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Veterinarian{}, ErrNotFound
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return Veterinarian{}, ErrInvalidInput
	}

	if email != cur.Email {
		taken, err := s.repo.ExistsByEmail(ctx, email)
		if err != nil {
			return Veterinarian{}, err
		}
		if taken {
			return Veterinarian{}, ErrEmailTaken
		}
	}

	cur.Name = name
	cur.Specialization = strings.TrimSpace(in.Specialization)
	cur.Email = email
	cur.Phone = strings.TrimSpace(in.Phone)

	if err := s.repo.Update(ctx, cur); err != nil {
		return Veterinarian{}, err
	}
	return cur, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	if err := s.appointments.PurgeByVeterinarian(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Veterinarian, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Veterinarian, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListBySpecialization(ctx context.Context, specialization string) ([]Veterinarian, error) {
	return s.repo.ListBySpecialization(ctx, strings.TrimSpace(specialization))
}

// Exists lo usa el módulo appointments para validar la referencia al veterinario.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return false, nil
	}
	return true, nil
}
