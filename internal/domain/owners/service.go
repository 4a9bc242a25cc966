package owners

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("email already in use")
	ErrNotFound     = errors.New("owner not found")
)

// PetPurger borra en cascada las mascotas de un dueño (y lo que cuelgue de ellas).
// Lo implementa pets.Service; es interfaz local para no importar el módulo pets.
type PetPurger interface {
	PurgeByOwner(ctx context.Context, ownerID string) error
}

type Service struct {
	repo Repository
	pets PetPurger
}

func NewService(repo Repository, pets PetPurger) *Service {
	return &Service{
		repo: repo,
		pets: pets,
	}
}

type CreateInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Owner, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return Owner{}, ErrInvalidInput
	}

	taken, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return Owner{}, err
	}
	if taken {
		return Owner{}, ErrEmailTaken
	}

	o := Owner{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return Owner{}, err
	}
	return o, nil
}

// Update reemplaza todos los campos mutables del dueño.
// El email solo se revisa contra otros registros si cambió.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Owner, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Owner{}, ErrNotFound
	}

	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return Owner{}, ErrInvalidInput
	}

	if email != cur.Email {
		taken, err := s.repo.ExistsByEmail(ctx, email)
		if err != nil {
			return Owner{}, err
		}
		if taken {
			return Owner{}, ErrEmailTaken
		}
	}

	cur.Name = name
	cur.Email = email
	cur.Phone = strings.TrimSpace(in.Phone)
	cur.Address = strings.TrimSpace(in.Address)

	if err := s.repo.Update(ctx, cur); err != nil {
		return Owner{}, err
	}
	return cur, nil
}

// Delete elimina al dueño y, en cascada, sus mascotas con citas y tratamientos.
// Los hijos se borran antes que el padre para no dejar referencias colgando.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	if err := s.pets.PurgeByOwner(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Owner, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

// Exists lo usan otros módulos (pets) para validar referencias sin acoplarse al repo.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return false, nil
	}
	return true, nil
}
