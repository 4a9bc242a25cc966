package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

// AppointmentPurger borra en cascada las citas de una mascota (y sus tratamientos).
type AppointmentPurger interface {
	PurgeByPet(ctx context.Context, petID string) error
}

type Service struct {
	repo         Repository
	appointments AppointmentPurger
	now          func() time.Time
}

func NewService(repo Repository, appointments AppointmentPurger) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		now:          time.Now,
	}
}

type CreateInput struct {
	OwnerID string
	Name    string
	Species string
	Breed   string
	Age     int
	Weight  float64
	Color   string
}

// Create registra una mascota. La existencia del dueño la valida el handler
// contra el módulo owners; acá solo se valida la forma del input.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.OwnerID) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		OwnerID:   strings.TrimSpace(in.OwnerID),
		Name:      strings.TrimSpace(in.Name),
		Species:   strings.TrimSpace(in.Species),
		Breed:     strings.TrimSpace(in.Breed),
		Age:       in.Age,
		Weight:    in.Weight,
		Color:     strings.TrimSpace(in.Color),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// Update reemplaza todos los campos escalares. El OwnerID llega ya resuelto
// por el handler (se mantiene el actual si el payload no trae uno válido).
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Pet, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, ErrNotFound
	}

	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	cur.Name = strings.TrimSpace(in.Name)
	cur.Species = strings.TrimSpace(in.Species)
	cur.Breed = strings.TrimSpace(in.Breed)
	cur.Age = in.Age
	cur.Weight = in.Weight
	cur.Color = strings.TrimSpace(in.Color)
	if strings.TrimSpace(in.OwnerID) != "" {
		cur.OwnerID = strings.TrimSpace(in.OwnerID)
	}
	cur.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, cur); err != nil {
		return Pet{}, err
	}
	return cur, nil
}

// Delete elimina la mascota y, en cascada, sus citas con tratamientos.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	if err := s.appointments.PurgeByPet(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// PurgeByOwner implementa owners.PetPurger: cascada completa mascota por mascota.
func (s *Service) PurgeByOwner(ctx context.Context, ownerID string) error {
	items, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return err
	}
	for _, p := range items {
		if err := s.appointments.PurgeByPet(ctx, p.ID); err != nil {
			return err
		}
	}
	return s.repo.DeleteByOwner(ctx, ownerID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *Service) ListBySpecies(ctx context.Context, species string) ([]Pet, error) {
	return s.repo.ListBySpecies(ctx, strings.TrimSpace(species))
}

// Exists lo usa el módulo appointments para validar la referencia a la mascota.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, nil
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return false, nil
	}
	return true, nil
}
