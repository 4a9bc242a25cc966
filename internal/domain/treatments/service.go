package treatments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("treatment not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	AppointmentID string
	Diagnosis     string
	Treatment     string
	Cost          *float64
	Notes         string
}

// Create registra un tratamiento. La existencia de la cita la valida el handler.
func (s *Service) Create(ctx context.Context, in CreateInput) (Treatment, error) {
	if strings.TrimSpace(in.AppointmentID) == "" {
		return Treatment{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Diagnosis) == "" || strings.TrimSpace(in.Treatment) == "" {
		return Treatment{}, ErrInvalidInput
	}
	if len(in.Notes) > maxNotesLen {
		return Treatment{}, ErrInvalidInput
	}

	t := Treatment{
		ID:            uuid.NewString(),
		AppointmentID: strings.TrimSpace(in.AppointmentID),
		Diagnosis:     strings.TrimSpace(in.Diagnosis),
		Treatment:     strings.TrimSpace(in.Treatment),
		Cost:          in.Cost,
		Notes:         strings.TrimSpace(in.Notes),
		CreatedAt:     s.now(),
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return Treatment{}, err
	}
	return t, nil
}

// Update reemplaza los campos mutables. El AppointmentID llega resuelto por el
// handler (se conserva el actual si el payload no trae uno válido).
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Treatment, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Treatment{}, ErrNotFound
	}

	if strings.TrimSpace(in.Diagnosis) == "" || strings.TrimSpace(in.Treatment) == "" {
		return Treatment{}, ErrInvalidInput
	}
	if len(in.Notes) > maxNotesLen {
		return Treatment{}, ErrInvalidInput
	}

	cur.Diagnosis = strings.TrimSpace(in.Diagnosis)
	cur.Treatment = strings.TrimSpace(in.Treatment)
	cur.Cost = in.Cost
	cur.Notes = strings.TrimSpace(in.Notes)
	if strings.TrimSpace(in.AppointmentID) != "" {
		cur.AppointmentID = strings.TrimSpace(in.AppointmentID)
	}

	if err := s.repo.Update(ctx, cur); err != nil {
		return Treatment{}, err
	}
	return cur, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

// PurgeByAppointment implementa appointments.TreatmentPurger.
func (s *Service) PurgeByAppointment(ctx context.Context, appointmentID string) error {
	return s.repo.DeleteByAppointment(ctx, appointmentID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Treatment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Treatment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByAppointment(ctx context.Context, appointmentID string) ([]Treatment, error) {
	return s.repo.ListByAppointment(ctx, appointmentID)
}
