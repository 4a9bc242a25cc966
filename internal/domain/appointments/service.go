package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotFound       = errors.New("appointment not found")
	ErrVetUnavailable = errors.New("veterinarian is not available at that time")
)

// TreatmentPurger borra en cascada los tratamientos de una cita.
type TreatmentPurger interface {
	PurgeByAppointment(ctx context.Context, appointmentID string) error
}

type Service struct {
	repo       Repository
	treatments TreatmentPurger
	now        func() time.Time
}

func NewService(repo Repository, treatments TreatmentPurger) *Service {
	return &Service{
		repo:       repo,
		treatments: treatments,
		now:        time.Now,
	}
}

type CreateInput struct {
	PetID          string
	VeterinarianID string
	StartsAt       time.Time
	Reason         string
}

// Create agenda una cita. La existencia de mascota y veterinario la valida el
// handler; acá se valida forma y disponibilidad del veterinario.
//
// El chequeo de conflicto es pre-lectura + escritura, sin atomicidad entre
// ambas. El store además mantiene unicidad sobre (veterinario, timestamp),
// así que un duplicado que gane la carrera igual se rechaza al insertar.
func (s *Service) Create(ctx context.Context, in CreateInput) (Appointment, error) {
	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.VeterinarianID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.StartsAt.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	conflicts, err := s.repo.ListByVeterinarianAndTime(ctx, in.VeterinarianID, in.StartsAt)
	if err != nil {
		return Appointment{}, err
	}
	if len(conflicts) > 0 {
		return Appointment{}, ErrVetUnavailable
	}

	a := Appointment{
		ID:             uuid.NewString(),
		PetID:          strings.TrimSpace(in.PetID),
		VeterinarianID: strings.TrimSpace(in.VeterinarianID),
		StartsAt:       in.StartsAt,
		Reason:         strings.TrimSpace(in.Reason),
		Status:         StatusScheduled,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Appointment{}, err
	}
	return a, nil
}

// Update reemplaza mascota, veterinario, horario y motivo (las referencias
// llegan ya resueltas por el handler). El status se cambia solo por
// ChangeStatus/Cancel. Si cambió el par (veterinario, horario), se repite el
// chequeo de disponibilidad ignorando la propia cita.
func (s *Service) Update(ctx context.Context, id string, in CreateInput) (Appointment, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}

	if strings.TrimSpace(in.PetID) == "" || strings.TrimSpace(in.VeterinarianID) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if in.StartsAt.IsZero() {
		return Appointment{}, ErrInvalidInput
	}

	if in.VeterinarianID != cur.VeterinarianID || !in.StartsAt.Equal(cur.StartsAt) {
		conflicts, err := s.repo.ListByVeterinarianAndTime(ctx, in.VeterinarianID, in.StartsAt)
		if err != nil {
			return Appointment{}, err
		}
		for _, c := range conflicts {
			if c.ID != cur.ID {
				return Appointment{}, ErrVetUnavailable
			}
		}
	}

	cur.PetID = strings.TrimSpace(in.PetID)
	cur.VeterinarianID = strings.TrimSpace(in.VeterinarianID)
	cur.StartsAt = in.StartsAt
	cur.Reason = strings.TrimSpace(in.Reason)

	if err := s.repo.Update(ctx, cur); err != nil {
		return Appointment{}, err
	}
	return cur, nil
}

// ChangeStatus asigna el estado parseado del string recibido.
// Reasignación libre: no se valida transición, solo el valor.
func (s *Service) ChangeStatus(ctx context.Context, id, rawStatus string) (Appointment, error) {
	st, ok := ParseStatus(rawStatus)
	if !ok {
		return Appointment{}, ErrInvalidStatus
	}

	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Appointment{}, ErrNotFound
	}

	cur.Status = st
	if err := s.repo.Update(ctx, cur); err != nil {
		return Appointment{}, err
	}
	return cur, nil
}

// Cancel es el atajo de cancelación.
func (s *Service) Cancel(ctx context.Context, id string) (Appointment, error) {
	return s.ChangeStatus(ctx, id, string(StatusCancelled))
}

// Delete elimina la cita y, en cascada, sus tratamientos.
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrNotFound
	}
	if err := s.treatments.PurgeByAppointment(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// PurgeByPet implementa pets.AppointmentPurger.
func (s *Service) PurgeByPet(ctx context.Context, petID string) error {
	items, err := s.repo.ListByPet(ctx, petID)
	if err != nil {
		return err
	}
	for _, a := range items {
		if err := s.treatments.PurgeByAppointment(ctx, a.ID); err != nil {
			return err
		}
	}
	return s.repo.DeleteByPet(ctx, petID)
}

// PurgeByVeterinarian implementa vets.AppointmentPurger.
func (s *Service) PurgeByVeterinarian(ctx context.Context, vetID string) error {
	items, err := s.repo.ListByVeterinarian(ctx, vetID)
	if err != nil {
		return err
	}
	for _, a := range items {
		if err := s.treatments.PurgeByAppointment(ctx, a.ID); err != nil {
			return err
		}
	}
	return s.repo.DeleteByVeterinarian(ctx, vetID)
}

func (s *Service) GetByID(ctx context.Context, id string) (Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Appointment, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListByVeterinarian(ctx context.Context, vetID string) ([]Appointment, error) {
	return s.repo.ListByVeterinarian(ctx, vetID)
}

// ListByStatusString filtra por status. Un valor no reconocido devuelve lista
// vacía y no error: un filtro inválido es "sin resultados", a diferencia de
// una mutación con status inválido que sí rechaza.
func (s *Service) ListByStatusString(ctx context.Context, rawStatus string) ([]Appointment, error) {
	st, ok := ParseStatus(rawStatus)
	if !ok {
		return []Appointment{}, nil
	}
	return s.repo.ListByStatus(ctx, st)
}

// Today devuelve las citas del día en curso (hora local del servidor,
// de 00:00:00 a 23:59:59).
func (s *Service) Today(ctx context.Context) ([]Appointment, error) {
	now := s.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())
	return s.repo.ListByTimeRange(ctx, start, end)
}
