package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"vet-clinic-api/internal/domain/appointments"
)

type appointmentsRepo struct {
	mu   sync.RWMutex
	byID map[string]appointments.Appointment
}

func NewAppointmentsRepo() appointments.Repository {
	return &appointmentsRepo{
		byID: make(map[string]appointments.Appointment),
	}
}

func (r *appointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("appointment id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("appointment already exists")
	}

	// Respaldo del chequeo de conflicto del servicio: el slot
	// (veterinario, timestamp exacto) es único también en el insert.
	for _, cur := range r.byID {
		if cur.VeterinarianID == a.VeterinarianID && cur.StartsAt.Equal(a.StartsAt) {
			return appointments.ErrVetUnavailable
		}
	}

	r.byID[a.ID] = a
	return nil
}

func (r *appointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return appointments.Appointment{}, ErrNotFound
	}
	return a, nil
}

func (r *appointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(appointments.Appointment) bool { return true }), nil
}

func (r *appointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return ErrNotFound
	}
	for id, cur := range r.byID {
		if id != a.ID && cur.VeterinarianID == a.VeterinarianID && cur.StartsAt.Equal(a.StartsAt) {
			return appointments.ErrVetUnavailable
		}
	}
	r.byID[a.ID] = a
	return nil
}

func (r *appointmentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *appointmentsRepo) ListByPet(ctx context.Context, petID string) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(a appointments.Appointment) bool { return a.PetID == petID }), nil
}

func (r *appointmentsRepo) ListByVeterinarian(ctx context.Context, vetID string) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(a appointments.Appointment) bool { return a.VeterinarianID == vetID }), nil
}

func (r *appointmentsRepo) ListByStatus(ctx context.Context, status appointments.Status) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(a appointments.Appointment) bool { return a.Status == status }), nil
}

func (r *appointmentsRepo) ListByTimeRange(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(a appointments.Appointment) bool {
		return !a.StartsAt.Before(from) && !a.StartsAt.After(to)
	}), nil
}

func (r *appointmentsRepo) ListByVeterinarianAndTime(ctx context.Context, vetID string, at time.Time) ([]appointments.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(a appointments.Appointment) bool {
		return a.VeterinarianID == vetID && a.StartsAt.Equal(at)
	}), nil
}

func (r *appointmentsRepo) DeleteByPet(ctx context.Context, petID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, a := range r.byID {
		if a.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *appointmentsRepo) DeleteByVeterinarian(ctx context.Context, vetID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, a := range r.byID {
		if a.VeterinarianID == vetID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *appointmentsRepo) collect(keep func(appointments.Appointment) bool) []appointments.Appointment {
	out := make([]appointments.Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartsAt.Equal(out[j].StartsAt) {
			return out[i].StartsAt.Before(out[j].StartsAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
