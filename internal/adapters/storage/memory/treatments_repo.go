package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vet-clinic-api/internal/domain/treatments"
)

type treatmentsRepo struct {
	mu   sync.RWMutex
	byID map[string]treatments.Treatment
}

func NewTreatmentsRepo() treatments.Repository {
	return &treatmentsRepo{
		byID: make(map[string]treatments.Treatment),
	}
}

func (r *treatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(t.ID) == "" {
		return errors.New("treatment id required")
	}
	if _, exists := r.byID[t.ID]; exists {
		return errors.New("treatment already exists")
	}
	r.byID[t.ID] = t
	return nil
}

func (r *treatmentsRepo) GetByID(ctx context.Context, id string) (treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.byID[id]
	if !ok {
		return treatments.Treatment{}, ErrNotFound
	}
	return t, nil
}

func (r *treatmentsRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(treatments.Treatment) bool { return true }), nil
}

func (r *treatmentsRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]treatments.Treatment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(t treatments.Treatment) bool {
		return t.AppointmentID == appointmentID
	}), nil
}

func (r *treatmentsRepo) Update(ctx context.Context, t treatments.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[t.ID]; !exists {
		return ErrNotFound
	}
	r.byID[t.ID] = t
	return nil
}

func (r *treatmentsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *treatmentsRepo) DeleteByAppointment(ctx context.Context, appointmentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, t := range r.byID {
		if t.AppointmentID == appointmentID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *treatmentsRepo) collect(keep func(treatments.Treatment) bool) []treatments.Treatment {
	out := make([]treatments.Treatment, 0, len(r.byID))
	for _, t := range r.byID {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
