package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"vet-clinic-api/internal/domain/vets"
)

type vetsRepo struct {
	mu   sync.RWMutex
	byID map[string]vets.Veterinarian
}

func NewVetsRepo() vets.Repository {
	return &vetsRepo{
		byID: make(map[string]vets.Veterinarian),
	}
}

func (r *vetsRepo) Create(ctx context.Context, v vets.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return errors.New("veterinarian id required")
	}
	if _, exists := r.byID[v.ID]; exists {
		return errors.New("veterinarian already exists")
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vetsRepo) GetByID(ctx context.Context, id string) (vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return vets.Veterinarian{}, ErrNotFound
	}
	return v, nil
}

func (r *vetsRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(vets.Veterinarian) bool { return true }), nil
}

func (r *vetsRepo) ListBySpecialization(ctx context.Context, specialization string) ([]vets.Veterinarian, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.collect(func(v vets.Veterinarian) bool {
		return v.Specialization == specialization
	}), nil
}

func (r *vetsRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[v.ID]; !exists {
		return ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *vetsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *vetsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.byID {
		if v.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *vetsRepo) collect(keep func(vets.Veterinarian) bool) []vets.Veterinarian {
	out := make([]vets.Veterinarian, 0, len(r.byID))
	for _, v := range r.byID {
		if keep(v) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
