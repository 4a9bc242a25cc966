package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"vet-clinic-api/internal/domain/users"
)

type usersRepo struct {
	mu         sync.RWMutex
	byUsername map[string]users.User
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byUsername: make(map[string]users.User),
	}
}

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.Username) == "" {
		return errors.New("username required")
	}
	if _, exists := r.byUsername[u.Username]; exists {
		return errors.New("user already exists")
	}
	r.byUsername[u.Username] = u
	return nil
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byUsername[username]
	if !ok {
		return users.User{}, ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUsername[username]
	return ok, nil
}
