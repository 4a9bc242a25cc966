package owners

import (
	"context"
	"errors"
	"testing"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Owner
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Owner{}}
}

func (r *testRepo) Create(ctx context.Context, o Owner) error {
	if o.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[o.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Owner, error) {
	o, ok := r.byID[id]
	if !ok {
		return Owner{}, errRepoNotFound
	}
	return o, nil
}

func (r *testRepo) List(ctx context.Context) ([]Owner, error) {
	out := make([]Owner, 0, len(r.byID))
	for _, o := range r.byID {
		out = append(out, o)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, o Owner) error {
	if _, ok := r.byID[o.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[o.ID] = o
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, o := range r.byID {
		if o.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type noopPetPurger struct{}

func (noopPetPurger) PurgeByOwner(ctx context.Context, ownerID string) error { return nil }

// -------------------------
// Tests
// -------------------------

func TestService_Create_RejectsDuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, noopPetPurger{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "ana@mail.com"})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{Name: "Otra Ana", Email: "ana@mail.com"})
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Create_FreshEmailIsRetrievable(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, noopPetPurger{})

	o, err := svc.Create(context.Background(), CreateInput{
		Name:    "Ana",
		Email:   "ana@mail.com",
		Phone:   "123",
		Address: "Calle 1",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.GetByID(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Email != "ana@mail.com" || got.Name != "Ana" {
		t.Fatalf("unexpected owner: %+v", got)
	}
}

func TestService_Update_KeepingOwnEmailIsAllowed(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, noopPetPurger{})

	o, err := svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "ana@mail.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	upd, err := svc.Update(context.Background(), o.ID, CreateInput{
		Name:  "Ana María",
		Email: "ana@mail.com",
	})
	if err != nil {
		t.Fatalf("update with own email: %v", err)
	}
	if upd.Name != "Ana María" {
		t.Fatalf("expected name replaced, got %q", upd.Name)
	}
}

func TestService_Update_RejectsEmailOfAnotherOwner(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, noopPetPurger{})

	_, err := svc.Create(context.Background(), CreateInput{Name: "Ana", Email: "ana@mail.com"})
	if err != nil {
		t.Fatalf("create ana: %v", err)
	}
	b, err := svc.Create(context.Background(), CreateInput{Name: "Bruno", Email: "bruno@mail.com"})
	if err != nil {
		t.Fatalf("create bruno: %v", err)
	}

	_, err = svc.Update(context.Background(), b.ID, CreateInput{Name: "Bruno", Email: "ana@mail.com"})
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestService_Delete_UnknownIDFails(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, noopPetPurger{})

	if err := svc.Delete(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
