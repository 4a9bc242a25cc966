package appointments

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

var errRepoNotFound = errors.New("repo: not found")

type testRepo struct {
	byID map[string]Appointment
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Appointment{}}
}

func (r *testRepo) Create(ctx context.Context, a Appointment) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	if _, ok := r.byID[a.ID]; ok {
		return errors.New("repo: already exists")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Appointment, error) {
	a, ok := r.byID[id]
	if !ok {
		return Appointment{}, errRepoNotFound
	}
	return a, nil
}

func (r *testRepo) List(ctx context.Context) ([]Appointment, error) {
	out := make([]Appointment, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, a Appointment) error {
	if _, ok := r.byID[a.ID]; !ok {
		return errRepoNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return errRepoNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.PetID == petID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListByVeterinarian(ctx context.Context, vetID string) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.VeterinarianID == vetID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListByStatus(ctx context.Context, status Status) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.Status == status {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListByTimeRange(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if !a.StartsAt.Before(from) && !a.StartsAt.After(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListByVeterinarianAndTime(ctx context.Context, vetID string, at time.Time) ([]Appointment, error) {
	out := make([]Appointment, 0)
	for _, a := range r.byID {
		if a.VeterinarianID == vetID && a.StartsAt.Equal(at) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) DeleteByPet(ctx context.Context, petID string) error {
	for id, a := range r.byID {
		if a.PetID == petID {
			delete(r.byID, id)
		}
	}
	return nil
}

func (r *testRepo) DeleteByVeterinarian(ctx context.Context, vetID string) error {
	for id, a := range r.byID {
		if a.VeterinarianID == vetID {
			delete(r.byID, id)
		}
	}
	return nil
}

type recordingPurger struct {
	purged []string
}

func (p *recordingPurger) PurgeByAppointment(ctx context.Context, appointmentID string) error {
	p.purged = append(p.purged, appointmentID)
	return nil
}

// -------------------------
// Tests
// -------------------------

var slotTime = time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)

func TestService_Create_RejectsSameVetSameInstant(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	_, err := svc.Create(context.Background(), CreateInput{
		PetID:          "pet-1",
		VeterinarianID: "vet-1",
		StartsAt:       slotTime,
	})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		PetID:          "pet-2",
		VeterinarianID: "vet-1",
		StartsAt:       slotTime,
	})
	if err != ErrVetUnavailable {
		t.Fatalf("expected ErrVetUnavailable, got %v", err)
	}
}

func TestService_Create_AllowsSameVetDifferentInstant(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	for _, at := range []time.Time{slotTime, slotTime.Add(time.Hour)} {
		_, err := svc.Create(context.Background(), CreateInput{
			PetID:          "pet-1",
			VeterinarianID: "vet-1",
			StartsAt:       at,
		})
		if err != nil {
			t.Fatalf("create at %v: %v", at, err)
		}
	}
}

func TestService_Create_AllowsOtherVetSameInstant(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	if _, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime,
	}); err != nil {
		t.Fatalf("vet-1 create: %v", err)
	}
	if _, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-2", StartsAt: slotTime,
	}); err != nil {
		t.Fatalf("vet-2 create: %v", err)
	}
}

func TestService_Create_DefaultsToScheduled(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	a, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if a.Status != StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", a.Status)
	}
}

func TestService_Update_SameSlotOnItselfIsNotAConflict(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	a, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime, Reason: "control",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	upd, err := svc.Update(context.Background(), a.ID, CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime, Reason: "vacuna",
	})
	if err != nil {
		t.Fatalf("update keeping slot: %v", err)
	}
	if upd.Reason != "vacuna" {
		t.Fatalf("expected reason replaced, got %q", upd.Reason)
	}
}

func TestService_Update_MovingIntoTakenSlotFails(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	if _, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime,
	}); err != nil {
		t.Fatalf("create first: %v", err)
	}
	b, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-2", VeterinarianID: "vet-1", StartsAt: slotTime.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	_, err = svc.Update(context.Background(), b.ID, CreateInput{
		PetID: "pet-2", VeterinarianID: "vet-1", StartsAt: slotTime,
	})
	if err != ErrVetUnavailable {
		t.Fatalf("expected ErrVetUnavailable, got %v", err)
	}
}

func TestService_ChangeStatus_CaseInsensitive(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	a, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	upd, err := svc.ChangeStatus(context.Background(), a.ID, "completed")
	if err != nil {
		t.Fatalf("change status: %v", err)
	}
	if upd.Status != StatusCompleted {
		t.Fatalf("expected COMPLETED, got %s", upd.Status)
	}

	// Sin máquina de estados: volver a SCHEDULED es válido.
	upd, err = svc.ChangeStatus(context.Background(), a.ID, "Scheduled")
	if err != nil {
		t.Fatalf("change status back: %v", err)
	}
	if upd.Status != StatusScheduled {
		t.Fatalf("expected SCHEDULED, got %s", upd.Status)
	}
}

func TestService_ChangeStatus_RejectsUnknownValue(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	a, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.ChangeStatus(context.Background(), a.ID, "bogus"); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestService_ListByStatusString_UnknownValueIsEmptyNotError(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	items, err := svc.ListByStatusString(context.Background(), "bogus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d items", len(items))
	}
}

func TestService_PurgeByPet_PurgesTreatmentsFirst(t *testing.T) {
	repo := newTestRepo()
	purger := &recordingPurger{}
	svc := NewService(repo, purger)

	a, err := svc.Create(context.Background(), CreateInput{
		PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: slotTime,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.PurgeByPet(context.Background(), "pet-1"); err != nil {
		t.Fatalf("purge: %v", err)
	}

	if len(purger.purged) != 1 || purger.purged[0] != a.ID {
		t.Fatalf("expected treatments purged for %s, got %v", a.ID, purger.purged)
	}
	if items, _ := repo.ListByPet(context.Background(), "pet-1"); len(items) != 0 {
		t.Fatalf("expected appointments removed, got %d", len(items))
	}
}

func TestService_Today_WindowEdgesAreInclusive(t *testing.T) {
	svc := NewService(newTestRepo(), &recordingPurger{})

	// "hoy" fijo vía el hook de reloj: 2025-12-22, zona del proceso simulada UTC
	today := time.Date(2025, 12, 22, 15, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return today }

	dayStart := time.Date(2025, 12, 22, 0, 0, 0, 0, time.UTC)
	dayEnd := time.Date(2025, 12, 22, 23, 59, 59, 0, time.UTC)

	inside := []time.Time{dayStart, dayEnd, today}
	outside := []time.Time{dayStart.Add(-time.Second), dayEnd.Add(time.Second)}

	wantIDs := map[string]bool{}
	for _, at := range inside {
		a, err := svc.Create(context.Background(), CreateInput{
			PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: at,
		})
		if err != nil {
			t.Fatalf("create inside %v: %v", at, err)
		}
		wantIDs[a.ID] = true
	}
	for _, at := range outside {
		if _, err := svc.Create(context.Background(), CreateInput{
			PetID: "pet-1", VeterinarianID: "vet-1", StartsAt: at,
		}); err != nil {
			t.Fatalf("create outside %v: %v", at, err)
		}
	}

	got, err := svc.Today(context.Background())
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(got) != len(inside) {
		t.Fatalf("expected %d appointments today, got %d", len(inside), len(got))
	}
	for _, a := range got {
		if !wantIDs[a.ID] {
			t.Fatalf("unexpected appointment %s (starts %v) in today's window", a.ID, a.StartsAt)
		}
	}
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		in   string
		want Status
		ok   bool
	}{
		{"SCHEDULED", StatusScheduled, true},
		{"completed", StatusCompleted, true},
		{" Cancelled ", StatusCancelled, true},
		{"bogus", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := ParseStatus(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseStatus(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
