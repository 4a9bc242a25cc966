package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"vet-clinic-api/internal/domain/appointments"
)

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a appointments.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, pet_id, veterinarian_id,
			starts_at, reason, status
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		a.ID,
		a.PetID,
		a.VeterinarianID,
		a.StartsAt,
		a.Reason,
		string(a.Status),
	)
	// uq_appointments_vet_slot: dos creates concurrentes pueden pasar el
	// pre-chequeo del servicio; el índice único decide y acá se traduce.
	if isUniqueViolation(err) {
		return appointments.ErrVetUnavailable
	}
	return err
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return appointments.Appointment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, pet_id, veterinarian_id, starts_at, reason, status
		FROM appointments
		WHERE id = $1
	`, id)

	var a appointments.Appointment
	var status string
	if err := row.Scan(&a.ID, &a.PetID, &a.VeterinarianID, &a.StartsAt, &a.Reason, &status); err != nil {
		if err == sql.ErrNoRows {
			return appointments.Appointment{}, ErrNotFound
		}
		return appointments.Appointment{}, err
	}
	a.Status = appointments.Status(status)
	return a, nil
}

func (r *AppointmentsRepo) List(ctx context.Context) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, pet_id, veterinarian_id, starts_at, reason, status
		FROM appointments
		ORDER BY starts_at, id
	`)
}

func (r *AppointmentsRepo) ListByPet(ctx context.Context, petID string) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, pet_id, veterinarian_id, starts_at, reason, status
		FROM appointments
		WHERE pet_id = $1
		ORDER BY starts_at, id
	`, petID)
}

func (r *AppointmentsRepo) ListByVeterinarian(ctx context.Context, vetID string) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, pet_id, veterinarian_id, starts_at, reason, status
		FROM appointments
		WHERE veterinarian_id = $1
		ORDER BY starts_at, id
	`, vetID)
}

func (r *AppointmentsRepo) ListByStatus(ctx context.Context, status appointments.Status) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, pet_id, veterinarian_id, starts_at, reason, status
		FROM appointments
		WHERE status = $1
		ORDER BY starts_at, id
	`, string(status))
}

func (r *AppointmentsRepo) ListByTimeRange(ctx context.Context, from, to time.Time) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, pet_id, veterinarian_id, starts_at, reason, status
		FROM appointments
		WHERE starts_at >= $1 AND starts_at <= $2
		ORDER BY starts_at, id
	`, from, to)
}

func (r *AppointmentsRepo) ListByVeterinarianAndTime(ctx context.Context, vetID string, at time.Time) ([]appointments.Appointment, error) {
	return r.list(ctx, `
		SELECT id, pet_id, veterinarian_id, starts_at, reason, status
		FROM appointments
		WHERE veterinarian_id = $1 AND starts_at = $2
		ORDER BY id
	`, vetID, at)
}

func (r *AppointmentsRepo) Update(ctx context.Context, a appointments.Appointment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			pet_id = $2,
			veterinarian_id = $3,
			starts_at = $4,
			reason = $5,
			status = $6
		WHERE id = $1
	`,
		a.ID,
		a.PetID,
		a.VeterinarianID,
		a.StartsAt,
		a.Reason,
		string(a.Status),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return appointments.ErrVetUnavailable
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) DeleteByPet(ctx context.Context, petID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE pet_id = $1`, petID)
	return err
}

func (r *AppointmentsRepo) DeleteByVeterinarian(ctx context.Context, vetID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE veterinarian_id = $1`, vetID)
	return err
}

func (r *AppointmentsRepo) list(ctx context.Context, query string, args ...any) ([]appointments.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]appointments.Appointment, 0)
	for rows.Next() {
		var a appointments.Appointment
		var status string
		if err := rows.Scan(&a.ID, &a.PetID, &a.VeterinarianID, &a.StartsAt, &a.Reason, &status); err != nil {
			return nil, err
		}
		a.Status = appointments.Status(status)
		out = append(out, a)
	}
	return out, rows.Err()
}
