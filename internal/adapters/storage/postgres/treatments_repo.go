package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vet-clinic-api/internal/domain/treatments"
)

type TreatmentsRepo struct {
	db *sql.DB
}

func NewTreatmentsRepo(db *sql.DB) *TreatmentsRepo {
	return &TreatmentsRepo{db: db}
}

func (r *TreatmentsRepo) Create(ctx context.Context, t treatments.Treatment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO treatments (
			id, appointment_id,
			diagnosis, treatment, cost, notes,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		t.ID,
		t.AppointmentID,
		t.Diagnosis,
		t.Treatment,
		toNullFloat(t.Cost),
		t.Notes,
		t.CreatedAt,
	)
	return err
}

func (r *TreatmentsRepo) GetByID(ctx context.Context, id string) (treatments.Treatment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return treatments.Treatment{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, appointment_id, diagnosis, treatment, cost, notes, created_at
		FROM treatments
		WHERE id = $1
	`, id)

	var t treatments.Treatment
	var cost sql.NullFloat64
	if err := row.Scan(&t.ID, &t.AppointmentID, &t.Diagnosis, &t.Treatment, &cost, &t.Notes, &t.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return treatments.Treatment{}, ErrNotFound
		}
		return treatments.Treatment{}, err
	}
	t.Cost = fromNullFloat(cost)
	return t, nil
}

func (r *TreatmentsRepo) List(ctx context.Context) ([]treatments.Treatment, error) {
	return r.list(ctx, `
		SELECT id, appointment_id, diagnosis, treatment, cost, notes, created_at
		FROM treatments
		ORDER BY created_at, id
	`)
}

func (r *TreatmentsRepo) ListByAppointment(ctx context.Context, appointmentID string) ([]treatments.Treatment, error) {
	return r.list(ctx, `
		SELECT id, appointment_id, diagnosis, treatment, cost, notes, created_at
		FROM treatments
		WHERE appointment_id = $1
		ORDER BY created_at, id
	`, appointmentID)
}

func (r *TreatmentsRepo) Update(ctx context.Context, t treatments.Treatment) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE treatments
		SET
			appointment_id = $2,
			diagnosis = $3,
			treatment = $4,
			cost = $5,
			notes = $6
		WHERE id = $1
	`,
		t.ID,
		t.AppointmentID,
		t.Diagnosis,
		t.Treatment,
		toNullFloat(t.Cost),
		t.Notes,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TreatmentsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM treatments WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TreatmentsRepo) DeleteByAppointment(ctx context.Context, appointmentID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM treatments WHERE appointment_id = $1`, appointmentID)
	return err
}

func (r *TreatmentsRepo) list(ctx context.Context, query string, args ...any) ([]treatments.Treatment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]treatments.Treatment, 0)
	for rows.Next() {
		var t treatments.Treatment
		var cost sql.NullFloat64
		if err := rows.Scan(&t.ID, &t.AppointmentID, &t.Diagnosis, &t.Treatment, &cost, &t.Notes, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Cost = fromNullFloat(cost)
		out = append(out, t)
	}
	return out, rows.Err()
}

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func fromNullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
