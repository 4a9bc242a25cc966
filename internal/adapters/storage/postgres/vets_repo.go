package postgres

import (
	"context"
	"database/sql"
	"strings"

	"vet-clinic-api/internal/domain/vets"
)

type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) Create(ctx context.Context, v vets.Veterinarian) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO veterinarians (id, name, specialization, email, phone)
		VALUES ($1,$2,$3,$4,$5)
	`,
		v.ID,
		v.Name,
		v.Specialization,
		v.Email,
		v.Phone,
	)
	if isUniqueViolation(err) {
		return vets.ErrEmailTaken
	}
	return err
}

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Veterinarian, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Veterinarian{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, specialization, email, phone
		FROM veterinarians
		WHERE id = $1
	`, id)
	return scanVet(row)
}

func (r *VetsRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM veterinarians WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *VetsRepo) List(ctx context.Context) ([]vets.Veterinarian, error) {
	return r.list(ctx, `
		SELECT id, name, specialization, email, phone
		FROM veterinarians
		ORDER BY name, id
	`)
}

func (r *VetsRepo) ListBySpecialization(ctx context.Context, specialization string) ([]vets.Veterinarian, error) {
	return r.list(ctx, `
		SELECT id, name, specialization, email, phone
		FROM veterinarians
		WHERE specialization = $1
		ORDER BY name, id
	`, specialization)
}

func (r *VetsRepo) Update(ctx context.Context, v vets.Veterinarian) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE veterinarians
		SET name = $2, specialization = $3, email = $4, phone = $5
		WHERE id = $1
	`,
		v.ID,
		v.Name,
		v.Specialization,
		v.Email,
		v.Phone,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return vets.ErrEmailTaken
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM veterinarians WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *VetsRepo) list(ctx context.Context, query string, args ...any) ([]vets.Veterinarian, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Veterinarian, 0)
	for rows.Next() {
		var v vets.Veterinarian
		if err := rows.Scan(&v.ID, &v.Name, &v.Specialization, &v.Email, &v.Phone); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanVet(row *sql.Row) (vets.Veterinarian, error) {
	var v vets.Veterinarian
	if err := row.Scan(&v.ID, &v.Name, &v.Specialization, &v.Email, &v.Phone); err != nil {
		if err == sql.ErrNoRows {
			return vets.Veterinarian{}, ErrNotFound
		}
		return vets.Veterinarian{}, err
	}
	return v, nil
}
