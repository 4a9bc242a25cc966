package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"vet-clinic-api/internal/domain/owners"
)

// isUniqueViolation detecta el código 23505 de Postgres (unique_violation).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type OwnersRepo struct {
	db *sql.DB
}

func NewOwnersRepo(db *sql.DB) *OwnersRepo {
	return &OwnersRepo{db: db}
}

func (r *OwnersRepo) Create(ctx context.Context, o owners.Owner) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO owners (id, name, email, phone, address)
		VALUES ($1,$2,$3,$4,$5)
	`,
		o.ID,
		o.Name,
		o.Email,
		o.Phone,
		o.Address,
	)
	if isUniqueViolation(err) {
		return owners.ErrEmailTaken
	}
	return err
}

func (r *OwnersRepo) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return owners.Owner{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phone, address
		FROM owners
		WHERE id = $1
	`, id)
	return scanOwner(row)
}

func (r *OwnersRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM owners WHERE email = $1)
	`, email).Scan(&exists)
	return exists, err
}

func (r *OwnersRepo) List(ctx context.Context) ([]owners.Owner, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, email, phone, address
		FROM owners
		ORDER BY name, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]owners.Owner, 0)
	for rows.Next() {
		var o owners.Owner
		if err := rows.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.Address); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *OwnersRepo) Update(ctx context.Context, o owners.Owner) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE owners
		SET name = $2, email = $3, phone = $4, address = $5
		WHERE id = $1
	`,
		o.ID,
		o.Name,
		o.Email,
		o.Phone,
		o.Address,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return owners.ErrEmailTaken
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *OwnersRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM owners WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanOwner(row *sql.Row) (owners.Owner, error) {
	var o owners.Owner
	if err := row.Scan(&o.ID, &o.Name, &o.Email, &o.Phone, &o.Address); err != nil {
		if err == sql.ErrNoRows {
			return owners.Owner{}, ErrNotFound
		}
		return owners.Owner{}, err
	}
	return o, nil
}
