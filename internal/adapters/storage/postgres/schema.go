package postgres

import (
	"context"
	"database/sql"
)

// schema es idempotente: solo CREATE IF NOT EXISTS, sin migraciones versionadas.
// Los borrados en cascada los orquestan los servicios, no hay ON DELETE CASCADE
// a propósito: así memoria y Postgres se comportan igual.
const schema = `
CREATE TABLE IF NOT EXISTS owners (
	id      TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	email   TEXT NOT NULL UNIQUE,
	phone   TEXT NOT NULL DEFAULT '',
	address TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS veterinarians (
	id             TEXT PRIMARY KEY,
	name           TEXT NOT NULL,
	specialization TEXT NOT NULL DEFAULT '',
	email          TEXT NOT NULL UNIQUE,
	phone          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS pets (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	name       TEXT NOT NULL,
	species    TEXT NOT NULL DEFAULT '',
	breed      TEXT NOT NULL DEFAULT '',
	age        INTEGER NOT NULL DEFAULT 0,
	weight     DOUBLE PRECISION NOT NULL DEFAULT 0,
	color      TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_pets_owner ON pets (owner_id);

CREATE TABLE IF NOT EXISTS appointments (
	id              TEXT PRIMARY KEY,
	pet_id          TEXT NOT NULL,
	veterinarian_id TEXT NOT NULL,
	starts_at       TIMESTAMPTZ NOT NULL,
	reason          TEXT NOT NULL DEFAULT '',
	status          TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_appointments_pet ON appointments (pet_id);
CREATE INDEX IF NOT EXISTS idx_appointments_status ON appointments (status);
-- Respaldo del chequeo de conflicto del servicio: un veterinario no puede
-- tener dos citas en el mismo instante exacto.
CREATE UNIQUE INDEX IF NOT EXISTS uq_appointments_vet_slot
	ON appointments (veterinarian_id, starts_at);

CREATE TABLE IF NOT EXISTS treatments (
	id             TEXT PRIMARY KEY,
	appointment_id TEXT NOT NULL,
	diagnosis      TEXT NOT NULL,
	treatment      TEXT NOT NULL,
	cost           DOUBLE PRECISION,
	notes          TEXT NOT NULL DEFAULT '',
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_treatments_appointment ON treatments (appointment_id);

CREATE TABLE IF NOT EXISTS users (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	email         TEXT NOT NULL DEFAULT '',
	first_name    TEXT NOT NULL DEFAULT '',
	last_name     TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);
`

func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
