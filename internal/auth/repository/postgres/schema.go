package postgres

import "context"

// EnsureSchema creates the two tables when they do not exist yet. The
// simulator has no migration story beyond this single schema.
func EnsureSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS accounts (
			id            TEXT PRIMARY KEY,
			email         TEXT NOT NULL UNIQUE,
			full_name     TEXT NOT NULL,
			phone         TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			mfa_enabled   BOOLEAN NOT NULL DEFAULT FALSE,
			verified      BOOLEAN NOT NULL DEFAULT FALSE,
			created_at    TIMESTAMPTZ NOT NULL
		);

		CREATE TABLE IF NOT EXISTS audit_log (
			id         TEXT PRIMARY KEY,
			account_id TEXT NOT NULL REFERENCES accounts (id),
			event      TEXT NOT NULL,
			status     TEXT NOT NULL,
			ip_address TEXT NOT NULL,
			ts         TIMESTAMPTZ NOT NULL,
			details    TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_audit_log_account_ts ON audit_log (account_id, ts DESC);
	`)
	return err
}
