package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/manas360online-source/authentication-system/internal/auth/domain"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock
// satisfies it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, full_name, phone, password_hash, mfa_enabled, verified, created_at
		FROM accounts
		WHERE email = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	query := `
		SELECT id, email, full_name, phone, password_hash, mfa_enabled, verified, created_at
		FROM accounts
		WHERE id = $1
		LIMIT 1;
	`
	return r.scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresRepository) scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Email, &a.FullName, &a.Phone, &a.PasswordHash,
		&a.MFAEnabled, &a.Verified, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

func (r *PostgresRepository) Create(ctx context.Context, account *domain.Account) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO accounts (id, email, full_name, phone, password_hash, mfa_enabled, verified, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, account.ID, account.Email, account.FullName, account.Phone,
		account.PasswordHash, account.MFAEnabled, account.Verified, account.CreatedAt)

	return err
}

func (r *PostgresRepository) Update(ctx context.Context, account *domain.Account) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET full_name = $2, phone = $3, password_hash = $4, mfa_enabled = $5, verified = $6
		WHERE id = $1
	`, account.ID, account.FullName, account.Phone, account.PasswordHash,
		account.MFAEnabled, account.Verified)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account %s not found", account.ID)
	}
	return nil
}

func (r *PostgresRepository) Append(ctx context.Context, entry *domain.AuditEntry) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_log (id, account_id, event, status, ip_address, ts, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, entry.ID, entry.AccountID, string(entry.Event), string(entry.Status),
		entry.IPAddress, entry.Timestamp, entry.Details)
	return err
}

func (r *PostgresRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.AuditEntry, error) {
	query := `
		SELECT id, account_id, event, status, ip_address, ts, details
		FROM audit_log
		WHERE account_id = $1
		ORDER BY ts DESC;
	`
	rows, err := r.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var event, status string
		if err := rows.Scan(&e.ID, &e.AccountID, &event, &status, &e.IPAddress, &e.Timestamp, &e.Details); err != nil {
			return nil, err
		}
		e.Event = domain.AuditEvent(event)
		e.Status = domain.AuditStatus(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
