package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manas360online-source/authentication-system/internal/auth/domain"
	repo "github.com/manas360online-source/authentication-system/internal/auth/repository/postgres"
)

var accountColumns = []string{"id", "email", "full_name", "phone", "password_hash", "mfa_enabled", "verified", "created_at"}

// TestGetByEmail covers the GetByEmail repository method.
func TestGetByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	email := "test@example.com"
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("acct-123", email, "Test User", "", "hash", false, true, time.Now()))

		account, err := r.GetByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, "acct-123", account.ID)
		assert.True(t, account.Verified)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByEmail(ctx, email)
		require.NoError(t, err) // Should return nil account, nil error
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs(email).
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByEmail(ctx, email)
		assert.Error(t, err)
	})
}

// TestGetByID covers the GetByID repository method.
func TestGetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("acct-123").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow("acct-123", "test@example.com", "Test User", "", "hash", true, false, time.Now()))

		account, err := r.GetByID(ctx, "acct-123")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", account.Email)
		assert.True(t, account.MFAEnabled)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email").
			WithArgs("missing-id").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByID(ctx, "missing-id")
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	account := &domain.Account{
		ID:           "acct-123",
		Email:        "new@example.com",
		FullName:     "New User",
		PasswordHash: "new-hash",
		CreatedAt:    time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.FullName, account.Phone,
				account.PasswordHash, account.MFAEnabled, account.Verified, account.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Create(ctx, account))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO accounts").
			WithArgs(account.ID, account.Email, account.FullName, account.Phone,
				account.PasswordHash, account.MFAEnabled, account.Verified, account.CreatedAt).
			WillReturnError(fmt.Errorf("unique violation"))

		assert.Error(t, r.Create(ctx, account))
	})
}

// TestUpdate covers the Update repository method.
func TestUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	account := &domain.Account{
		ID:         "acct-123",
		FullName:   "Test User",
		MFAEnabled: true,
		Verified:   true,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs(account.ID, account.FullName, account.Phone, account.PasswordHash,
				account.MFAEnabled, account.Verified).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.Update(ctx, account))
	})

	t.Run("no rows affected", func(t *testing.T) {
		mock.ExpectExec("UPDATE accounts").
			WithArgs(account.ID, account.FullName, account.Phone, account.PasswordHash,
				account.MFAEnabled, account.Verified).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		assert.Error(t, r.Update(ctx, account))
	})
}

// TestAppend covers the audit-log Append repository method.
func TestAppend(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()

	entry := &domain.AuditEntry{
		ID:        "log-1",
		AccountID: "acct-123",
		Event:     domain.EventLoginSuccess,
		Status:    domain.StatusSuccess,
		IPAddress: "203.0.113.1",
		Timestamp: time.Now(),
		Details:   "Login via password",
	}

	mock.ExpectExec("INSERT INTO audit_log").
		WithArgs(entry.ID, entry.AccountID, string(entry.Event), string(entry.Status),
			entry.IPAddress, entry.Timestamp, entry.Details).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, r.Append(ctx, entry))
}

// TestListByAccount covers the audit-log listing.
func TestListByAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewPostgresRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "account_id", "event", "status", "ip_address", "ts", "details"}

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("SELECT id, account_id").
			WithArgs("acct-123").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("log-2", "acct-123", "LOGIN_SUCCESS", "success", "203.0.113.1", now, "").
				AddRow("log-1", "acct-123", "SIGNUP", "success", "203.0.113.1", now.Add(-time.Minute), "User registered"))

		entries, err := r.ListByAccount(ctx, "acct-123")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, domain.EventLoginSuccess, entries[0].Event)
		assert.Equal(t, domain.EventSignup, entries[1].Event)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, account_id").
			WithArgs("acct-123").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.ListByAccount(ctx, "acct-123")
		assert.Error(t, err)
	})
}
