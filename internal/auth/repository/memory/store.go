// Package memory provides the default storage substrate: an in-process
// store holding the account collection and the audit log, optionally
// snapshotted as a whole to one JSON file after every write and reloaded
// on start. There is no schema versioning; the snapshot is read-all /
// write-all.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/manas360online-source/authentication-system/internal/auth/domain"
)

type Store struct {
	mu       sync.RWMutex
	path     string
	accounts []domain.Account
	auditLog []domain.AuditEntry // newest-first
}

type snapshot struct {
	Accounts []domain.Account    `json:"accounts"`
	AuditLog []domain.AuditEntry `json:"audit_log"`
}

// NewStore returns a store backed by the snapshot file at path, loading
// it when present. An empty path keeps everything in memory only.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", path, err)
	}
	s.accounts = snap.Accounts
	s.auditLog = snap.AuditLog
	return s, nil
}

// persist writes the full snapshot. Callers must hold mu.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(snapshot{Accounts: s.accounts, AuditLog: s.auditLog}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].Email == email {
			a := s.accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			a := s.accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (s *Store) Create(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Email == account.Email {
			return fmt.Errorf("account with email %s already exists", account.Email)
		}
	}
	s.accounts = append(s.accounts, *account)
	return s.persist()
}

func (s *Store) Update(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == account.ID {
			s.accounts[i] = *account
			return s.persist()
		}
	}
	return fmt.Errorf("account %s not found", account.ID)
}

func (s *Store) Append(ctx context.Context, entry *domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auditLog = append([]domain.AuditEntry{*entry}, s.auditLog...)
	return s.persist()
}

func (s *Store) ListByAccount(ctx context.Context, accountID string) ([]domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []domain.AuditEntry
	for _, e := range s.auditLog {
		if e.AccountID == accountID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}
