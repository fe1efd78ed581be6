package domain

import "context"

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*Account, error)
	GetByID(ctx context.Context, id string) (*Account, error)
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
}

type AuditRepository interface {
	Append(ctx context.Context, entry *AuditEntry) error
	ListByAccount(ctx context.Context, accountID string) ([]AuditEntry, error)
}
