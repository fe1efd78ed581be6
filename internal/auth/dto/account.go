package dto

import (
	"time"

	"github.com/manas360online-source/authentication-system/internal/auth/domain"
)

type AccountOutput struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	MFAEnabled bool      `json:"mfa_enabled"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewAccountOutput(a *domain.Account) AccountOutput {
	return AccountOutput{
		ID:         a.ID,
		Email:      a.Email,
		FullName:   a.FullName,
		Phone:      a.Phone,
		MFAEnabled: a.MFAEnabled,
		Verified:   a.Verified,
		CreatedAt:  a.CreatedAt,
	}
}

// LoginResult is the outcome of a credential, MFA or federated login.
// Token is empty and MFARequired true when a second factor is still
// outstanding.
type LoginResult struct {
	Account     *domain.Account
	Token       string
	MFARequired bool
}

type AuditEntryOutput struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Event     string    `json:"event"`
	Status    string    `json:"status"`
	IPAddress string    `json:"ip"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

type SessionOutput struct {
	ID         string `json:"id"`
	AccountID  string `json:"account_id"`
	Device     string `json:"device"`
	IPAddress  string `json:"ip"`
	Location   string `json:"location"`
	LastActive string `json:"last_active"`
	Current    bool   `json:"current"`
}
