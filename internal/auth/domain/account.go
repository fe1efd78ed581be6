package domain

import "time"

type Account struct {
	ID           string
	Email        string
	FullName     string
	Phone        string
	PasswordHash string
	MFAEnabled   bool
	Verified     bool
	CreatedAt    time.Time
}

// AuditEvent enumerates the security-relevant events recorded per account.
type AuditEvent string

const (
	EventSignup        AuditEvent = "SIGNUP"
	EventLoginSuccess  AuditEvent = "LOGIN_SUCCESS"
	EventLoginFailed   AuditEvent = "LOGIN_FAILED"
	EventLogout        AuditEvent = "LOGOUT"
	EventPasswordReset AuditEvent = "PASSWORD_RESET"
	EventMFAToggle     AuditEvent = "MFA_TOGGLE"
	EventAccountLocked AuditEvent = "ACCOUNT_LOCKED"
)

type AuditStatus string

const (
	StatusSuccess AuditStatus = "success"
	StatusFailure AuditStatus = "failure"
	StatusWarning AuditStatus = "warning"
)

type AuditEntry struct {
	ID        string
	AccountID string
	Event     AuditEvent
	Status    AuditStatus
	IPAddress string
	Timestamp time.Time
	Details   string
}

type SessionRecord struct {
	ID         string
	AccountID  string
	Device     string
	IPAddress  string
	Location   string
	LastActive string
	Current    bool
}

// LoginAttempt tracks failed logins for one email within the current
// rate-limit window. Transient, process-lifetime only.
type LoginAttempt struct {
	Count       int
	WindowStart time.Time
	LockedUntil time.Time
}
