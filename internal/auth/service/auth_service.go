package service

//go:generate mockgen -destination=../../mocks/mock_repositories.go -package=mocks github.com/manas360online-source/authentication-system/internal/auth/domain AccountRepository,AuditRepository
//go:generate mockgen -destination=../../mocks/mock_attempt_store.go -package=mocks github.com/manas360online-source/authentication-system/internal/auth/ratelimit AttemptStore
//go:generate mockgen -destination=../../mocks/mock_session_provider.go -package=mocks github.com/manas360online-source/authentication-system/internal/auth/sessions Provider

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/manas360online-source/authentication-system/config"
	"github.com/manas360online-source/authentication-system/internal/auth/domain"
	"github.com/manas360online-source/authentication-system/internal/auth/dto"
	"github.com/manas360online-source/authentication-system/internal/auth/ratelimit"
	"github.com/manas360online-source/authentication-system/internal/auth/sessions"
	autherror "github.com/manas360online-source/authentication-system/internal/errors"
	"github.com/manas360online-source/authentication-system/internal/logging"
)

// Fixed demonstration codes: the first is dispatched (conceptually) after
// registration, the second as the MFA second factor.
const (
	RegistrationOTP = "123456"
	MFAOTP          = "999999"
)

// The federated login flow always resolves to this single demo identity.
const (
	googleAccountID = "google_user_123"
	googleEmail     = "demo.user@gmail.com"
	googleFullName  = "Demo Google User"
)

// Per-operation latencies emulating a network round-trip, scaled by
// config.LatencyPercent (0 disables them entirely).
const (
	delayRegister = 800 * time.Millisecond
	delayLogin    = 800 * time.Millisecond
	delayVerify   = 600 * time.Millisecond
	delayGoogle   = 1200 * time.Millisecond
	delayQuery    = 400 * time.Millisecond
	delayToggle   = 500 * time.Millisecond
	delayReset    = 1000 * time.Millisecond
)

// dummyHash is compared against when no account matches the email, so a
// failed login costs the same whether the account exists or not.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-credential"), bcrypt.DefaultCost)

type AuthService struct {
	accounts domain.AccountRepository
	audit    domain.AuditRepository
	attempts ratelimit.AttemptStore
	sessions sessions.Provider
	tokens   TokenGenerator
	cfg      *config.Config
	log      logging.Logger

	now    func() time.Time
	mockIP func() string
}

type Option func(*AuthService)

// WithClock overrides the time source. Used by tests driving the
// rate-limit window.
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

// WithMockIP overrides the synthetic origin-address generator.
func WithMockIP(fn func() string) Option {
	return func(s *AuthService) { s.mockIP = fn }
}

func NewAuthService(
	accounts domain.AccountRepository,
	audit domain.AuditRepository,
	attempts ratelimit.AttemptStore,
	sessionProvider sessions.Provider,
	tokens TokenGenerator,
	cfg *config.Config,
	log logging.Logger,
	opts ...Option,
) *AuthService {
	s := &AuthService{
		accounts: accounts,
		audit:    audit,
		attempts: attempts,
		sessions: sessionProvider,
		tokens:   tokens,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		mockIP:   randomMockIP,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func randomMockIP() string {
	return fmt.Sprintf("%d.%d.%d.1", rand.Intn(255), rand.Intn(255), rand.Intn(255))
}

// simulateLatency blocks for the scaled delay or until ctx is cancelled.
func (s *AuthService) simulateLatency(ctx context.Context, d time.Duration) error {
	d = d * time.Duration(s.cfg.LatencyPercent) / 100
	if d <= 0 {
		return nil
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *AuthService) logEvent(ctx context.Context, accountID string, event domain.AuditEvent, status domain.AuditStatus, details string) {
	entry := &domain.AuditEntry{
		ID:        uuid.NewString(),
		AccountID: accountID,
		Event:     event,
		Status:    status,
		IPAddress: s.mockIP(),
		Timestamp: s.now(),
		Details:   details,
	}
	if err := s.audit.Append(ctx, entry); err != nil {
		s.log.Error(ctx, "failed to append audit entry", "event", string(event), "account_id", accountID, "error", err)
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	if err := s.simulateLatency(ctx, delayRegister); err != nil {
		return nil, err
	}

	existing, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Email:        input.Email,
		FullName:     input.FullName,
		Phone:        input.Phone,
		PasswordHash: string(hashedPassword),
		MFAEnabled:   false,
		Verified:     false,
		CreatedAt:    s.now(),
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	s.logEvent(ctx, account.ID, domain.EventSignup, domain.StatusSuccess, "User registered")

	// The verification code is dispatched out-of-band; in the demo it only
	// ever shows up in the server log.
	s.log.Info(ctx, "OTP dispatched", "email", account.Email, "code", RegistrationOTP)

	return account, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResult, error) {
	if err := s.simulateLatency(ctx, delayLogin); err != nil {
		return nil, err
	}

	now := s.now()
	window := time.Duration(s.cfg.RateLimitWindowMin) * time.Minute

	attempt := s.attempts.Get(input.Email)
	if attempt != nil {
		if !attempt.LockedUntil.IsZero() && now.Before(attempt.LockedUntil) {
			minutes := int(math.Ceil(attempt.LockedUntil.Sub(now).Minutes()))
			return nil, &autherror.LockoutError{RetryAfterMinutes: minutes}
		}
		if now.Sub(attempt.WindowStart) > window {
			s.attempts.Reset(input.Email)
		}
	}

	account, err := s.accounts.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	hash := dummyHash
	if account != nil {
		hash = []byte(account.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(input.Password)) != nil || account == nil {
		return nil, s.recordFailedLogin(ctx, input.Email, account, now)
	}

	s.attempts.Reset(input.Email)

	if account.MFAEnabled {
		destination := account.Phone
		if destination == "" {
			destination = account.Email
		}
		s.log.Info(ctx, "MFA code dispatched", "destination", destination, "code", MFAOTP)
		return &dto.LoginResult{Account: account, MFARequired: true}, nil
	}

	token, _, err := s.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, account.ID, domain.EventLoginSuccess, domain.StatusSuccess, "Login via password")

	return &dto.LoginResult{Account: account, Token: token}, nil
}

// recordFailedLogin bumps the attempt counter, arms the lockout at the
// threshold and always reports the same invalid-credentials error so the
// caller cannot tell an unknown account from a wrong password.
func (s *AuthService) recordFailedLogin(ctx context.Context, email string, account *domain.Account, now time.Time) error {
	updated := s.attempts.Increment(email)
	if updated.Count >= s.cfg.MaxLoginAttempts {
		lockedUntil := now.Add(time.Duration(s.cfg.LockoutMin) * time.Minute)
		s.attempts.Lock(email, lockedUntil)
		s.log.Warn(ctx, "login lockout armed", "email", email, "until", lockedUntil)
		if account != nil {
			s.logEvent(ctx, account.ID, domain.EventAccountLocked, domain.StatusWarning, "Too many failed attempts")
		}
	}

	if account != nil {
		s.logEvent(ctx, account.ID, domain.EventLoginFailed, domain.StatusFailure, "Invalid credentials")
	}

	return autherror.ErrInvalidCredentials
}

// VerifyOTP is the post-registration verification path. Either demo code
// is accepted; a matching account is marked verified.
func (s *AuthService) VerifyOTP(ctx context.Context, email, code string) (bool, error) {
	if err := s.simulateLatency(ctx, delayVerify); err != nil {
		return false, err
	}

	if code != RegistrationOTP && code != MFAOTP {
		return false, autherror.ErrInvalidOTPCode
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if account != nil {
		account.Verified = true
		if err := s.accounts.Update(ctx, account); err != nil {
			return false, err
		}
		s.logEvent(ctx, account.ID, domain.EventLoginSuccess, domain.StatusSuccess, "OTP verified")
	}

	return true, nil
}

// FinalizeMFALogin completes a login that Login answered with
// MFARequired: it checks the code, marks the account verified and mints a
// real token. Unknown accounts get the same invalid-code error.
func (s *AuthService) FinalizeMFALogin(ctx context.Context, email, code string) (*dto.LoginResult, error) {
	if err := s.simulateLatency(ctx, delayVerify); err != nil {
		return nil, err
	}

	if code != RegistrationOTP && code != MFAOTP {
		return nil, autherror.ErrInvalidOTPCode
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, autherror.ErrInvalidOTPCode
	}

	if !account.Verified {
		account.Verified = true
		if err := s.accounts.Update(ctx, account); err != nil {
			return nil, err
		}
	}

	token, _, err := s.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, account.ID, domain.EventLoginSuccess, domain.StatusSuccess, "Login via password + MFA")

	return &dto.LoginResult{Account: account, Token: token}, nil
}

// GoogleLogin emulates the federated flow with a single fixed identity,
// creating it pre-verified on first use.
func (s *AuthService) GoogleLogin(ctx context.Context) (*dto.LoginResult, error) {
	if err := s.simulateLatency(ctx, delayGoogle); err != nil {
		return nil, err
	}

	account, err := s.accounts.GetByEmail(ctx, googleEmail)
	if err != nil {
		return nil, err
	}

	if account == nil {
		account = &domain.Account{
			ID:         googleAccountID,
			Email:      googleEmail,
			FullName:   googleFullName,
			MFAEnabled: false,
			Verified:   true,
			CreatedAt:  s.now(),
		}
		if err := s.accounts.Create(ctx, account); err != nil {
			return nil, err
		}
		s.logEvent(ctx, account.ID, domain.EventSignup, domain.StatusSuccess, "Registered via Google OAuth")
	}

	token, _, err := s.tokens.Generate(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	s.logEvent(ctx, account.ID, domain.EventLoginSuccess, domain.StatusSuccess, "Login via Google OAuth")

	return &dto.LoginResult{Account: account, Token: token}, nil
}

func (s *AuthService) Logout(ctx context.Context, accountID string) error {
	if err := s.simulateLatency(ctx, delayQuery); err != nil {
		return err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return autherror.ErrAccountNotFound
	}

	s.logEvent(ctx, account.ID, domain.EventLogout, domain.StatusSuccess, "User signed out")
	return nil
}

// RequestPasswordReset always reports success so the endpoint cannot be
// used to probe which emails are registered.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.simulateLatency(ctx, delayReset); err != nil {
		return err
	}

	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if account != nil {
		s.logEvent(ctx, account.ID, domain.EventPasswordReset, domain.StatusSuccess, "Password reset requested")
		s.log.Info(ctx, "password reset link dispatched", "email", email)
	}

	return nil
}

func (s *AuthService) GetAuditLog(ctx context.Context, accountID string) ([]domain.AuditEntry, error) {
	if err := s.simulateLatency(ctx, delayQuery); err != nil {
		return nil, err
	}
	return s.audit.ListByAccount(ctx, accountID)
}

func (s *AuthService) GetSessions(ctx context.Context, accountID string) ([]domain.SessionRecord, error) {
	if err := s.simulateLatency(ctx, delayQuery); err != nil {
		return nil, err
	}
	return s.sessions.ListByAccount(ctx, accountID)
}

// ToggleMFA reports whether the account was found; no audit entry is
// written for unknown accounts.
func (s *AuthService) ToggleMFA(ctx context.Context, accountID string, enabled bool) (bool, error) {
	if err := s.simulateLatency(ctx, delayToggle); err != nil {
		return false, err
	}

	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return false, err
	}
	if account == nil {
		return false, nil
	}

	account.MFAEnabled = enabled
	if err := s.accounts.Update(ctx, account); err != nil {
		return false, err
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	s.logEvent(ctx, account.ID, domain.EventMFAToggle, domain.StatusWarning, "MFA "+state)

	return true, nil
}
