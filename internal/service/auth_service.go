package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"orderdash/internal/auth"
	"orderdash/internal/model"
	"orderdash/internal/repository"
)

const bcryptCost = 10

const (
	adminUsername = "admin"
	adminEmail    = "admin@example.com"

	// dummyHash is a valid bcrypt hash compared against when the username is
	// unknown, so both failure paths pay one bcrypt compare.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

// ErrInvalidCredentials is returned when username or password is incorrect.
// Unknown username and wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*model.Account, string, error)
	Logout(ctx context.Context, token string) error
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	accountRepo   repository.AccountRepository
	sessions      *auth.SessionService
	sessionStore  auth.SessionStoreInterface
	adminPassword string
}

// NewAuthService creates a new authentication service. adminPassword is the
// plaintext the bootstrap seeds the default admin account with.
func NewAuthService(
	accountRepo repository.AccountRepository,
	sessions *auth.SessionService,
	sessionStore auth.SessionStoreInterface,
	adminPassword string,
) AuthService {
	return &authService{
		accountRepo:   accountRepo,
		sessions:      sessions,
		sessionStore:  sessionStore,
		adminPassword: adminPassword,
	}
}

// Login authenticates an account and returns it with a signed session token.
func (s *authService) Login(ctx context.Context, username, password string) (*model.Account, string, error) {
	account, err := s.accountRepo.FindByUsername(ctx, username)
	if err != nil {
		// Burn a compare anyway so unknown usernames cost the same as bad
		// passwords.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(account.ID, account.Username)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	return account, token, nil
}

// Logout revokes the session carried by token for the token's remaining
// lifetime. An unparseable or expired token is a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.sessions.Parse(token)
	if err != nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.sessionStore.Revoke(ctx, claims.ID, ttl)
}

// EnsureDefaultAdmin idempotently seeds the default admin account. The unique
// username index backstops a concurrent double-seed.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.accountRepo.FindByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("check admin account: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	account := &model.Account{
		Username:     adminUsername,
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}
	return nil
}
