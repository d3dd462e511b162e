package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/ports"
	"github.com/miseboard/kitchen-api/internal/core/token"
)

// AuthService implements registration and session issuance. It is a pure
// function of the request plus the user repository; the token codec,
// registration key and admin allowlist are fixed at construction.
type AuthService struct {
	users       ports.UserRepository
	codec       *token.Codec
	registerKey string
	admins      map[string]struct{}
	limiter     ports.LoginLimiter
	audit       ports.AuditSink
}

func NewAuthService(users ports.UserRepository, codec *token.Codec, registerKey string, adminUsernames []string) *AuthService {
	admins := make(map[string]struct{}, len(adminUsernames))
	for _, name := range adminUsernames {
		admins[name] = struct{}{}
	}
	return &AuthService{
		users:       users,
		codec:       codec,
		registerKey: registerKey,
		admins:      admins,
	}
}

// WithLoginLimiter installs an optional per-username attempt throttle.
func (s *AuthService) WithLoginLimiter(limiter ports.LoginLimiter) *AuthService {
	s.limiter = limiter
	return s
}

// WithAuditSink installs an optional audit event sink.
func (s *AuthService) WithAuditSink(sink ports.AuditSink) *AuthService {
	s.audit = sink
	return s
}

// Register creates an account. The access key must match the server-held
// registration key; on mismatch nothing is looked up or written. Role is
// decided once here, by the admin-username allowlist, and the password is
// always stored as a bcrypt hash.
func (s *AuthService) Register(ctx context.Context, username, password, accessKey, station string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if accessKey != s.registerKey {
		s.record(username, domain.AuditRegisterDenied)
		return nil, domain.ErrForbidden
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if _, ok := s.admins[username]; ok {
		role = domain.RoleAdmin
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Station:      station,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// Uniqueness is enforced by the store's index, so a concurrent
	// duplicate resolves to exactly one winner.
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(username, domain.AuditRegisterSuccess)
	return created, nil
}

// Login checks credentials and mints a session token. Unknown username and
// wrong password both come back as ErrInvalidCredentials so the response
// leaks nothing about account existence.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, username)
		if err == nil && !ok {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.record(username, domain.AuditLoginFailure)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.record(username, domain.AuditLoginFailure)
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(user, time.Now())
	if err != nil {
		return "", nil, err
	}

	s.record(username, domain.AuditLoginSuccess)
	return tkn, user, nil
}

func (s *AuthService) record(username, action string) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(domain.AuditEvent{
		Username:  username,
		Action:    action,
		Timestamp: time.Now().UTC(),
	})
}
