package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/miseboard/kitchen-api/internal/core/domain"
	"github.com/miseboard/kitchen-api/internal/core/token"
)

type stubUserRepo struct {
	users   map[string]*domain.User
	creates int
	finds   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.creates++
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = "id-" + user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.finds++
	if u, ok := r.users[username]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

type stubLimiter struct {
	allow bool
	err   error
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	return l.allow, l.err
}

type captureSink struct {
	events []domain.AuditEvent
}

func (s *captureSink) Enqueue(e domain.AuditEvent) {
	s.events = append(s.events, e)
}

func newTestAuthService(repo *stubUserRepo) *AuthService {
	codec := token.NewCodec("secret", time.Hour)
	return NewAuthService(repo, codec, "kitchen-key", []string{"chef"})
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "pw1", "kitchen-key", "grill")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", user.Role)
	}
	if user.Station != "grill" {
		t.Fatalf("unexpected station: %s", user.Station)
	}
}

func TestAuthService_Register_AdminAllowlist(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	user, err := svc.Register(context.Background(), "chef", "pw", "kitchen-key", "")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected allowlisted username to get admin role, got %s", user.Role)
	}
}

func TestAuthService_Register_BadAccessKey(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw", "wrong-key", ""); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if repo.creates != 0 || repo.finds != 0 {
		t.Fatalf("store must not be touched on access key mismatch (creates=%d finds=%d)", repo.creates, repo.finds)
	}

	// Same outcome when the username is already taken: the key check wins.
	_, _ = svc.Register(context.Background(), "alice", "pw", "kitchen-key", "")
	if _, err := svc.Register(context.Background(), "alice", "pw2", "wrong-key", ""); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for existing username too, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "alice", "pw1", "kitchen-key", ""); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "pw2", "kitchen-key", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_EmptyFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	if _, err := svc.Register(context.Background(), "", "pw", "kitchen-key", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "alice", "", "kitchen-key", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	codec := token.NewCodec("secret", time.Hour)
	svc := NewAuthService(repo, codec, "kitchen-key", []string{"chef"})

	if _, err := svc.Register(context.Background(), "chef", "s3cret", "kitchen-key", "pass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tkn, user, err := svc.Login(context.Background(), "chef", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.Station != "pass" {
		t.Fatalf("unexpected station echo: %s", user.Station)
	}

	claims, err := codec.Verify(tkn)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.Username != "chef" || claims.Role != domain.RoleAdmin || claims.Station != "pass" {
		t.Fatalf("claims do not match stored identity: %+v", claims)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected user id %s, got %s", user.ID, claims.UserID)
	}
}

func TestAuthService_Login_FailuresIndistinguishable(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo)

	_, _ = svc.Register(context.Background(), "alice", "goodpass", "kitchen-key", "")

	_, _, wrongPass := svc.Login(context.Background(), "alice", "badpass")
	_, _, unknown := svc.Login(context.Background(), "ghost", "whatever")

	if wrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", wrongPass)
	}
	if unknown != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", unknown)
	}
	if wrongPass != unknown {
		t.Fatalf("the two failures must be the same error")
	}
}

func TestAuthService_Login_RateLimited(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo).WithLoginLimiter(&stubLimiter{allow: false})

	_, _ = svc.Register(context.Background(), "alice", "pw", "kitchen-key", "")
	if _, _, err := svc.Login(context.Background(), "alice", "pw"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_LimiterFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestAuthService(repo).WithLoginLimiter(&stubLimiter{allow: true, err: context.DeadlineExceeded})

	_, _ = svc.Register(context.Background(), "alice", "pw", "kitchen-key", "")
	if _, _, err := svc.Login(context.Background(), "alice", "pw"); err != nil {
		t.Fatalf("limiter error must not block login: %v", err)
	}
}

func TestAuthService_AuditTrail(t *testing.T) {
	repo := newStubUserRepo()
	sink := &captureSink{}
	svc := newTestAuthService(repo).WithAuditSink(sink)

	_, _ = svc.Register(context.Background(), "alice", "pw", "kitchen-key", "")
	_, _, _ = svc.Login(context.Background(), "alice", "pw")
	_, _, _ = svc.Login(context.Background(), "alice", "wrong")
	_, _ = svc.Register(context.Background(), "bob", "pw", "nope", "")

	want := []string{
		domain.AuditRegisterSuccess,
		domain.AuditLoginSuccess,
		domain.AuditLoginFailure,
		domain.AuditRegisterDenied,
	}
	if len(sink.events) != len(want) {
		t.Fatalf("expected %d audit events, got %d", len(want), len(sink.events))
	}
	for i, action := range want {
		if sink.events[i].Action != action {
			t.Fatalf("event %d: expected %s, got %s", i, action, sink.events[i].Action)
		}
	}
}
