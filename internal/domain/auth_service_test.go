package domain

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

type memUsers struct {
	users  map[string]ports.User
	nextID int64
}

func newMemUsers() *memUsers {
	return &memUsers{users: make(map[string]ports.User)}
}

func (m *memUsers) Create(_ context.Context, username, passwordHash string) (int64, error) {
	if _, ok := m.users[username]; ok {
		return 0, ports.ErrUsernameTaken
	}
	m.nextID++
	m.users[username] = ports.User{
		ID:           m.nextID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	return m.nextID, nil
}

func (m *memUsers) GetByUsername(_ context.Context, username string) (ports.User, error) {
	u, ok := m.users[username]
	if !ok {
		return ports.User{}, ports.ErrNotFound
	}
	return u, nil
}

type memTokens struct {
	jtis map[string]time.Time
}

func newMemTokens() *memTokens {
	return &memTokens{jtis: make(map[string]time.Time)}
}

func (m *memTokens) Save(_ context.Context, jti string, _ int64, expiresAt time.Time) error {
	m.jtis[jti] = expiresAt
	return nil
}

func (m *memTokens) Exists(_ context.Context, jti string) (bool, error) {
	exp, ok := m.jtis[jti]
	return ok && exp.After(time.Now()), nil
}

func (m *memTokens) Delete(_ context.Context, jti string) (bool, error) {
	if _, ok := m.jtis[jti]; !ok {
		return false, nil
	}
	delete(m.jtis, jti)
	return true, nil
}

func newTestAuth() ports.AuthService {
	return NewAuthService(newMemUsers(), newMemTokens(), "test-secret")
}

func TestRegisterLoginValidate(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	id, err := svc.Register(ctx, "alice", "password123")
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}

	pair, err := svc.Login(ctx, "alice", "password123")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("expected both tokens")
	}
	if pair.Access == pair.Refresh {
		t.Fatal("access and refresh must differ")
	}

	userID, err := svc.ValidateAccess(ctx, pair.Access)
	if err != nil {
		t.Fatalf("ValidateAccess err: %v", err)
	}
	if userID != id {
		t.Fatalf("user id: got %d want %d", userID, id)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "password123"); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if _, err := svc.Register(ctx, "alice", "other"); !errors.Is(err, ports.ErrUsernameTaken) {
		t.Fatalf("got err %v, want ErrUsernameTaken", err)
	}
}

func TestRegisterEmptyFields(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "password"); !errors.Is(err, ports.ErrInvalidCredentials) {
		t.Fatalf("empty username: got err %v", err)
	}
	if _, err := svc.Register(ctx, "bob", ""); !errors.Is(err, ports.ErrInvalidCredentials) {
		t.Fatalf("empty password: got err %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "password123"); err != nil {
		t.Fatalf("Register err: %v", err)
	}

	if _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, ports.ErrInvalidCredentials) {
		t.Fatalf("wrong password: got err %v", err)
	}
	if _, err := svc.Login(ctx, "nobody", "password123"); !errors.Is(err, ports.ErrInvalidCredentials) {
		t.Fatalf("unknown user: got err %v", err)
	}
}

func TestRefreshAndLogout(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "password123"); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	pair, err := svc.Login(ctx, "alice", "password123")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}

	access, err := svc.Refresh(ctx, pair.Refresh)
	if err != nil {
		t.Fatalf("Refresh err: %v", err)
	}
	if _, err := svc.ValidateAccess(ctx, access); err != nil {
		t.Fatalf("refreshed access invalid: %v", err)
	}

	if err := svc.Logout(ctx, pair.Refresh); err != nil {
		t.Fatalf("Logout err: %v", err)
	}

	// после logout токен отозван
	if _, err := svc.Refresh(ctx, pair.Refresh); !errors.Is(err, ports.ErrInvalidToken) {
		t.Fatalf("refresh after logout: got err %v", err)
	}
	if err := svc.Logout(ctx, pair.Refresh); !errors.Is(err, ports.ErrInvalidToken) {
		t.Fatalf("double logout: got err %v", err)
	}
}

func TestTokenKindsNotInterchangeable(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "password123"); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	pair, err := svc.Login(ctx, "alice", "password123")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}

	if _, err := svc.ValidateAccess(ctx, pair.Refresh); !errors.Is(err, ports.ErrInvalidToken) {
		t.Fatalf("refresh as access: got err %v", err)
	}
	if _, err := svc.Refresh(ctx, pair.Access); !errors.Is(err, ports.ErrInvalidToken) {
		t.Fatalf("access as refresh: got err %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestAuth()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "alice", "password123"); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	pair, err := svc.Login(ctx, "alice", "password123")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}

	for _, token := range []string{
		"garbage",
		pair.Access + "x",
		strings.Replace(pair.Access, ".", "x", 1),
	} {
		if _, err := svc.ValidateAccess(ctx, token); !errors.Is(err, ports.ErrInvalidToken) {
			t.Fatalf("token %q: got err %v", token, err)
		}
	}
}
