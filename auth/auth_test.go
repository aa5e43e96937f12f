package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signedToken returns a syntactically valid JWT. Its signature means nothing to the
// fake providers; it only has to survive the unverified pre-parse.
func signedToken(t *testing.T, subject string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// fakeProvider answers VerifyToken from a fixed table.
type fakeProvider struct {
	identities map[string]*Identity
	err        error
	calls      int
}

func (p *fakeProvider) VerifyToken(_ context.Context, token string) (*Identity, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	id, ok := p.identities[token]
	if !ok {
		return nil, ErrTokenRejected
	}
	return id, nil
}

// memoryUsers is an in-memory UserRepository with create-or-fetch semantics.
type memoryUsers struct {
	mu      sync.Mutex
	byEmail map[string]*User
	nextID  int
	getErr  error
	creates int
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{byEmail: map[string]*User{}, nextID: 1}
}

func (m *memoryUsers) GetUserByEmail(_ context.Context, email string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.byEmail[email], nil
}

func (m *memoryUsers) CreateUser(_ context.Context, email, name string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.creates++
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	u := &User{ID: m.nextID, Email: email, FullName: name}
	m.nextID++
	m.byEmail[email] = u
	return u, nil
}

var errBoom = errors.New("boom")
