package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/user/visiontest-go/apperror"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"Bearer eyJhbGciOi.eyJzdWIi.c2ln", "eyJhbGciOi.eyJzdWIi.c2ln", true},
		{"bearer abc", "", false},
		{"BEARER abc", "", false},
		{"Bearer   abc", "", false},
		{"Bearer\tabc", "", false},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"Bearer a b", "", false},
		{"abc", "", false},
	}
	for _, tc := range cases {
		token, ok := BearerToken(tc.header)
		if token != tc.token || ok != tc.ok {
			t.Errorf("BearerToken(%q) = (%q, %v), want (%q, %v)", tc.header, token, ok, tc.token, tc.ok)
		}
	}
}

func TestResolveIdentityMissingHeader(t *testing.T) {
	provider := &fakeProvider{}
	r := NewResolver(provider, newMemoryUsers())

	for _, header := range []string{"", "Token abc", "Bearer", "Bearer ", "bearer abc"} {
		_, err := r.ResolveIdentity(context.Background(), header)
		if !apperror.IsAuthError(err) {
			t.Fatalf("%q: expected AuthError, got %v", header, err)
		}
	}
	if provider.calls != 0 {
		t.Fatalf("provider called %d times for malformed headers", provider.calls)
	}
}

func TestResolveIdentityRejectedToken(t *testing.T) {
	r := NewResolver(&fakeProvider{}, newMemoryUsers())

	_, err := r.ResolveIdentity(context.Background(), "Bearer garbage")
	if !apperror.IsAuthError(err) {
		t.Fatalf("expected AuthError, got %v", err)
	}
	ae, _ := apperror.FromError(err)
	if ae.Message != "Invalid token" {
		t.Fatalf("Message = %q", ae.Message)
	}
}

func TestResolveIdentityProviderFailure(t *testing.T) {
	r := NewResolver(&fakeProvider{err: errBoom}, newMemoryUsers())

	_, err := r.ResolveIdentity(context.Background(), "Bearer anything")
	if !apperror.IsAuthError(err) {
		t.Fatalf("provider errors must surface as AuthError, got %v", err)
	}
}

func TestResolveIdentityEmptyIdentity(t *testing.T) {
	provider := &fakeProvider{identities: map[string]*Identity{
		"nil":     nil,
		"noemail": {ID: "u-1"},
	}}
	r := NewResolver(provider, newMemoryUsers())

	for _, token := range []string{"nil", "noemail"} {
		_, err := r.ResolveIdentity(context.Background(), "Bearer "+token)
		if !apperror.IsAuthError(err) {
			t.Fatalf("%s: expected AuthError, got %v", token, err)
		}
	}
}

func TestResolveIdentityProvisionsUser(t *testing.T) {
	provider := &fakeProvider{identities: map[string]*Identity{
		"t1": {ID: "u-1", Email: "ada@example.com", UserMetadata: map[string]any{"full_name": "Ada Lovelace"}},
	}}
	users := newMemoryUsers()
	r := NewResolver(provider, users)

	p, err := r.ResolveIdentity(context.Background(), "Bearer t1")
	if err != nil {
		t.Fatalf("ResolveIdentity: %v", err)
	}
	if p.User.Email != "ada@example.com" || p.User.FullName != "Ada Lovelace" {
		t.Fatalf("User = %+v", p.User)
	}
	if p.Identity.ID != "u-1" {
		t.Fatalf("Identity = %+v", p.Identity)
	}

	again, err := r.ResolveIdentity(context.Background(), "Bearer t1")
	if err != nil {
		t.Fatalf("ResolveIdentity (again): %v", err)
	}
	if again.User.ID != p.User.ID {
		t.Fatalf("second resolve created a new user: %d != %d", again.User.ID, p.User.ID)
	}
	if users.creates != 1 {
		t.Fatalf("CreateUser called %d times, want 1", users.creates)
	}
	if provider.calls != 2 {
		t.Fatalf("provider called %d times; verification must not be cached", provider.calls)
	}
}

func TestResolveIdentityDefaultName(t *testing.T) {
	provider := &fakeProvider{identities: map[string]*Identity{
		"t1": {ID: "u-1", Email: "anon@example.com"},
		"t2": {ID: "u-2", Email: "blank@example.com", UserMetadata: map[string]any{"full_name": ""}},
		"t3": {ID: "u-3", Email: "num@example.com", UserMetadata: map[string]any{"full_name": 42}},
	}}
	r := NewResolver(provider, newMemoryUsers())

	for _, token := range []string{"t1", "t2", "t3"} {
		p, err := r.ResolveIdentity(context.Background(), "Bearer "+token)
		if err != nil {
			t.Fatalf("%s: %v", token, err)
		}
		if p.User.FullName != DefaultDisplayName {
			t.Fatalf("%s: FullName = %q, want %q", token, p.User.FullName, DefaultDisplayName)
		}
	}
}

func TestResolveIdentityKeepsExistingName(t *testing.T) {
	users := newMemoryUsers()
	existing, _ := users.CreateUser(context.Background(), "ada@example.com", "User")
	provider := &fakeProvider{identities: map[string]*Identity{
		"t1": {ID: "u-1", Email: "ada@example.com", UserMetadata: map[string]any{"full_name": "Ada Lovelace"}},
	}}
	r := NewResolver(provider, users)

	p, err := r.ResolveIdentity(context.Background(), "Bearer t1")
	if err != nil {
		t.Fatalf("ResolveIdentity: %v", err)
	}
	if p.User.ID != existing.ID || p.User.FullName != "User" {
		t.Fatalf("existing user was modified: %+v", p.User)
	}
}

func TestResolveIdentityStoreFailure(t *testing.T) {
	provider := &fakeProvider{identities: map[string]*Identity{"t1": {ID: "u-1", Email: "ada@example.com"}}}
	users := newMemoryUsers()
	users.getErr = apperror.NewDatabaseError("failed to get user", errBoom)
	r := NewResolver(provider, users)

	_, err := r.ResolveIdentity(context.Background(), "Bearer t1")
	if !apperror.IsDatabaseError(err) {
		t.Fatalf("expected DatabaseError, got %v", err)
	}
	if !errors.Is(err, errBoom) {
		t.Fatal("cause lost")
	}
}
