package auth

import (
	"context"
	"log"
	"strings"

	"github.com/user/visiontest-go/apperror"
)

// UserRepository is the slice of the user store the resolver needs.
// GetUserByEmail returns (nil, nil) when no user has that email.
// CreateUser returns the existing user when the email is already registered.
type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, email, name string) (*User, error)
}

// Principal is the outcome of a successful authentication: what the provider
// knows about the caller and the matching local user.
type Principal struct {
	Identity *Identity
	User     *User
}

// Resolver maps an `Authorization` header to a Principal, auto-provisioning the
// local user on first sight.
type Resolver struct {
	provider IdentityProvider
	users    UserRepository
}

// NewResolver creates a new Resolver.
func NewResolver(provider IdentityProvider, users UserRepository) *Resolver {
	return &Resolver{provider: provider, users: users}
}

// BearerToken extracts the token from an `Authorization: Bearer <token>` header value.
// The scheme is matched literally, followed by exactly one space.
func BearerToken(header string) (string, bool) {
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// ResolveIdentity authenticates the caller.
//
//  1. The header must be `Bearer <token>`.
//  2. The provider must accept the token.
//  3. The provider must report an identity with an email.
//  4. The local user is looked up by that email and created if absent, named after
//     `user_metadata.full_name` (or "User"). An existing user's name is never changed.
//
// Header and token problems are AuthErrors; store failures pass through unchanged.
func (r *Resolver) ResolveIdentity(ctx context.Context, authorizationHeader string) (*Principal, error) {
	token, ok := BearerToken(authorizationHeader)
	if !ok {
		return nil, apperror.NewAuthError("Missing Authorization", nil)
	}

	identity, err := r.provider.VerifyToken(ctx, token)
	if err != nil {
		log.Printf("auth: token verification failed: %v", err)
		return nil, apperror.NewAuthError("Invalid token", err)
	}
	if identity == nil || identity.Email == "" {
		return nil, apperror.NewAuthError("Invalid user", nil)
	}

	user, err := r.users.GetUserByEmail(ctx, identity.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = r.users.CreateUser(ctx, identity.Email, identity.DisplayName())
		if err != nil {
			return nil, err
		}
	}

	return &Principal{Identity: identity, User: user}, nil
}
