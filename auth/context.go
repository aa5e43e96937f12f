// Package auth, as part of the authentication module.
// This file, `context.go`, carries the authenticated Principal through the request's
// `context.Context` from the middleware to the handlers.
package auth

import (
	"context"
)

// `contextKey` is a custom type for context keys. Using a custom type prevents collisions
// with context keys defined in other packages.
type contextKey string

const (
	principalContextKey contextKey = "auth_principal"
)

// NewContextWithPrincipal returns a child context carrying the principal.
func NewContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext extracts the Principal stored by RequireAuth.
// The bool is false when the request did not pass through the middleware.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok && p != nil && p.User != nil
}
