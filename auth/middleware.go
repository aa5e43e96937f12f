// Package auth, as part of the authentication module.
// This file, `middleware.go`, defines the HTTP middleware that guards authenticated routes.
package auth

import (
	"net/http"
)

// RequireAuth creates the bearer authentication middleware.
// It resolves the caller through the Resolver and stores the Principal in the request
// context. Any failure ends the request: AuthErrors become 401, store failures 500.
// The returned middleware conforms to the standard `func(next http.Handler) http.Handler` pattern
// so it can be mounted with chi's `r.Use`.
func RequireAuth(resolver *Resolver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := resolver.ResolveIdentity(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				WriteError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(NewContextWithPrincipal(r.Context(), principal)))
		})
	}
}
