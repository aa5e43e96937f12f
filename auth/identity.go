package auth

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// ErrTokenRejected is returned by an IdentityProvider when the token is not accepted.
var ErrTokenRejected = errors.New("token rejected by identity provider")

// DefaultDisplayName is used when the provider has no `full_name` for the user.
const DefaultDisplayName = "User"

// Identity is the user record as reported by the identity provider.
// It contains facts only; mapping to a local user is the Resolver's job.
type Identity struct {
	ID               string         `json:"id" example:"8d0fd2b3-9ca7-4c2a-8d5b-7a3a52a0c1f1"`
	Aud              string         `json:"aud,omitempty" example:"authenticated"`
	Role             string         `json:"role,omitempty" example:"authenticated"`
	Email            string         `json:"email" example:"ada@example.com"`
	Phone            string         `json:"phone,omitempty"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at,omitempty"`
	ConfirmedAt      *time.Time     `json:"confirmed_at,omitempty"`
	LastSignInAt     *time.Time     `json:"last_sign_in_at,omitempty"`
	AppMetadata      map[string]any `json:"app_metadata,omitempty"`
	UserMetadata     map[string]any `json:"user_metadata,omitempty"`
	CreatedAt        *time.Time     `json:"created_at,omitempty"`
	UpdatedAt        *time.Time     `json:"updated_at,omitempty"`

	// Raw is the provider's user document as received. When present it is what the
	// identity serializes to, so attributes without a typed field are kept.
	Raw json.RawMessage `json:"-" swaggerignore:"true"`
}

// MarshalJSON writes Raw when the identity came from the provider, and the typed
// fields otherwise.
func (i *Identity) MarshalJSON() ([]byte, error) {
	if len(i.Raw) > 0 {
		return i.Raw, nil
	}
	type typed Identity
	return json.Marshal((*typed)(i))
}

// DisplayName returns `user_metadata.full_name`, or DefaultDisplayName when it is
// missing, blank, or not a string.
func (i *Identity) DisplayName() string {
	if name, ok := i.UserMetadata["full_name"].(string); ok && strings.TrimSpace(name) != "" {
		return name
	}
	return DefaultDisplayName
}

// IdentityProvider verifies a bearer token and returns the identity behind it.
// Implementations return an error wrapping ErrTokenRejected when the provider says no.
type IdentityProvider interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}
