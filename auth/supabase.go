package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	// `jwt` is only used to check the token's shape before spending a network round trip.
	// The signature is verified by Supabase, never locally.
	"github.com/golang-jwt/jwt/v5"

	"github.com/user/visiontest-go/config"
)

// maxIdentityBody caps how much of the provider response is read.
const maxIdentityBody = 1 << 20

// SupabaseProvider verifies access tokens against the Supabase Auth (GoTrue) API.
// Every call goes to the provider; results are not cached.
type SupabaseProvider struct {
	userURL string
	apiKey  string
	client  *http.Client
	parser  *jwt.Parser
}

// NewSupabaseProvider creates a provider for the given project. A nil client means
// http.DefaultClient.
func NewSupabaseProvider(cfg config.SupabaseConfig, client *http.Client) *SupabaseProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &SupabaseProvider{
		userURL: strings.TrimRight(cfg.URL, "/") + "/auth/v1/user",
		apiKey:  cfg.ServiceKey,
		client:  client,
		parser:  jwt.NewParser(),
	}
}

// VerifyToken calls `GET /auth/v1/user` with the caller's token and decodes the user.
func (p *SupabaseProvider) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	// Anything that is not even a JWT cannot be a Supabase access token.
	if _, _, err := p.parser.ParseUnverified(token, &jwt.RegisteredClaims{}); err != nil {
		return nil, fmt.Errorf("%w: malformed token: %v", ErrTokenRejected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build identity request: %w", err)
	}
	req.Header.Set("apikey", p.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxIdentityBody))
	if err != nil {
		return nil, fmt.Errorf("read identity response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrTokenRejected, resp.StatusCode, providerMessage(body))
	}

	var identity Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("decode identity response: %w", err)
	}
	identity.Raw = json.RawMessage(body)
	return &identity, nil
}

// providerMessage pulls the human readable part out of a GoTrue error body.
func providerMessage(body []byte) string {
	var e struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorDescription string `json:"error_description"`
	}
	if json.Unmarshal(body, &e) == nil {
		for _, m := range []string{e.Msg, e.Message, e.ErrorDescription} {
			if m != "" {
				return m
			}
		}
	}
	return strings.TrimSpace(string(body))
}
