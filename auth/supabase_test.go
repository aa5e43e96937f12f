package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/user/visiontest-go/config"
)

func newSupabaseServer(t *testing.T, validToken string) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.URL.Path != "/auth/v1/user" || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("apikey") != "service-key" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
			return
		}
		if r.Header.Get("Authorization") != "Bearer "+validToken {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"code":403,"error_code":"bad_jwt","msg":"invalid JWT"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "8d0fd2b3-9ca7-4c2a-8d5b-7a3a52a0c1f1",
			"aud": "authenticated",
			"role": "authenticated",
			"email": "ada@example.com",
			"email_confirmed_at": "2024-05-01T10:00:00.123456Z",
			"app_metadata": {"provider": "email"},
			"user_metadata": {"full_name": "Ada Lovelace"},
			"created_at": "2024-05-01T09:59:00Z",
			"is_anonymous": false,
			"identities": [{"provider": "email", "identity_id": "a1"}]
		}`))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestSupabaseVerifyToken(t *testing.T) {
	token := signedToken(t, "ada")
	srv, _ := newSupabaseServer(t, token)
	p := NewSupabaseProvider(config.SupabaseConfig{URL: srv.URL + "/", ServiceKey: "service-key"}, srv.Client())

	id, err := p.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if id.Email != "ada@example.com" || id.Role != "authenticated" {
		t.Fatalf("identity = %+v", id)
	}
	if id.DisplayName() != "Ada Lovelace" {
		t.Fatalf("DisplayName = %q", id.DisplayName())
	}
	if id.EmailConfirmedAt == nil || id.EmailConfirmedAt.Year() != 2024 {
		t.Fatalf("EmailConfirmedAt = %v", id.EmailConfirmedAt)
	}

	// Attributes without a typed field are kept for /me.
	out, err := json.Marshal(id)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := doc["identities"]; !ok {
		t.Fatalf("identities dropped: %s", out)
	}
	if v, ok := doc["is_anonymous"]; !ok || v != false {
		t.Fatalf("is_anonymous = %v (present %v)", v, ok)
	}
}

func TestSupabaseRejectedToken(t *testing.T) {
	good := signedToken(t, "ada")
	srv, _ := newSupabaseServer(t, good)
	p := NewSupabaseProvider(config.SupabaseConfig{URL: srv.URL, ServiceKey: "service-key"}, srv.Client())

	_, err := p.VerifyToken(context.Background(), signedToken(t, "mallory"))
	if !errors.Is(err, ErrTokenRejected) {
		t.Fatalf("expected ErrTokenRejected, got %v", err)
	}
}

func TestSupabaseMalformedTokenSkipsNetwork(t *testing.T) {
	srv, calls := newSupabaseServer(t, "unused")
	p := NewSupabaseProvider(config.SupabaseConfig{URL: srv.URL, ServiceKey: "service-key"}, srv.Client())

	_, err := p.VerifyToken(context.Background(), "garbage")
	if !errors.Is(err, ErrTokenRejected) {
		t.Fatalf("expected ErrTokenRejected, got %v", err)
	}
	if *calls != 0 {
		t.Fatalf("provider was called %d times", *calls)
	}
}

func TestSupabaseUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	p := NewSupabaseProvider(config.SupabaseConfig{URL: url, ServiceKey: "k"}, nil)
	_, err := p.VerifyToken(context.Background(), signedToken(t, "ada"))
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrTokenRejected) {
		t.Fatal("transport failures are not rejections")
	}
}

func TestProviderMessage(t *testing.T) {
	cases := map[string]string{
		`{"msg":"invalid JWT"}`:                 "invalid JWT",
		`{"message":"Invalid API key"}`:         "Invalid API key",
		`{"error_description":"token expired"}`: "token expired",
		"  upstream unavailable \n":             "upstream unavailable",
	}
	for body, want := range cases {
		if got := providerMessage([]byte(body)); got != want {
			t.Errorf("providerMessage(%q) = %q, want %q", body, got, want)
		}
	}
}
