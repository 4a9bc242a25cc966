package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"vet-clinic-api/internal/ports/auth"
)

type stubVerifier struct {
	token  string
	claims auth.Claims
}

func (v stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if token != v.token {
		return auth.Claims{}, errors.New("bad token")
	}
	return v.claims, nil
}

func captureClaims(t *testing.T, got *auth.Claims, ok *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got, *ok = GetClaims(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthContext_DevHeaderSetsClaims(t *testing.T) {
	var got auth.Claims
	var ok bool
	h := AuthContext(nil)(captureClaims(t, &got, &ok))

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("X-Debug-User-ID", "u-42")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !ok || got.UserID != "u-42" {
		t.Fatalf("expected claims for u-42, got ok=%v claims=%+v", ok, got)
	}
}

func TestAuthContext_NoIdentityStaysAnonymous(t *testing.T) {
	var got auth.Claims
	var ok bool
	h := AuthContext(nil)(captureClaims(t, &got, &ok))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/x", nil))

	if ok {
		t.Fatalf("expected anonymous request, got claims %+v", got)
	}
}

func TestAuthContext_VerifierModeResolvesBearerToken(t *testing.T) {
	verifier := stubVerifier{
		token:  "good-token",
		claims: auth.Claims{UserID: "u-1", Username: "ana"},
	}

	var got auth.Claims
	var ok bool
	h := AuthContext(verifier)(captureClaims(t, &got, &ok))

	req := httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !ok || got.Username != "ana" {
		t.Fatalf("expected claims for ana, got ok=%v claims=%+v", ok, got)
	}

	// Token inválido => anónimo, sin cortar el request
	ok = false
	req = httptest.NewRequest("GET", "/x", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if ok {
		t.Fatalf("expected anonymous for forged token, got claims %+v", got)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected handler to run for forged token, got %d", rec.Code)
	}
}

func TestRequestLogger_AttributesRequestToUser(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := AuthContext(nil)(RequestLogger(log)(next))

	req := httptest.NewRequest("GET", "/api/owners", nil)
	req.Header.Set("X-Debug-User-ID", "u-7")
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["user_id"] != "u-7" {
		t.Fatalf("expected user_id u-7 in log line, got %v", fields)
	}
	if fields["path"] != "/api/owners" {
		t.Fatalf("expected path field, got %v", fields)
	}
}

func TestRequestLogger_AnonymousRequestHasNoUserField(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := zap.New(core)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := AuthContext(nil)(RequestLogger(log)(next))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log line, got %d", len(entries))
	}
	if _, present := entries[0].ContextMap()["user_id"]; present {
		t.Fatalf("expected no user_id for anonymous request")
	}
}
