package jwtauth

import (
	"context"
	"testing"
	"time"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue("user-1", "ana")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("issue: empty token")
	}

	claims, err := m.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "ana" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestManager_Validate_UsernameMismatch(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Issue("user-1", "ana")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if !m.Validate(token, "ana") {
		t.Fatal("expected token to validate for its own username")
	}
	if m.Validate(token, "bruno") {
		t.Fatal("expected token to fail for another username")
	}
}

func TestManager_Verify_RejectsOtherSecret(t *testing.T) {
	a := NewManager("secret-a", time.Hour)
	b := NewManager("secret-b", time.Hour)

	token, err := a.Issue("user-1", "ana")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := b.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verify to fail with a different secret")
	}
}

func TestManager_Verify_RejectsExpired(t *testing.T) {
	m := NewManager("test-secret", time.Minute)

	issuedAt := time.Date(2025, 12, 22, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue("user-1", "ana")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	m.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	if _, err := m.Verify(context.Background(), token); err == nil {
		t.Fatal("expected verify to fail after expiry")
	}
}

func TestManager_Verify_EmptyToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	if _, err := m.Verify(context.Background(), "  "); err == nil {
		t.Fatal("expected error for empty token")
	}
}
