package auth

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T) *JWTManager {
	t.Helper()
	m, err := NewJWTManager("0123456789abcdef", "envirohealth", "platform", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestJWTRoundTrip(t *testing.T) {
	m := newTestManager(t)
	userID := uuid.New()

	token, err := m.IssueToken(userID, "member", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := m.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != userID || claims.Role != "member" {
		t.Fatalf("claims lost: %+v", claims)
	}
	if claims.Issuer != "envirohealth" || claims.Audience != "platform" {
		t.Fatalf("issuer/audience lost: %+v", claims)
	}
}

func TestJWTRejectsTamperedPayload(t *testing.T) {
	m := newTestManager(t)
	token, err := m.IssueToken(uuid.New(), "member", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(token, ".")
	tampered, err := encodeSegment(map[string]string{"role": "admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts[1] = tampered

	if _, err := m.ValidateToken(context.Background(), strings.Join(parts, ".")); err == nil {
		t.Fatal("expected a signature error")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	m := newTestManager(t)
	m.nowFunc = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := m.IssueToken(uuid.New(), "member", "user@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.nowFunc = time.Now
	if _, err := m.ValidateToken(context.Background(), token); err == nil {
		t.Fatal("expected an expiry error")
	}
}

func TestJWTRejectsShortSecret(t *testing.T) {
	if _, err := NewJWTManager("short", "iss", "aud", time.Hour); err == nil {
		t.Fatal("expected an error for a short secret")
	}
}
