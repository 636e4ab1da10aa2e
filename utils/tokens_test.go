package utils

import (
	"strings"
	"testing"
	"time"
)

func TestManagerRoundTrip(t *testing.T) {
	manager, err := NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	token, err := manager.NewJWT(42, "user", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("failed to parse token: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "user" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestManagerRejectsEmptyKey(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Fatal("expected error for empty signing key")
	}
}

func TestManagerRejectsForeignToken(t *testing.T) {
	issuer, _ := NewManager("key-one")
	verifier, _ := NewManager("key-two")

	token, err := issuer.NewJWT(1, "user", time.Hour)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	if _, err := verifier.Parse(token); err == nil {
		t.Fatal("expected parse failure for token signed with another key")
	}
}

func TestNewBookingReference(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		ref, err := NewBookingReference()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(ref, "RB-") || len(ref) != 11 {
			t.Fatalf("unexpected reference format: %q", ref)
		}
		seen[ref] = struct{}{}
	}
	if len(seen) < 2 {
		t.Fatal("references are not random")
	}
}
