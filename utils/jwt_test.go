package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("user-1", "ravi@example.com", false, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	principal, err := PrincipalFromToken(token)
	if err != nil {
		t.Fatalf("PrincipalFromToken failed: %v", err)
	}
	if principal.ID != "user-1" {
		t.Fatalf("expected subject user-1, got %q", principal.ID)
	}
	if principal.Admin {
		t.Fatal("admin claim should be false")
	}
}

func TestTokenCarriesAdminClaim(t *testing.T) {
	token, err := GenerateToken("admin-1", "admin@example.com", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	principal, err := PrincipalFromToken(token)
	if err != nil {
		t.Fatalf("PrincipalFromToken failed: %v", err)
	}
	if !principal.Admin {
		t.Fatal("admin claim was dropped")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := GenerateToken("user-1", "ravi@example.com", false, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := PrincipalFromToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	if _, err := PrincipalFromToken("not-a-token"); err == nil {
		t.Fatal("expected parse failure")
	}
}
