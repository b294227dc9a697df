package auth

import (
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)

	token, err := issuer.Issue(42, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	userID, claims, err := issuer.Parse(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if userID != 42 {
		t.Errorf("expected user id 42, got %d", userID)
	}
	if claims.Email != "a@example.com" {
		t.Errorf("expected email claim, got %s", claims.Email)
	}
}

func TestParse_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, -time.Minute)

	token, err := issuer.Issue(1, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := issuer.Parse(token); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParse_RejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	other := NewTokenIssuer("ffffffffffffffffffffffffffffffff", time.Hour)

	token, err := issuer.Issue(1, "a@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := other.Parse(token); err == nil {
		t.Error("expected error for token signed with a different secret")
	}
}

func TestParse_RejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer(testSecret, time.Hour)
	if _, _, err := issuer.Parse("not-a-token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "hunter22" {
		t.Error("hash must not equal the plaintext")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("expected wrong password to fail")
	}
}
