package auth

import (
	"testing"
	"time"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	username := "alice"

	tok, err := IssueToken(username, secret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	got, err := VerifyToken(tok, secret)
	if err != nil {
		t.Fatalf("VerifyToken error: %v", err)
	}
	if got != username {
		t.Fatalf("username mismatch: got %q want %q", got, username)
	}
}

func TestVerifyToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := IssueToken("alice", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := VerifyToken(tok, secret); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("bob", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := VerifyToken(tok, []byte("wrong-secret")); err == nil {
		t.Fatalf("expected error for invalid signature, got nil")
	}
}

func TestVerifyToken_MalformedString(t *testing.T) {
	t.Parallel()

	if _, err := VerifyToken("not.a.jwt", []byte("k")); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}

func TestVerifyToken_DistinctSecretsPerRun(t *testing.T) {
	t.Parallel()

	// Two processes with different secrets must not accept each other's
	// tokens.
	tokA, err := IssueToken("alice", []byte("secret-a"), time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}
	if _, err := VerifyToken(tokA, []byte("secret-b")); err == nil {
		t.Fatalf("token signed with secret-a verified under secret-b")
	}
}
