package auth

import (
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestHMACStrategyIssueAndParse(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(42, "admin")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	session, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if session.AdminID != 42 {
		t.Fatalf("expected admin id 42, got %d", session.AdminID)
	}
	if session.Role != "admin" {
		t.Fatalf("expected role admin, got %q", session.Role)
	}
}

func TestHMACStrategyRejectsTamperedToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	token, err := strategy.IssueToken(1, "admin")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(token)
	tampered := strings.Replace(string(raw), "1:admin", "2:admin", 1)
	forged := base64.StdEncoding.EncodeToString([]byte(tampered))

	if _, err := strategy.ParseToken(forged); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyRejectsExpiredToken(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: time.Hour})

	payload := fmt.Sprintf("1:admin:%d", time.Now().Add(-time.Minute).Unix())
	token := base64.StdEncoding.EncodeToString([]byte(payload + ":" + strategy.sign(payload)))

	if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyNormalizesNonPositiveTTL(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{TTL: -time.Minute})

	token, err := strategy.IssueToken(1, "admin")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	session, err := strategy.ParseToken(token)
	if err != nil {
		t.Fatalf("expected token issued with fallback ttl to verify, got %v", err)
	}
	if session.AdminID != 1 {
		t.Fatalf("unexpected session %+v", session)
	}
}

func TestHMACStrategyRejectsGarbage(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})

	cases := []string{
		"",
		"not-base64!!!",
		base64.StdEncoding.EncodeToString([]byte("too:few")),
		base64.StdEncoding.EncodeToString([]byte(fmt.Sprintf("abc:admin:%d:sig", time.Now().Add(time.Hour).Unix()))),
	}
	for _, token := range cases {
		if _, err := strategy.ParseToken(token); err != ErrInvalidToken {
			t.Fatalf("expected invalid token error for %q, got %v", token, err)
		}
	}
}

func TestHMACStrategyRejectsRoleWithSeparator(t *testing.T) {
	strategy := NewHMACStrategy("secret", Options{})
	if _, err := strategy.IssueToken(1, "ad:min"); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyDifferentSecretsDoNotVerify(t *testing.T) {
	issuer := NewHMACStrategy("secret-a", Options{TTL: time.Hour})
	verifier := NewHMACStrategy("secret-b", Options{TTL: time.Hour})

	token, err := issuer.IssueToken(7, "admin")
	if err != nil {
		t.Fatalf("issue token failed: %v", err)
	}

	if _, err := verifier.ParseToken(token); err != ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestHMACStrategyName(t *testing.T) {
	if name := NewHMACStrategy("x", Options{}).Name(); name != "hmac" {
		t.Fatalf("unexpected strategy name %q", name)
	}
}
