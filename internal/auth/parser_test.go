package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestParseValidToken(t *testing.T) {
	parser := NewParser("secret")
	token, err := parser.Sign(Claims{
		Email: "ana@firm.mx",
		Role:  "LEGAL",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}

	principal, err := parser.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if principal.Email != "ana@firm.mx" || principal.Role != "LEGAL" || principal.Subject != "42" {
		t.Errorf("unexpected principal %+v", principal)
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	parser := NewParser("secret")
	expired, _ := parser.Sign(Claims{
		Email:            "ana@firm.mx",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))},
	})
	foreign, _ := NewParser("other").Sign(Claims{Email: "ana@firm.mx"})
	noEmail, _ := parser.Sign(Claims{Role: "ADMIN"})

	for name, token := range map[string]string{
		"expired":  expired,
		"foreign":  foreign,
		"no email": noEmail,
		"garbage":  "not-a-token",
		"empty":    "",
	} {
		if _, err := parser.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
