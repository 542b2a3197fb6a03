package middleware

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	tokenStr, err := GenerateToken(42, "dispatcher")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := ValidateToken(tokenStr)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !token.Valid {
		t.Fatalf("expected token to be valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("expected MapClaims, got %T", token.Claims)
	}
	if claims["role"] != "dispatcher" {
		t.Fatalf("expected role dispatcher, got %v", claims["role"])
	}
	if uint(claims["user_id"].(float64)) != 42 {
		t.Fatalf("expected user_id 42, got %v", claims["user_id"])
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected garbage token to fail validation")
	}
}

func TestSetSecretTakesEffect(t *testing.T) {
	old := secret
	defer func() { secret = old }()

	before, err := GenerateToken(7, "manager")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	SetSecret("configured-secret")
	if token, err := ValidateToken(before); err == nil && token.Valid {
		t.Fatalf("token signed with old secret still validates")
	}
	after, err := GenerateToken(7, "manager")
	if err != nil {
		t.Fatalf("GenerateToken after SetSecret: %v", err)
	}
	token, err := ValidateToken(after)
	if err != nil || !token.Valid {
		t.Fatalf("token signed with configured secret rejected: %v", err)
	}

	// Empty config must not wipe the key.
	SetSecret("")
	if token, err := ValidateToken(after); err != nil || !token.Valid {
		t.Fatalf("SetSecret(\"\") replaced the key: %v", err)
	}
}
