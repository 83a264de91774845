package utils_test

import (
	"testing"
	"time"

	"github.com/mdtoufiquea/Smart-dine-server/utils"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateTokenRoundTrip(t *testing.T) {
	secret := "test-secret"

	tokenStr, err := utils.GenerateToken(42, "admin", secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims := &utils.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 || claims.Role != "admin" {
		t.Errorf("claims = (%d, %q), want (42, admin)", claims.UserID, claims.Role)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tokenStr, err := utils.GenerateToken(1, "customer", "right", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	claims := &utils.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (any, error) {
		return []byte("wrong"), nil
	})
	if err == nil && token.Valid {
		t.Error("token validated with the wrong secret")
	}
}
