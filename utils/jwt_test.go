// file: utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/gabimolocea/frvv-admin/config"
	"github.com/gabimolocea/frvv-admin/models"
)

func setTestSecret(t *testing.T, secret string) {
	t.Helper()
	old := config.C
	config.C = &config.Config{JWTSecret: secret}
	t.Cleanup(func() { config.C = old })
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestSecret(t, "unit-test-secret")

	user := models.User{
		ID:       42,
		Username: "gmolocea",
		Role:     models.RoleAdmin,
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != 42 {
		t.Fatalf("user id = %d, want 42", claims.UserID)
	}
	if claims.Username != "gmolocea" {
		t.Fatalf("username = %q", claims.Username)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", claims.Role)
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	setTestSecret(t, "unit-test-secret")

	token, err := GenerateToken(models.User{ID: 1, Username: "staff", Role: models.RoleStaff})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := ParseToken(token + "x"); err == nil {
		t.Fatal("tampered token must not parse")
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	setTestSecret(t, "secret-one")
	token, err := GenerateToken(models.User{ID: 1, Username: "staff", Role: models.RoleStaff})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	setTestSecret(t, "secret-two")
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with a different secret must not parse")
	}
}
