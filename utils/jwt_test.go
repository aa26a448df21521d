package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/blogts/blogapi/utils"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndParseToken(t *testing.T) {
	token, err := utils.GenerateToken("admin@blogts.com", []string{"Reader", "Writer"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := utils.ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Email != "admin@blogts.com" {
		t.Fatalf("expected email claim, got %s", claims.Email)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "Reader" || claims.Roles[1] != "Writer" {
		t.Fatalf("expected exactly {Reader, Writer}, got %v", claims.Roles)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	token, err := utils.GenerateToken("a@b.com", []string{"Reader"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := utils.ParseToken(token, "some-other-secret"); err == nil {
		t.Fatal("expected parse to fail with wrong secret")
	}
}

func TestParseToken_TamperedSignature(t *testing.T) {
	token, err := utils.GenerateToken("a@b.com", []string{"Reader"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %s", token)
	}
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	if _, err := utils.ParseToken(tampered, testSecret); err == nil {
		t.Fatal("expected parse to fail on tampered signature")
	}
}

func TestParseToken_Expired(t *testing.T) {
	token, err := utils.GenerateToken("a@b.com", []string{"Reader"}, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := utils.ParseToken(token, testSecret); err == nil {
		t.Fatal("expected parse to fail on expired token")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	if _, err := utils.ParseToken("not-a-token", testSecret); err == nil {
		t.Fatal("expected parse to fail on malformed token")
	}
}

func TestClaims_HasRole(t *testing.T) {
	token, err := utils.GenerateToken("a@b.com", []string{"Reader"}, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	claims, err := utils.ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if !claims.HasRole("Reader") {
		t.Fatal("expected Reader role")
	}
	if claims.HasRole("Writer") {
		t.Fatal("did not expect Writer role")
	}
}
