package jwt_test

import (
	"testing"
	"time"

	"skylark-ops/internal/jwt"
)

func TestGenerateAndValidate_RoundTrip(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken("ops-lead", "coordinator")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Sub != "ops-lead" || claims.Role != "coordinator" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidate_WrongSecretRejected(t *testing.T) {
	token, err := jwt.NewService("secret-a", time.Hour).GenerateToken("ops-lead", "viewer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := jwt.NewService("secret-b", time.Hour).ValidateToken(token); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}

func TestValidate_ExpiredRejected(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Minute)
	token, err := svc.GenerateToken("ops-lead", "viewer")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.ValidateToken(token); err == nil {
		t.Fatal("expired token must be rejected")
	}
}

func TestValidate_GarbageRejected(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)
	if _, err := svc.ValidateToken("not-a-token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}
}
