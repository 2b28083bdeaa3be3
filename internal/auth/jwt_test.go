package auth

import (
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	userID := uuid.New().String()
	email := "test@example.com"

	token, err := GenerateToken(userID, email, "OWNER")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	extractedUserID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if extractedUserID != userID {
		t.Fatalf("expected userID %s, got %s", userID, extractedUserID)
	}
	if extractedEmail != email {
		t.Fatalf("expected email %s, got %s", email, extractedEmail)
	}
	if extractedRole != "OWNER" {
		t.Fatalf("expected role OWNER, got %s", extractedRole)
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "test@example.com", "OWNER"); err == nil {
		t.Fatalf("expected error for empty userID")
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := GenerateToken(uuid.New().String(), "test@example.com", "OWNER")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, _, _, err := ValidateToken(token + "x"); err == nil {
		t.Fatalf("expected error for tampered token")
	}
}
