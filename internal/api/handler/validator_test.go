package handler

import (
	"strings"
	"testing"
)

func TestValidator_ReportsJSONFieldNames(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createCallRequest{
		Subject:  "Follow up",
		CallType: "outbound",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	msg := err.Error()
	for _, field := range []string{"callStartTime", "callDuration", "relatedTo", "contactName", "callOwner"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected %q in message, got %q", field, msg)
		}
	}
	if strings.Contains(msg, "CallStartTime") {
		t.Errorf("expected JSON names, not struct fields: %q", msg)
	}
}

func TestValidator_PasswordMinLength(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&signupRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "abc",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "password must be at least 6 characters") {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestValidator_ValidPayloadPasses(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createLeadRequest{
		Name:    "Jane",
		Company: "Acme",
		Email:   "jane@acme.com",
		Phone:   "555-0100",
		Source:  "web",
		Owner:   "sales",
	})
	if err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}
}
