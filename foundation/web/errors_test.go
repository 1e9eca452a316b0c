package web

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestValidateRequired(t *testing.T) {
	type request struct {
		Email    *string
		Password string
		Age      *int
	}

	email := "a@b.c"

	if err := ValidateRequired(&request{Email: &email, Password: "x"}, "Email", "Password"); err != nil {
		t.Errorf("ValidateRequired() unexpected error: %v", err)
	}

	err := ValidateRequired(&request{}, "Email", "Password")
	if err == nil {
		t.Fatal("ValidateRequired() expected error for missing fields")
	}

	webErr, ok := IsRequestError(err)
	if !ok {
		t.Fatalf("expected a web error, got %T", err)
	}
	if webErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", webErr.Status, http.StatusBadRequest)
	}
	if len(webErr.Fields) != 2 {
		t.Errorf("fields = %v, want entries for Email and Password", webErr.Fields)
	}

	if err := ValidateRequired(&request{}, "Missing"); err == nil {
		t.Error("ValidateRequired() expected error for unknown field")
	}
}

func TestIsRequestError(t *testing.T) {
	inner := NewRequestError(errors.New("boom"), http.StatusNotFound)
	wrapped := errors.Wrap(inner, "outer")

	webErr, ok := IsRequestError(wrapped)
	if !ok {
		t.Fatal("IsRequestError() did not find the wrapped web error")
	}
	if webErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want %d", webErr.Status, http.StatusNotFound)
	}

	if _, ok := IsRequestError(errors.New("plain")); ok {
		t.Error("IsRequestError() matched a plain error")
	}
}
