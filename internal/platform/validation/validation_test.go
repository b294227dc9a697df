package validation

import (
	"errors"
	"testing"

	"github.com/carelink/carelink/pkg/apperr"
)

type patientInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Phone       *string `json:"phone" validate:"omitempty,min=10,max=20"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

func str(s string) *string { return &s }

func TestValidate_Passes(t *testing.T) {
	v := New()
	in := patientInput{Name: "Jane Doe", Email: str("jane@example.com"), DateOfBirth: str("1990-05-10")}
	if err := v.Validate(in); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_RequiredName(t *testing.T) {
	v := New()
	err := v.Validate(patientInput{})
	if err == nil {
		t.Fatal("expected error for missing name")
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if appErr.Kind != apperr.KindInvalid {
		t.Error("expected KindInvalid")
	}
	if len(appErr.Fields) != 1 || appErr.Fields[0].Field != "name" {
		t.Errorf("expected one failure on name, got %+v", appErr.Fields)
	}
	if appErr.Fields[0].Message != "Name is required" {
		t.Errorf("unexpected message %q", appErr.Fields[0].Message)
	}
}

func TestValidate_ShortName(t *testing.T) {
	v := New()
	err := v.Validate(patientInput{Name: "J"})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if appErr.Fields[0].Message != "Name must be at least 2 characters" {
		t.Errorf("unexpected message %q", appErr.Fields[0].Message)
	}
}

func TestValidate_BadEmail(t *testing.T) {
	v := New()
	err := v.Validate(patientInput{Name: "Jane", Email: str("not-an-email")})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if appErr.Fields[0].Field != "email" {
		t.Errorf("expected failure on email, got %+v", appErr.Fields)
	}
}

func TestValidate_BadDate(t *testing.T) {
	v := New()
	err := v.Validate(patientInput{Name: "Jane", DateOfBirth: str("10/05/1990")})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if appErr.Fields[0].Field != "date_of_birth" {
		t.Errorf("expected failure on date_of_birth, got %+v", appErr.Fields)
	}
}

func TestValidate_MultipleFailures(t *testing.T) {
	v := New()
	err := v.Validate(patientInput{Name: "J", Phone: str("123")})
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("expected apperr.Error, got %T", err)
	}
	if len(appErr.Fields) != 2 {
		t.Errorf("expected 2 failures, got %d", len(appErr.Fields))
	}
}
