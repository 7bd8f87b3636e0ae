package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

type sample struct {
	Name   string `json:"user_name" binding:"required,min=2"`
	PassID int    `json:"pass_id" binding:"required,gt=0"`
	Date   string `json:"booking_date" binding:"required,datetime=2006-01-02"`
}

func TestValidateReportsJSONFieldName(t *testing.T) {
	err := Validate(sample{Name: "Asha", Date: "2025-01-10"})
	var ve ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "pass_id" || ve.Msg != "is required" {
		t.Fatalf("unexpected error %q", ve.Error())
	}

	err = Validate(&sample{Name: "Asha", PassID: 2, Date: "10/01/2025"})
	if !errors.As(err, &ve) || ve.Field != "booking_date" {
		t.Fatalf("expected booking_date error, got %v", err)
	}

	if err := Validate(sample{Name: "Asha", PassID: 2, Date: "2025-01-10"}); err != nil {
		t.Fatalf("valid struct rejected: %v", err)
	}
}

func TestBindingErrorNamesFieldOrBody(t *testing.T) {
	var dst sample
	err := BindingError(&dst, binding.JSON.BindBody([]byte(`{"user_name":"Asha","booking_date":"2025-01-10"}`), &dst))
	var ve ValidationError
	if !errors.As(err, &ve) || ve.Field != "pass_id" {
		t.Fatalf("expected pass_id validation error, got %v", err)
	}

	err = BindingError(&dst, errors.New(`json: unknown field "admin"`))
	if !errors.As(err, &ve) || ve.Field != "body" {
		t.Fatalf("expected body validation error, got %v", err)
	}
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	base := errors.New("dial tcp: connection refused")
	cases := []struct {
		err   error
		check func(error) bool
	}{
		{ValidationError{Field: "address"}, IsValidation},
		{NotFoundError{Resource: "booking"}, IsNotFound},
		{StoreUnavailableError{Op: "insert", Err: base}, IsStoreUnavailable},
		{NetworkError{Err: base}, IsNetwork},
		{StateMissingError{Key: "passInfo"}, IsStateMissing},
	}
	for _, tc := range cases {
		wrapped := fmt.Errorf("outer: %w", tc.err)
		if !tc.check(wrapped) {
			t.Fatalf("%T not detected through wrapping", tc.err)
		}
	}
}

func TestStoreUnavailableHidesDriverText(t *testing.T) {
	err := StoreUnavailableError{Op: "insert", Err: errors.New("Error 1045: Access denied for user 'root'")}
	if err.Error() != "database insert failed" {
		t.Fatalf("leaked message %q", err.Error())
	}
}
