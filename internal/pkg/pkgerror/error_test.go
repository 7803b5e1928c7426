package pkgerror

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestTypeString(t *testing.T) {
	if got := TypeValidation.String(); got != "ERROR_TYPE_VALIDATION" {
		t.Fatalf("unexpected validation string: %q", got)
	}
	if got := TypeBusiness.String(); got != "ERROR_TYPE_BUSINESS" {
		t.Fatalf("unexpected business string: %q", got)
	}
	if got := Type(99).String(); got != "ERROR_TYPE_UNKNOWN" {
		t.Fatalf("unexpected unknown type string: %q", got)
	}
}

func TestCodeString(t *testing.T) {
	if got := CodeTimeout.String(); got != "ERROR_CODE_TIMEOUT" {
		t.Fatalf("unexpected timeout string: %q", got)
	}
	if got := CodeNotFound.String(); got != "ERROR_CODE_NOT_FOUND" {
		t.Fatalf("unexpected not found string: %q", got)
	}
	if got := Code(99).String(); got != "ERROR_CODE_INTERNAL" {
		t.Fatalf("unexpected default code string: %q", got)
	}
}

func TestServerError(t *testing.T) {
	root := errors.New("boom")
	err := NewServer(root)

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !errors.Is(err, root) {
		t.Fatalf("expected wrapped error")
	}
	if got := gerr.Msg(); got != "Internal server error" {
		t.Fatalf("unexpected msg: %q", got)
	}
	if got := gerr.Error(); got != "boom" {
		t.Fatalf("unexpected error string: %q", got)
	}
	if got := gerr.StatusCode(); got != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", got)
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NewBusiness("chart not found", CodeNotFound), http.StatusNotFound},
		{NewInvalidInput(errors.New("bad")), http.StatusUnprocessableEntity},
		{NewInvalidFormat(), http.StatusBadRequest},
		{NewTimeout(context.Canceled), http.StatusRequestTimeout},
	}

	for _, tc := range cases {
		var gerr *Error
		if !errors.As(tc.err, &gerr) {
			t.Fatalf("expected *Error, got %T", tc.err)
		}
		if got := gerr.StatusCode(); got != tc.want {
			t.Fatalf("%s: status %d, want %d", gerr.Code(), got, tc.want)
		}
	}
}

func TestInvalidField(t *testing.T) {
	err := NewInvalidField("section", "unknown section")

	var gerr *Error
	if !errors.As(err, &gerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	fields := gerr.Fields()
	if fields["section"] != "unknown section" {
		t.Fatalf("unexpected fields: %v", fields)
	}

	fields["section"] = "mutated"
	if gerr.Fields()["section"] != "unknown section" {
		t.Fatal("expected Fields to return a copy")
	}
	if gerr.Type() != TypeValidation {
		t.Fatalf("unexpected type: %v", gerr.Type())
	}
}

func TestErrorFallbackMessages(t *testing.T) {
	if got := new(nil, "", TypeValidation, CodeInternal).Error(); got != "Validation violation" {
		t.Fatalf("unexpected validation fallback: %q", got)
	}
	if got := new(nil, "", TypeBusiness, CodeInternal).Error(); got != "Logical business not meet with requirement" {
		t.Fatalf("unexpected business fallback: %q", got)
	}
	if got := new(nil, "", TypeServer, CodeInternal).Error(); got != "Internal error" {
		t.Fatalf("unexpected server fallback: %q", got)
	}
}

func TestErrorStringIncludesDetails(t *testing.T) {
	err := NewBusiness("message", CodeNotFound).(*Error)
	str := err.String()
	if !strings.Contains(str, "ERROR_TYPE_BUSINESS") {
		t.Fatalf("expected error type in string: %q", str)
	}
	if !strings.Contains(str, "ERROR_CODE_NOT_FOUND") {
		t.Fatalf("expected error code in string: %q", str)
	}
}
