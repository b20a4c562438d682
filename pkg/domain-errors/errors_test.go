package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHasCode(t *testing.T) {
	err := New(CodeConflict, "username taken")
	if !HasCode(err, CodeConflict) {
		t.Fatalf("expected CodeConflict on %v", err)
	}
	if HasCode(err, CodeNotFound) {
		t.Fatalf("did not expect CodeNotFound on %v", err)
	}
	if HasCode(errors.New("plain"), CodeConflict) {
		t.Fatalf("plain errors must carry no code")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("store blew up")
	err := Wrap(cause, CodeInternal, "failed to create principal")

	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to survive errors.Is")
	}
	if !HasCode(err, CodeInternal) {
		t.Fatalf("expected CodeInternal, got %v", CodeOf(err))
	}

	// Codes survive another layer of plain wrapping too.
	outer := fmt.Errorf("handler: %w", err)
	if !HasCode(outer, CodeInternal) {
		t.Fatalf("expected code to survive fmt wrapping")
	}
}

func TestCodeOfDefaultsToInternal(t *testing.T) {
	if got := CodeOf(errors.New("boom")); got != CodeInternal {
		t.Fatalf("expected CodeInternal for non-domain error, got %q", got)
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Code]int{
		CodeBadRequest:   http.StatusBadRequest,
		CodeValidation:   http.StatusBadRequest,
		CodeConflict:     http.StatusConflict,
		CodeNotFound:     http.StatusNotFound,
		CodeUnauthorized: http.StatusUnauthorized,
		CodeForbidden:    http.StatusForbidden,
		CodeInternal:     http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := HTTPStatus(code); got != want {
			t.Errorf("HTTPStatus(%q) = %d, want %d", code, got, want)
		}
	}
}
