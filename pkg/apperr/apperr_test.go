package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindOf(t *testing.T) {
	if KindOf(NotFound("missing")) != KindNotFound {
		t.Error("expected KindNotFound")
	}
	if KindOf(Conflict("dup")) != KindConflict {
		t.Error("expected KindConflict")
	}
	if KindOf(errors.New("plain")) != KindInternal {
		t.Error("plain errors should default to KindInternal")
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("create patient: %w", NotFound("Patient not found"))
	if KindOf(err) != KindNotFound {
		t.Error("expected kind to survive wrapping")
	}
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal("Internal server error while creating patient", cause)

	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}
	if err.Message == cause.Error() {
		t.Error("client message must not be the internal cause")
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalid, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.kind); got != tc.want {
			t.Errorf("HTTPStatus(%d) = %d, want %d", tc.kind, got, tc.want)
		}
	}
}
