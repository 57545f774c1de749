package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{Validation, http.StatusBadRequest},
		{Conflict, http.StatusConflict},
		{BadRequest, http.StatusBadRequest},
		{Forbidden, http.StatusUnauthorized},
		{NotFound, http.StatusNotFound},
		{Auth, http.StatusUnauthorized},
		{Internal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, StatusCode(New(c.kind, "x")), "kind %d", c.kind)
	}
}

func TestStatusCodeUntagged(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusCode(errors.New("boom")))
}

func TestAsUnwrapsWrappedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(Conflict, "email already exists"))
	e := As(err)
	if assert.NotNil(t, e) {
		assert.Equal(t, Conflict, e.Kind)
		assert.Equal(t, "email already exists", e.Error())
	}
}

func TestValidationErrorKeepsDetails(t *testing.T) {
	e := NewValidation([]string{`"email" must be a valid email`})
	assert.Equal(t, Validation, e.Kind)
	assert.Len(t, e.Details, 1)
	assert.NotEmpty(t, e.Error())
}
