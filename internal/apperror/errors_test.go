package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", Validation("Todo text is required"), http.StatusBadRequest},
		{"not found", NotFound("Todo not found"), http.StatusNotFound},
		{"referential", Referential(errors.New("fk violation")), http.StatusInternalServerError},
		{"storage", Storage(errors.New("connection refused")), http.StatusInternalServerError},
		{"wrapped not found", fmt.Errorf("lookup: %w", NotFound("gone")), http.StatusNotFound},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestStorageKeepsDriverMessage(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	err := Storage(cause)

	assert.Equal(t, cause.Error(), err.Error())
	assert.ErrorIs(t, err, ErrStorage)
	assert.ErrorIs(t, err, cause)
}

func TestReferentialIsNotStorage(t *testing.T) {
	err := Referential(errors.New("insert or update on table \"cart\" violates foreign key constraint"))

	assert.ErrorIs(t, err, ErrReferential)
	assert.NotErrorIs(t, err, ErrStorage)
}
