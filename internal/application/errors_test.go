package application

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type statusError struct{ status int }

func (e statusError) Error() string   { return fmt.Sprintf("status %d: server detail", e.status) }
func (e statusError) HTTPStatus() int { return e.status }

func TestUserMessage(t *testing.T) {
	messages := map[int]string{
		http.StatusUnauthorized: "Email ou mot de passe incorrect",
		http.StatusConflict:     "Cet email est déjà utilisé",
	}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil error", err: nil, want: ""},
		{name: "mapped status", err: statusError{status: http.StatusUnauthorized}, want: "Email ou mot de passe incorrect"},
		{name: "wrapped mapped status", err: fmt.Errorf("login: %w", statusError{status: http.StatusConflict}), want: "Cet email est déjà utilisé"},
		{name: "unmapped status", err: statusError{status: http.StatusInternalServerError}, want: "Une erreur est survenue"},
		{name: "no status", err: errors.New("dial tcp: refused"), want: "Une erreur est survenue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, "Une erreur est survenue", messages))
		})
	}
}

func TestUserMessageWithoutMapUsesFallback(t *testing.T) {
	assert.Equal(t, "failed", UserMessage(statusError{status: http.StatusNotFound}, "failed", nil))
}

func TestHTTPStatus(t *testing.T) {
	status, ok := HTTPStatus(fmt.Errorf("wrap: %w", statusError{status: http.StatusNotFound}))
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)

	_, ok = HTTPStatus(errors.New("plain"))
	assert.False(t, ok)
}
