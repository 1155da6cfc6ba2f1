package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MoodyMakai/WebDevForum/internal/service"
	"github.com/MoodyMakai/WebDevForum/internal/store"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: service.ErrWeakPassword, want: http.StatusBadRequest},
		{name: "credentials", err: service.ErrInvalidCredentials, want: http.StatusUnauthorized},
		{name: "locked", err: service.ErrAccountLocked, want: http.StatusLocked},
		{name: "username taken", err: store.ErrUsernameTaken, want: http.StatusConflict},
		{name: "wrapped sentinel", err: fmt.Errorf("saving: %w", store.ErrCommentNotSaved), want: http.StatusInternalServerError},
		{name: "unknown error", err: errors.New("connection refused"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_PrecedenceIsOrdered(t *testing.T) {
	// An error wrapping two sentinels must map to the earlier entry,
	// not to whichever one a map iteration happens to visit first.
	err := fmt.Errorf("%w: %w", service.ErrAccountLocked, service.ErrInvalidCredentials)
	assert.Equal(t, http.StatusLocked, statusFromError(err))

	err = fmt.Errorf("%w: %w", service.ErrInvalidCredentials, service.ErrAccountLocked)
	assert.Equal(t, http.StatusLocked, statusFromError(err))
}
