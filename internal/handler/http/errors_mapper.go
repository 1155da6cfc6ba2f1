package http

import (
	"errors"
	"net/http"

	"github.com/MoodyMakai/WebDevForum/internal/service"
	"github.com/MoodyMakai/WebDevForum/internal/store"
)

// errorStatuses is checked in order, so when an error wraps more than one
// sentinel the first match wins.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrAccountLocked, http.StatusLocked},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrCurrentPasswordIncorrect, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidUsername, http.StatusBadRequest},
	{service.ErrInvalidDisplayName, http.StatusBadRequest},
	{service.ErrInvalidColor, http.StatusBadRequest},
	{service.ErrWeakPassword, http.StatusBadRequest},
	{service.ErrEmptyComment, http.StatusBadRequest},
	{service.ErrCommentTooLong, http.StatusBadRequest},

	{store.ErrUsernameTaken, http.StatusConflict},
	{store.ErrNoAccountFound, http.StatusNotFound},
	{store.ErrAttemptNotRecorded, http.StatusInternalServerError},
	{store.ErrCommentNotSaved, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, mapping := range errorStatuses {
		if errors.Is(err, mapping.target) {
			return mapping.status
		}
	}
	return http.StatusInternalServerError
}
