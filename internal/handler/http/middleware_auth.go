package http

import (
	"context"
	"net/http"

	"github.com/MoodyMakai/WebDevForum/internal/logger"
	"github.com/MoodyMakai/WebDevForum/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header (or, for
// websocket clients that cannot set headers, from the "token" query
// parameter), validates it via the auth service, and on success stores the
// authenticated account's ID in the request context under
// [utils.AccountIDCtxKey] before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the token is
// missing, malformed, expired, carries a wrong signature or issuer, or was
// issued before the account's last password change.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionTokenFromRequest(r)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated account's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.AccountIDCtxKey, token.AccountID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionTokenFromRequest extracts the raw session token from a request.
// The "Authorization: Bearer <token>" header takes precedence; the "token"
// query parameter is accepted as a fallback for websocket clients.
func sessionTokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return tokenString, nil
	}

	if tokenString := r.URL.Query().Get("token"); tokenString != "" {
		return tokenString, nil
	}

	return "", ErrEmptyAuthorizationHeader
}
