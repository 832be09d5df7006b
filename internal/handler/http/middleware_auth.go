package http

import (
	"fmt"
	"net/http"

	"github.com/mep-tools/bracket-tool/internal/logger"
	"github.com/mep-tools/bracket-tool/internal/service"
	"github.com/mep-tools/bracket-tool/internal/utils"
)

// tokenQueryParam carries the JWT on routes opened directly by the browser.
const tokenQueryParam = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the user in
// the request context with [utils.WithUser].
//
// A missing header is answered with 401 "Missing token"; a malformed,
// expired or foreign token with 401 "Invalid token".
func (h *Handler) auth(next http.Handler) http.Handler {
	return h.authenticate(next, false)
}

// authWithQueryToken behaves like auth but falls back to the "token" query
// parameter when the header is absent.
func (h *Handler) authWithQueryToken(next http.Handler) http.Handler {
	return h.authenticate(next, true)
}

func (h *Handler) authenticate(next http.Handler, allowQuery bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := bearerToken(r, allowQuery)
		if err != nil {
			log.Debug().Err(err).Msg("request without usable token")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUser(ctx, token.UserID, token.Email)))
	})
}

// bearerToken extracts the raw JWT. A present but malformed header is
// reported as an invalid token rather than a missing one.
func bearerToken(r *http.Request, allowQuery bool) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return "", fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err)
		}
		return token, nil
	}

	if allowQuery {
		if token := r.URL.Query().Get(tokenQueryParam); token != "" {
			return token, nil
		}
	}

	return "", ErrMissingToken
}
