package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via the auth service, and resolves the token's subject to a live account.
// On success the sanitized user record and its ID are stored in the request
// context (under [utils.AuthUserCtxKey] and [utils.UserIDCtxKey]) before the
// request is delegated to the next handler.
//
// Rejections:
//   - HTTP 401 with [ErrNoTokenProvided] when the header is absent, cannot be
//     split into scheme and token, or carries an empty token value.
//   - HTTP 401 with [ErrInvalidToken] when token validation fails (bad
//     signature, wrong issuer, expired, malformed). One message covers every
//     validation failure so responses cannot be used to probe token state.
//   - HTTP 404 with [ErrUserDoesNotExist] when the token is valid but the
//     account it references is gone. The protected handler never runs.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("no usable bearer token in request")
			utils.WriteJSON(w, models.MessageResponse{Message: ErrNoTokenProvided.Error()}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token validation failed")
			utils.WriteJSON(w, models.MessageResponse{Message: ErrInvalidToken.Error()}, http.StatusUnauthorized)
			return
		}

		// The token may outlive its account. Resolve the subject before any
		// protected handler runs; a missing record blocks the request.
		user, err := h.services.UserService.GetUser(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNoUserWasFound) {
				log.Err(err).Int64("id", token.UserID).Msg("token subject no longer exists")
				utils.WriteJSON(w, models.MessageResponse{Message: ErrUserDoesNotExist.Error()}, http.StatusNotFound)
				return
			}

			log.Err(err).Int64("id", token.UserID).Msg("error resolving token subject")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, user.UserID)
		ctx = context.WithValue(ctx, utils.AuthUserCtxKey, user.Sanitized())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
