package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"

	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/common"
	"goalsguild-backend/pkg/errors"
)

// Authenticate validates the bearer token and attaches the caller
// identity to the request context. Requests without a valid token
// never reach a handler.
func Authenticate(validator *auth.JWTValidator, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if validator == nil {
				common.RespondError(w, errors.NewUnauthorizedError("authentication is not configured"))
				return
			}
			header := r.Header.Get("Authorization")
			if header == "" {
				common.RespondError(w, errors.NewUnauthorizedError("missing authorization header"))
				return
			}
			if !strings.HasPrefix(header, "Bearer ") {
				common.RespondError(w, errors.NewUnauthorizedError("invalid authorization header"))
				return
			}

			claims, err := validator.ValidateToken(header)
			if err != nil {
				logger.Debug("Token validation failed", zap.Error(err))
				common.RespondError(w, errors.NewUnauthorizedError("invalid or expired token"))
				return
			}

			identity := &auth.Identity{
				Sub:      claims.UserID,
				Username: claims.Email,
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
		})
	}
}
