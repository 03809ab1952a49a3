package middleware

import (
	"context"
	"net/http"

	"fitness-booking/internal/data/entity"
	"fitness-booking/pkg/apperror"
	"fitness-booking/pkg/utils"

	"go.uber.org/zap"
)

// Authenticator checks HTTP Basic credentials
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*entity.User, error)
}

// BasicAuth resolves the caller from the Authorization header and stores the
// user in the request context
func BasicAuth(auth Authenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
				return
			}

			user, err := auth.Authenticate(r.Context(), username, password)
			if err != nil {
				if apperror.KindOf(err) == apperror.KindUnauthenticated {
					utils.ResponseUnauthorized(w, apperror.MessageOf(err, "Invalid username/password."))
					return
				}
				logger.Error("Failed to authenticate request",
					zap.Error(err),
					zap.String("username", username),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Admin allows only callers with the admin role. Must run after BasicAuth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication credentials were not provided.")
				return
			}

			role, _ := utils.GetRoleFromContext(r.Context())
			if role != string(entity.RoleAdmin) {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "You do not have permission to perform this action.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
