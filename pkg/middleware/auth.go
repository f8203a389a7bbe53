package middleware

import (
	"net/http"
	"strings"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth accepts the access_token cookie or an Authorization: Bearer header.
// An admin claim is checked against the stored role, so a demoted admin is
// treated as a plain user on every route before their token expires.
func Auth(secret string, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := tokenFromRequest(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			claims, err := utils.ParseAccessToken(secret, token)
			if err != nil {
				logger.Warn("Invalid access token",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			userID := uuid.MustParse(claims.UserID)
			role := claims.Role

			if role == string(entity.RoleAdmin) {
				user, err := userRepo.FindByID(r.Context(), userID)
				if err != nil {
					logger.Error("Auth: failed to get user",
						zap.Error(err), zap.String("user_id", claims.UserID))
					utils.ResponseInternalError(w, "Internal server error")
					return
				}
				if user == nil {
					utils.ResponseUnauthorized(w, "Invalid or expired token")
					return
				}
				role = string(user.Role)
			}

			ctx := utils.SetUserContext(r.Context(), userID, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(r *http.Request) string {
	if cookie, err := r.Cookie(utils.AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// Admin re-reads the role from the store. Must run after Auth.
func Admin(userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// 1. Get user ID from context
			userID, ok := utils.GetUserIDFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			// 2. Load the user
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Admin check: failed to get user",
					zap.Error(err), zap.String("user_id", userID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// 3. Check role
			if user == nil || user.Role != entity.RoleAdmin {
				logger.Warn("Admin check: non-admin access attempt",
					zap.String("user_id", userID.String()),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IsAdmin reports whether the caller holds the admin role as resolved by Auth.
func IsAdmin(r *http.Request) bool {
	role, ok := utils.GetRoleFromContext(r.Context())
	return ok && role == string(entity.RoleAdmin)
}
