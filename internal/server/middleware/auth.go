package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/bcp-audit/internal/server/handlers"
	"github.com/iudanet/bcp-audit/internal/server/jwt"
)

// TokenValidator проверяет access token
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.WarnContext(ctx, "missing Authorization header", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, "Access token required", "missing bearer token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.WarnContext(ctx, "invalid Authorization header format")
				writeError(w, http.StatusUnauthorized, "Access token required", "invalid token format")
				return
			}

			claims, err := validator.ValidateAccessToken(parts[1])
			if err != nil {
				logger.WarnContext(ctx, "invalid access token", "error", err)
				writeError(w, http.StatusUnauthorized, "Invalid token", "token is invalid or expired")
				return
			}

			userID, err := claims.UserID()
			if err != nil {
				logger.WarnContext(ctx, "invalid token subject", "error", err)
				writeError(w, http.StatusUnauthorized, "Invalid token", "token is invalid or expired")
				return
			}

			logger.DebugContext(ctx, "user authenticated", "user_id", userID, "username", claims.Username)

			next.ServeHTTP(w, r.WithContext(handlers.WithUser(ctx, userID, claims.Username, claims.Role)))
		})
	}
}

// RequireRole пропускает только пользователей с одной из указанных ролей.
// Должен стоять после AuthMiddleware.
func RequireRole(logger *slog.Logger, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := handlers.GetRole(r.Context())
			for _, allowed := range roles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			username, _ := handlers.GetUsername(r.Context())
			logger.WarnContext(r.Context(), "insufficient permissions",
				"username", username,
				"role", role,
				"method", r.Method,
				"path", r.URL.Path,
			)
			writeError(w, http.StatusForbidden, "Forbidden", "insufficient permissions")
		})
	}
}
