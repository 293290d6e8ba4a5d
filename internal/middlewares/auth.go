package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
)

// Tokener defines the minimal token interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// userIDKeyType is an unexported type for the user id context key
type userIDKeyType struct{}

var userIDKey = userIDKeyType{}

// AuthMiddleware returns a middleware that validates the bearer token and
// stores the authenticated user id in the request context. Requests without
// a valid token are rejected with 401 before any business logic runs.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			userID, err := tokener.GetUserID(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeUnauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(ctx, userID)))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": "Missing or invalid token",
	})
}

// SetUserIDToContext stores the authenticated user id in the context
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from the context.
// The second return value is false when no user is authenticated.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
