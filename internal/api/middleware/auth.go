package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/pharmabolt/pharmabolt-api/internal/api/shared"
	"github.com/pharmabolt/pharmabolt-api/internal/domain"
	"github.com/pharmabolt/pharmabolt-api/internal/platform/logger"
	"github.com/pharmabolt/pharmabolt-api/internal/service/auth"
)

// Auth middleware messages. These bodies are part of the API contract.
const (
	msgTokenMissing = "Authentication token missing"
	msgTokenInvalid = "Invalid authentication token"
	msgAccessDenied = "Access denied: insufficient permissions"
)

// AuthMiddleware provides bearer-token authentication and role-based
// authorization for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates the token from the Authorization header
// ("Bearer <token>") and attaches the decoded claims to the request
// context. It never touches the data store: claims reflect the account
// at issuance time, so a role change or deletion mid-lifetime is not
// observed until the token expires.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithAuthError(w, r, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			shared.RespondWithAuthError(w, r, http.StatusUnauthorized, msgTokenMissing)
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) &&
				!errors.Is(err, auth.ErrExpiredToken) &&
				!errors.Is(err, auth.ErrTokenNotYetValid) {
				log := logger.FromContext(r.Context())
				log.Error("unexpected token validation failure", "error", err)
			}
			shared.RespondWithAuthError(w, r, http.StatusUnauthorized, msgTokenInvalid)
			return
		}

		ctx := context.WithValue(r.Context(), shared.ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole returns a guard that admits only callers whose
// authenticated role equals the required one. It must run after
// Authenticate; a request that reaches it without claims is answered
// with 401 rather than dereferencing nil.
func (m *AuthMiddleware) RequireRole(role domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetClaims(r)
			if !ok {
				shared.RespondWithAuthError(w, r, http.StatusUnauthorized, msgTokenMissing)
				return
			}

			if claims.Role != role {
				shared.RespondWithAuthError(w, r, http.StatusForbidden, msgAccessDenied)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetClaims extracts the authenticated caller's claims from the request
// context. Returns the claims and a boolean indicating if they were found.
func GetClaims(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(shared.ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}
