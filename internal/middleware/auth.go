package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/forgo/jobly/internal/model"
	"github.com/forgo/jobly/pkg/jwt"
)

// TokenValidator verifies bearer tokens. *jwt.Service satisfies it.
type TokenValidator interface {
	Validate(token string) (*jwt.Claims, error)
}

// ClaimsKey is the context key for JWT claims
const ClaimsKey contextKey = "claims"

// UsernameKey is the context key for the authenticated username
const UsernameKey contextKey = "username"

// Auth returns a middleware that requires a valid bearer token
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, problem := authenticate(validator, r)
			if problem != nil {
				problem.WriteJSON(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

// AdminAuth returns a middleware that requires a valid bearer token whose
// role claim is admin. Non-admins get 401, the same answer as a missing token.
func AdminAuth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, problem := authenticate(validator, r)
			if problem != nil {
				problem.WriteJSON(w)
				return
			}
			if !claims.IsAdmin() {
				model.NewUnauthorizedError("admin privileges required").WriteJSON(w)
				return
			}
			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func authenticate(validator TokenValidator, r *http.Request) (*jwt.Claims, *model.ProblemDetails) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, model.NewUnauthorizedError("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return nil, model.NewUnauthorizedError("invalid authorization header format")
	}

	claims, err := validator.Validate(parts[1])
	if err != nil {
		pd := model.NewUnauthorizedError("invalid token")
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			pd = model.NewUnauthorizedError("token expired")
			pd.Code = model.ErrCodeTokenExpired
		case errors.Is(err, jwt.ErrInvalidSignature):
			pd = model.NewUnauthorizedError("invalid token signature")
			pd.Code = model.ErrCodeTokenInvalid
		default:
			pd.Code = model.ErrCodeTokenInvalid
		}
		return nil, pd
	}
	return claims, nil
}

func withClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	noteUsername(ctx, claims.Username)
	ctx = context.WithValue(ctx, UsernameKey, claims.Username)
	return context.WithValue(ctx, ClaimsKey, claims)
}

// GetUsername extracts the authenticated username from context
func GetUsername(ctx context.Context) string {
	if name, ok := ctx.Value(UsernameKey).(string); ok {
		return name
	}
	return ""
}

// GetClaims extracts the JWT claims from context
func GetClaims(ctx context.Context) *jwt.Claims {
	if claims, ok := ctx.Value(ClaimsKey).(*jwt.Claims); ok {
		return claims
	}
	return nil
}
