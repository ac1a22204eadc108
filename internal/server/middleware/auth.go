// Package middleware provides HTTP middleware for admin authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// adminKey is the context key for storing the authenticated admin name.
const adminKey ContextKey = "adminUser"

// TokenValidator is an interface for validating session tokens.
// This allows the middleware to work with any JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (UsernameGetter, error)
}

// UsernameGetter is an interface for extracting the admin username
// from token claims.
type UsernameGetter interface {
	GetUsername() string
}

// AdminAuth creates middleware that validates a session token and adds
// the admin username to the request context. The token is taken from
// the Authorization header (Bearer scheme) or, when absent, from the
// session cookie named cookieName.
func AdminAuth(jwtService TokenValidator, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				if cookie, err := r.Cookie(cookieName); err == nil {
					tokenString = cookie.Value
				}
			}
			if tokenString == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, claims.GetUsername())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts a Bearer token from the Authorization header.
// The scheme is matched case-insensitively; a malformed header yields
// an empty string.
func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetAdminUser extracts the authenticated admin username from the
// request context.
func GetAdminUser(r *http.Request) (string, error) {
	username, ok := r.Context().Value(adminKey).(string)
	if !ok || username == "" {
		return "", fmt.Errorf("admin user not found in request context")
	}
	return username, nil
}
