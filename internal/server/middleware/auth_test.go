package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticClaims struct{ username string }

func (c staticClaims) GetUsername() string { return c.username }

// staticValidator accepts exactly one token string.
type staticValidator struct {
	accept string
}

func (v staticValidator) ValidateToken(tokenString string) (UsernameGetter, error) {
	if tokenString != v.accept {
		return nil, fmt.Errorf("invalid token")
	}
	return staticClaims{username: "hradmin"}, nil
}

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seen string
	handler := AdminAuth(staticValidator{accept: "good-token"}, "admin_session")(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := GetAdminUser(r)
			require.NoError(t, err)
			seen = username
			w.WriteHeader(http.StatusOK)
		}))
	return handler, &seen
}

func TestAdminAuth_BearerToken(t *testing.T) {
	handler, seen := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hradmin", *seen)
}

func TestAdminAuth_CaseInsensitiveScheme(t *testing.T) {
	handler, _ := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuth_CookieFallback(t *testing.T) {
	handler, seen := protected(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "good-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hradmin", *seen)
}

func TestAdminAuth_HeaderWinsOverCookie(t *testing.T) {
	handler, _ := protected(t)

	// A bad header is not rescued by a good cookie.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	req.AddCookie(&http.Cookie{Name: "admin_session", Value: "good-token"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_Rejections(t *testing.T) {
	handler, _ := protected(t)

	cases := map[string]func(*http.Request){
		"no credentials":   func(_ *http.Request) {},
		"malformed header": func(r *http.Request) { r.Header.Set("Authorization", "good-token") },
		"wrong scheme":     func(r *http.Request) { r.Header.Set("Authorization", "Basic good-token") },
		"invalid token":    func(r *http.Request) { r.Header.Set("Authorization", "Bearer bad-token") },
		"invalid cookie": func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "admin_session", Value: "bad-token"})
		},
	}
	for name, prepare := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			prepare(req)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestGetAdminUser_MissingContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := GetAdminUser(req)
	assert.Error(t, err)
}
