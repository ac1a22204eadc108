package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Pawankrsingh7/hrm-polosoft/internal/config"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/server/middleware"
	"github.com/Pawankrsingh7/hrm-polosoft/internal/types"
)

// AuthHandler handles admin authentication requests.
type AuthHandler struct {
	admin      *config.AdminConfig
	passwords  *config.PasswordConfig
	jwtService *JWTService
	cookieName string
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(admin *config.AdminConfig, passwords *config.PasswordConfig, jwtService *JWTService, cookieName string) *AuthHandler {
	return &AuthHandler{
		admin:      admin,
		passwords:  passwords,
		jwtService: jwtService,
		cookieName: cookieName,
	}
}

// Login verifies the admin credentials, issues a session token and
// sets the session cookie. Wrong username and wrong password produce
// the same response.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req types.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := req.Validate(); err != nil {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	if req.Username != h.admin.Username || !h.passwords.VerifyPassword(req.Password, h.admin.PasswordHash) {
		err := &ErrInvalidCredentials{}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	response := types.AdminLoginResponse{
		OK:    true,
		Token: token,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		// Log error but response already sent
		return
	}
}

// Logout clears the session cookie. The token itself stays valid until
// it expires; there is no server-side session store.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}

// Me reports the authenticated admin identity.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, err := middleware.GetAdminUser(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(types.AdminSession{Username: username})
}
