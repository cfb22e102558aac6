package handler

import (
	"net/http"

	"github.com/gamevault/platform/internal/service"
)

// AuthHandler handles registration, login and logout endpoints.
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	result, err := h.authSvc.Register(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusCreated, result)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := DecodeJSON(r, &input); err != nil {
		RespondJSON(w, http.StatusBadRequest, map[string]string{
			"code":    "VALIDATION_ERROR",
			"message": "invalid request body",
		})
		return
	}

	result, err := h.authSvc.Login(r.Context(), input)
	if err != nil {
		RespondError(w, err)
		return
	}

	RespondJSON(w, http.StatusOK, result)
}

// Logout handles POST /auth/logout. Sessions are stateless bearer tokens, so
// there is no server-side state to clear; the client discards its token.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	RespondJSON(w, http.StatusNoContent, nil)
}
