package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"gallery-backend/internal/services"
)

// AuthHandler handles login requests
type AuthHandler struct {
	auth *services.Authenticator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		log.Warn().Str("username", req.Username).Msg("Failed login attempt")
		respondError(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{Token: token})
}
