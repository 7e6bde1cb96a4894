package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/store-dashboard/internal/auth"
)

// LoginHandler godoc
// @Summary Authenticate the admin and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "username and password"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Failure 503 {string} string "Admin access not configured"
// @Router /login [post]
func (a *API) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var credentials UserLogin
	if err := readJSON(w, r, &credentials); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	token, err := a.auth.Login(credentials.Username, credentials.Password)
	switch {
	case errors.Is(err, auth.ErrAdminDisabled):
		http.Error(w, "admin access not configured", http.StatusServiceUnavailable)
		return
	case errors.Is(err, auth.ErrInvalidCredentials):
		a.logger.WarnContext(r.Context(), "failed login", "username", credentials.Username)
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	case err != nil:
		a.logger.ErrorContext(r.Context(), "login failed", "error", err)
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	a.respond(w, r, http.StatusOK, LoginResult{Token: token})
}
