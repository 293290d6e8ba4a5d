package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// Always true
	Success bool `json:"success"`
	// Signed bearer token
	AccessToken string `json:"access_token"`
	// Success message
	// default: Login successful
	Message string `json:"message"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user by email and password and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Success 200 {object} handlers.LoginResponse "Bearer token returned"
// @Failure 400 {object} handlers.ErrorResponse "Missing email or password"
// @Failure 401 {object} handlers.ErrorResponse "Invalid credentials"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.FormValue("email")
		password := r.FormValue("password")

		if email == "" || password == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: "Missing email or password",
			})
			return
		}

		token, err := svc.Login(r.Context(), email, password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeJSON(w, http.StatusUnauthorized, ErrorResponse{
					Message: "Invalid credentials",
				})
			default:
				logError(r.Context(), "internal server error", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: err.Error(),
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Success:     true,
			AccessToken: token,
			Message:     "Login successful",
		})
	}
}
