package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, firstName, lastName, birthDate, country string) error
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. The email must not already be registered. The password is hashed before storing.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param first_name formData string true "First name"
// @Param last_name formData string true "Last name"
// @Param birth_date formData string true "Birth date"
// @Param country formData string true "Country"
// @Success 201 {object} handlers.MessageResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Email already registered / missing fields"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.FormValue("email")
		password := r.FormValue("password")
		firstName := r.FormValue("first_name")
		lastName := r.FormValue("last_name")
		birthDate := r.FormValue("birth_date")
		country := r.FormValue("country")

		if email == "" || password == "" || firstName == "" || lastName == "" || birthDate == "" || country == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Message: "Missing required fields",
			})
			return
		}

		err := svc.Register(r.Context(), email, password, firstName, lastName, birthDate, country)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyRegistered):
				writeJSON(w, http.StatusBadRequest, ErrorResponse{
					Message: "Email already registered",
				})
			default:
				logError(r.Context(), "internal server error", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: err.Error(),
				})
			}
			return
		}

		writeJSON(w, http.StatusCreated, MessageResponse{
			Success: true,
			Message: "User registered successfully",
		})
	}
}
