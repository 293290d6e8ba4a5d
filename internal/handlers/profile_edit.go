package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

// ProfileEditor defines the interface that the profile edit service must implement.
type ProfileEditor interface {
	Update(ctx context.Context, userID uuid.UUID, firstName, lastName, birthDate, country *string) error
}

// NewProfileEditHandler returns an HTTP handler that partially edits the
// caller's profile. Omitted fields keep their current values.
// @Summary Edit the caller's profile
// @Description Updates the submitted profile fields; fields not present in the form are left untouched.
// @Tags profile
// @Accept mpfd
// @Produce json
// @Param first_name formData string false "First name"
// @Param last_name formData string false "Last name"
// @Param birth_date formData string false "Birth date"
// @Param country formData string false "Country"
// @Security BearerAuth
// @Success 200 {object} handlers.MessageResponse "Profile updated"
// @Failure 401 {object} handlers.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/edit [put]
func NewProfileEditHandler(svc ProfileEditor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			writeUnauthorizedEnvelope(w)
			return
		}

		ct := r.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "multipart/form-data") {
			_ = r.ParseMultipartForm(defaultMaxMemory)
		} else {
			_ = r.ParseForm()
		}

		firstName := optionalFormValue(r, "first_name")
		lastName := optionalFormValue(r, "last_name")
		birthDate := optionalFormValue(r, "birth_date")
		country := optionalFormValue(r, "country")

		err := svc.Update(r.Context(), userID, firstName, lastName, birthDate, country)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{
					Message: "User not found",
				})
			default:
				logError(r.Context(), "internal server error", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: err.Error(),
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{
			Success: true,
			Message: "User profile updated successfully",
		})
	}
}
