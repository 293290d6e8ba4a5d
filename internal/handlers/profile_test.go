package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
	"github.com/sbilibin2017/dogbreed-api/internal/models"
)

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name          string
		authenticated bool
		mockSetup     func(m *MockProfileGetter)
		expectedCode  int
		checkBody     func(t *testing.T, body map[string]any)
	}{
		{
			name:          "returns profile",
			authenticated: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID).
					Return(&models.UserDB{
						UserID:    userID,
						Email:     "alice@example.com",
						FirstName: "Alice",
						LastName:  "Smith",
						BirthDate: "1990-01-01",
						Country:   "Sweden",
					}, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				data := body["data"].(map[string]any)
				assert.Equal(t, userID.String(), data["user_id"])
				assert.Equal(t, "alice@example.com", data["email"])
				assert.Equal(t, "Alice", data["first_name"])
				assert.Equal(t, "Smith", data["last_name"])
				assert.Equal(t, "1990-01-01", data["birth_date"])
				assert.Equal(t, "Sweden", data["country"])
				// password hash never leaves the service
				assert.NotContains(t, data, "upassword")
			},
		},
		{
			name:          "missing user yields null data",
			authenticated: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID).
					Return(nil, nil)
			},
			expectedCode: http.StatusOK,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Nil(t, body["data"])
			},
		},
		{
			name:          "unauthenticated",
			authenticated: false,
			mockSetup:     func(m *MockProfileGetter) {},
			expectedCode:  http.StatusUnauthorized,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "Missing or invalid token", body["message"])
			},
		},
		{
			name:          "internal server error",
			authenticated: true,
			mockSetup: func(m *MockProfileGetter) {
				m.EXPECT().
					Get(gomock.Any(), userID).
					Return(nil, errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			checkBody: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "database failure", body["error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockProfileGetter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/profile", nil)
			if tt.authenticated {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}
			rec := httptest.NewRecorder()

			NewProfileHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			tt.checkBody(t, got)
		})
	}
}
