package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

func registerForm(email string) url.Values {
	form := url.Values{}
	form.Set("email", email)
	form.Set("password", "secret")
	form.Set("first_name", "Alice")
	form.Set("last_name", "Smith")
	form.Set("birth_date", "1990-01-01")
	form.Set("country", "Sweden")
	return form
}

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		form         url.Values
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			form: registerForm("alice@example.com"),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice@example.com", "secret", "Alice", "Smith", "1990-01-01", "Sweden").
					Return(nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: map[string]any{"success": true, "message": "User registered successfully"},
		},
		{
			name: "email already registered",
			form: registerForm("bob@example.com"),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob@example.com", "secret", "Alice", "Smith", "1990-01-01", "Sweden").
					Return(services.ErrEmailAlreadyRegistered)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"success": false, "message": "Email already registered"},
		},
		{
			name:         "missing fields",
			form:         url.Values{"email": {"carol@example.com"}},
			mockSetup:    func(m *MockRegisterer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"success": false, "message": "Missing required fields"},
		},
		{
			name: "internal server error",
			form: registerForm("dave@example.com"),
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "dave@example.com", "secret", "Alice", "Smith", "1990-01-01", "Sweden").
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"success": false, "error": "database failure"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
