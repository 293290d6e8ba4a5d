package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/dogbreed-api/internal/models"
	"github.com/sbilibin2017/dogbreed-api/internal/services"
)

// multipartBody builds a multipart form with the given text fields and one
// optional file field. Returns the body and the content type header value.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		assert.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		assert.NoError(t, err)
		_, err = part.Write(fileData)
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestPredictHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	imageData := []byte("fake image bytes")

	tests := []struct {
		name         string
		withFile     bool
		mockSetup    func(m *MockPredicter)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name:     "success",
			withFile: true,
			mockSetup: func(m *MockPredicter) {
				m.EXPECT().
					Predict(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, image models.ImageUpload) (*models.Prediction, error) {
						assert.Equal(t, "rex.jpg", image.Filename)
						assert.Equal(t, imageData, image.Data)
						return &models.Prediction{Breed: "Labrador Retriever", Confidence: 97.53}, nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]any{"breed": "Labrador Retriever", "confidence": 97.53},
		},
		{
			name:         "no file uploaded",
			withFile:     false,
			mockSetup:    func(m *MockPredicter) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]any{"success": false, "message": "No file uploaded"},
		},
		{
			name:     "archive failure keeps the prediction",
			withFile: true,
			mockSetup: func(m *MockPredicter) {
				pred := &models.Prediction{Breed: "Pug", Confidence: 99.0}
				m.EXPECT().
					Predict(gomock.Any(), gomock.Any()).
					Return(pred, fmt.Errorf("%w: %v", services.ErrImageArchiveFailed, errors.New("blob unavailable")))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{
				"breed":      "Pug",
				"confidence": 99.0,
				"message":    "Prediction succeeded, but failed to upload image: image archive failed: blob unavailable",
			},
		},
		{
			name:     "classifier error",
			withFile: true,
			mockSetup: func(m *MockPredicter) {
				m.EXPECT().
					Predict(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("inference failed"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]any{"success": false, "error": "inference failed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPredicter(ctrl)
			tt.mockSetup(mockSvc)

			fileField := ""
			if tt.withFile {
				fileField = "file"
			}
			body, contentType := multipartBody(t, nil, fileField, "rex.jpg", imageData)

			req := httptest.NewRequest(http.MethodPost, "/predict", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			NewPredictHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var got map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}
