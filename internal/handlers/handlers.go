package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
	"github.com/sbilibin2017/dogbreed-api/internal/middlewares"
)

// defaultMaxMemory is the in-memory budget handed to multipart form parsing.
const defaultMaxMemory = 32 << 20

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// ErrorResponse is the common failure envelope.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Always false
	Success bool `json:"success"`
	// Human-readable failure message
	Message string `json:"message,omitempty"`
	// Underlying error text for dependency failures
	Error string `json:"error,omitempty"`
}

// MessageResponse is the common success envelope for mutations.
// swagger:model MessageResponse
type MessageResponse struct {
	// Always true
	Success bool `json:"success"`
	// Human-readable success message
	Message string `json:"message"`
}

// logError logs a handler failure together with the request id assigned by
// the logging middleware.
func logError(ctx context.Context, msg string, err error) {
	logger.Log.Errorw(msg,
		"request_id", middlewares.GetRequestIDFromContext(ctx),
		"err", err,
	)
}

// optionalFormValue returns a pointer to the form field value when the
// field was present in the request, and nil when it was omitted. The
// request's form must already be parsed.
func optionalFormValue(r *http.Request, key string) *string {
	if vs, ok := r.PostForm[key]; ok && len(vs) > 0 {
		return &vs[0]
	}
	if r.MultipartForm != nil {
		if vs, ok := r.MultipartForm.Value[key]; ok && len(vs) > 0 {
			return &vs[0]
		}
	}
	return nil
}
