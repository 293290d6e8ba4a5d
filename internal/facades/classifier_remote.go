package facades

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
)

// RemoteClassifier calls an HTTPS inference endpoint with the image encoded
// as base64 JSON. The call carries no client-side timeout: the request
// blocks until the endpoint answers.
type RemoteClassifier struct {
	url    string
	token  string
	client *http.Client
}

// NewRemoteClassifier creates a classifier for the given endpoint URL and
// bearer token.
func NewRemoteClassifier(url, token string) *RemoteClassifier {
	return &RemoteClassifier{
		url:    url,
		token:  token,
		client: &http.Client{},
	}
}

type remoteRequest struct {
	Data string `json:"data"`
}

type remotePrediction struct {
	Breed      string  `json:"breed"`
	Confidence float64 `json:"confidence"`
}

// Classify posts the image to the inference endpoint and parses the breed
// and confidence out of its response.
func (c *RemoteClassifier) Classify(ctx context.Context, data []byte) (string, float64, error) {
	payload, err := json.Marshal(remoteRequest{
		Data: base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		return "", 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Log.Errorw("inference request failed", "url", c.url, "error", err)
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", 0, fmt.Errorf("inference endpoint returned status %d", resp.StatusCode)
	}

	// The endpoint double-encodes: the response body is a JSON string whose
	// content is the prediction object.
	var inner string
	if err := json.Unmarshal(body, &inner); err != nil {
		return "", 0, fmt.Errorf("decode inference response: %w", err)
	}

	var pred remotePrediction
	if err := json.Unmarshal([]byte(inner), &pred); err != nil {
		return "", 0, fmt.Errorf("decode prediction payload: %w", err)
	}

	logger.Log.Infow("remote prediction", "breed", pred.Breed, "confidence", pred.Confidence)
	return pred.Breed, pred.Confidence, nil
}
