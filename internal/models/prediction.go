package models

// Prediction is the outcome of a breed classification.
type Prediction struct {
	Breed      string  `json:"breed"`      // Human-readable breed name
	Confidence float64 `json:"confidence"` // Confidence in percent, [0,100], 2 decimal places
}

// ImageUpload carries an uploaded image through the service layer.
type ImageUpload struct {
	Filename    string // Original file name as submitted by the client
	ContentType string // MIME type reported by the client
	Data        []byte // Raw image bytes
}
