package facades

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// probabilityVector builds an n-class distribution with the given
// probability at index winner and the remainder spread evenly.
func probabilityVector(n, winner int, p float32) []float32 {
	scores := make([]float32, n)
	rest := (1 - p) / float32(n-1)
	for i := range scores {
		scores[i] = rest
	}
	scores[winner] = p
	return scores
}

func TestTopScore(t *testing.T) {
	tests := []struct {
		name           string
		scores         []float32
		wantClass      int
		wantConfidence float64
	}{
		{
			name:           "confident winner over many classes",
			scores:         probabilityVector(120, 42, 0.975),
			wantClass:      42,
			wantConfidence: 97.5,
		},
		{
			name:           "uncertain winner",
			scores:         probabilityVector(120, 7, 0.4),
			wantClass:      7,
			wantConfidence: 40.0,
		},
		{
			name:           "winner at first index",
			scores:         []float32{0.6, 0.3, 0.1},
			wantClass:      0,
			wantConfidence: 60.0,
		},
		{
			name:           "rounds to two decimals",
			scores:         probabilityVector(10, 3, 0.97534),
			wantClass:      3,
			wantConfidence: 97.53,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class, prob := topScore(tt.scores)
			confidence := math.Round(prob*100*100) / 100

			assert.Equal(t, tt.wantClass, class)
			assert.Equal(t, tt.wantConfidence, confidence)
		})
	}
}

func TestTopScore_WinnerProbabilityPreserved(t *testing.T) {
	// A softmax-activated output layer hands back probabilities; topScore
	// must report the winning class's probability unchanged, so a 0.975
	// score clears the 95 archive threshold after scaling to percent.
	scores := probabilityVector(120, 11, 0.975)

	_, prob := topScore(scores)

	assert.InDelta(t, 0.975, prob, 1e-6)
	assert.Greater(t, prob*100, 95.0)
}
