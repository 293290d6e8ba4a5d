package facades

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/mattn/go-tflite"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
	"github.com/sbilibin2017/dogbreed-api/internal/preprocess"
)

// LabelLoader provides the class-index to breed-name mapping.
type LabelLoader interface {
	Load(ctx context.Context) (map[string]string, error)
}

// LocalClassifier runs breed inference against an in-process tflite model.
// The interpreter is not safe for concurrent invocation, so Classify
// serializes access.
type LocalClassifier struct {
	model       *tflite.Model
	interpreter *tflite.Interpreter
	labels      LabelLoader
	mu          sync.Mutex
}

// NewLocalClassifier loads the model file and prepares an interpreter.
func NewLocalClassifier(modelPath string, labels LabelLoader) (*LocalClassifier, error) {
	model := tflite.NewModelFromFile(modelPath)
	if model == nil {
		return nil, fmt.Errorf("failed to load model from %s", modelPath)
	}

	options := tflite.NewInterpreterOptions()
	interpreter := tflite.NewInterpreter(model, options)
	if interpreter == nil {
		model.Delete()
		return nil, errors.New("failed to create model interpreter")
	}

	if status := interpreter.AllocateTensors(); status != tflite.OK {
		interpreter.Delete()
		model.Delete()
		return nil, errors.New("failed to allocate model tensors")
	}

	return &LocalClassifier{
		model:       model,
		interpreter: interpreter,
		labels:      labels,
	}, nil
}

// Close releases the interpreter and model.
func (c *LocalClassifier) Close() {
	c.interpreter.Delete()
	c.model.Delete()
}

// Classify decodes the image, runs the model, and maps the arg-max output
// class to a breed name. Confidence is the model's probability for the
// winning class in percent, rounded to two decimals. The label mapping is
// loaded on every call, matching the configured source.
func (c *LocalClassifier) Classify(ctx context.Context, data []byte) (string, float64, error) {
	mapping, err := c.labels.Load(ctx)
	if err != nil {
		return "", 0, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", 0, fmt.Errorf("decode image: %w", err)
	}
	tensor := preprocess.FromImage(img)

	scores, err := c.invoke(tensor.Data)
	if err != nil {
		return "", 0, err
	}

	class, prob := topScore(scores)
	label, ok := mapping[strconv.Itoa(class)]
	if !ok {
		return "", 0, fmt.Errorf("no label for output class %d", class)
	}
	confidence := math.Round(prob*100*100) / 100

	logger.Log.Infow("local prediction", "breed", label, "confidence", confidence)
	return label, confidence, nil
}

// invoke runs one forward pass and returns the output scores.
func (c *LocalClassifier) invoke(input []float32) ([]float32, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	in := c.interpreter.GetInputTensor(0)
	copy(in.Float32s(), input)

	if status := c.interpreter.Invoke(); status != tflite.OK {
		return nil, errors.New("model invocation failed")
	}

	scores := c.interpreter.GetOutputTensor(0).Float32s()
	if len(scores) == 0 {
		return nil, errors.New("model returned no scores")
	}
	out := make([]float32, len(scores))
	copy(out, scores)
	return out, nil
}

// topScore returns the index and probability of the highest-scoring class.
// The model's output layer is softmax-activated, so the scores already form
// a probability distribution and are read as-is.
func topScore(scores []float32) (int, float64) {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best, float64(scores[best])
}
