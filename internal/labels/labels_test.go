package labels

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubDownloader records the requested container/blob and returns a fixed
// mapping, standing in for the blob storage facade.
type stubDownloader struct {
	container string
	blobName  string
	mapping   map[string]string
	err       error
}

func (s *stubDownloader) DownloadJSON(ctx context.Context, container, blobName string, out any) error {
	s.container = container
	s.blobName = blobName
	if s.err != nil {
		return s.err
	}
	raw, _ := json.Marshal(s.mapping)
	return json.Unmarshal(raw, out)
}

func TestLoader_LocalFile(t *testing.T) {
	mapping := map[string]string{"0": "Labrador Retriever", "1": "Beagle"}
	raw, err := json.Marshal(mapping)
	assert.NoError(t, err)

	path := filepath.Join(t.TempDir(), "label_mapping.json")
	assert.NoError(t, os.WriteFile(path, raw, 0o644))

	loader := NewLoader(path, nil)
	got, err := loader.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, mapping, got)
}

func TestLoader_LocalFileMissing(t *testing.T) {
	loader := NewLoader(filepath.Join(t.TempDir(), "nope.json"), nil)
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_LocalFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label_mapping.json")
	assert.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	loader := NewLoader(path, nil)
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_RemoteURL(t *testing.T) {
	mapping := map[string]string{"0": "Poodle"}
	stub := &stubDownloader{mapping: mapping}

	loader := NewLoader("https://account.blob.core.windows.net/models/labels/mapping.json", stub)
	got, err := loader.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, mapping, got)
	assert.Equal(t, "models", stub.container)
	assert.Equal(t, "labels/mapping.json", stub.blobName)
}

func TestLoader_RemoteError(t *testing.T) {
	stub := &stubDownloader{err: errors.New("blob unavailable")}

	loader := NewLoader("https://account.blob.core.windows.net/models/mapping.json", stub)
	_, err := loader.Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_NotCachedBetweenCalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "label_mapping.json")
	assert.NoError(t, os.WriteFile(path, []byte(`{"0":"Beagle"}`), 0o644))

	loader := NewLoader(path, nil)
	got, err := loader.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"0": "Beagle"}, got)

	// A changed file is picked up by the next call.
	assert.NoError(t, os.WriteFile(path, []byte(`{"0":"Pug"}`), 0o644))
	got, err = loader.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"0": "Pug"}, got)
}
