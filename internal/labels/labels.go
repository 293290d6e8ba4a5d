// Package labels loads the mapping from model output class index to
// human-readable breed name.
package labels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// JSONDownloader fetches a blob and decodes it as JSON. Satisfied by the
// blob storage facade.
type JSONDownloader interface {
	DownloadJSON(ctx context.Context, container, blobName string, out any) error
}

// Loader reads the label mapping from a local file, or from blob storage
// when the configured path is an https URL of the form
// https://host/{container}/{blob}.
type Loader struct {
	path string
	blob JSONDownloader
}

func NewLoader(path string, blob JSONDownloader) *Loader {
	return &Loader{path: path, blob: blob}
}

// Load fetches the mapping. It is called on every prediction; the mapping
// is not cached between requests.
func (l *Loader) Load(ctx context.Context) (map[string]string, error) {
	if strings.HasPrefix(l.path, "https://") {
		return l.loadRemote(ctx)
	}
	return l.loadLocal()
}

func (l *Loader) loadRemote(ctx context.Context) (map[string]string, error) {
	u, err := url.Parse(l.path)
	if err != nil {
		return nil, fmt.Errorf("parse label mapping url: %w", err)
	}

	parts := strings.SplitN(strings.TrimPrefix(u.Path, "/"), "/", 2)
	container := parts[0]
	blobName := ""
	if len(parts) > 1 {
		blobName = parts[1]
	}

	var mapping map[string]string
	if err := l.blob.DownloadJSON(ctx, container, blobName, &mapping); err != nil {
		return nil, fmt.Errorf("download label mapping: %w", err)
	}
	return mapping, nil
}

func (l *Loader) loadLocal() (map[string]string, error) {
	raw, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read label mapping: %w", err)
	}

	var mapping map[string]string
	if err := json.Unmarshal(raw, &mapping); err != nil {
		return nil, fmt.Errorf("decode label mapping: %w", err)
	}
	return mapping, nil
}
