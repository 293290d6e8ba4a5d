package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/google/uuid"

	"github.com/sbilibin2017/dogbreed-api/internal/logger"
)

// imageExtensions whitelists the image MIME subtypes accepted for image uploads.
var imageExtensions = map[string]struct{}{
	"jpeg": {},
	"png":  {},
	"jpg":  {},
}

// BlobStorage wraps the Azure Blob service client for image uploads and
// label-mapping downloads. It is stateless aside from its connection and is
// constructed once at startup.
type BlobStorage struct {
	client    *azblob.Client
	container string
}

// NewBlobStorage connects to the blob service using the given connection
// string. container is the default container for uploads.
func NewBlobStorage(connectionString, container string) (*BlobStorage, error) {
	client, err := azblob.NewClientFromConnectionString(connectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("connect to blob storage: %w", err)
	}
	return &BlobStorage{client: client, container: container}, nil
}

// UploadFile stores data under "{folder}/{uuid}_{filename}" in the default
// container and returns the blob URL.
func (s *BlobStorage) UploadFile(ctx context.Context, folder, filename string, data []byte, contentType string) (string, error) {
	blobName := fmt.Sprintf("%s/%s_%s", folder, uuid.New(), filename)
	return s.upload(ctx, blobName, data, contentType)
}

// UploadImage stores an image under "{folder}/{uuid}_{name}.{ext}", deriving
// the extension from the content type. Content types outside the image
// whitelist are skipped with a warning and an empty URL instead of failing
// the caller.
func (s *BlobStorage) UploadImage(ctx context.Context, folder, name string, data []byte, contentType string) (string, error) {
	ext := contentType[strings.LastIndex(contentType, "/")+1:]
	if _, ok := imageExtensions[ext]; !ok {
		logger.Log.Warnw("skipping upload of unsupported file type",
			"content_type", contentType,
			"name", name,
		)
		return "", nil
	}

	blobName := fmt.Sprintf("%s/%s_%s.%s", folder, uuid.New(), name, ext)
	return s.upload(ctx, blobName, data, contentType)
}

func (s *BlobStorage) upload(ctx context.Context, blobName string, data []byte, contentType string) (string, error) {
	opts := &azblob.UploadBufferOptions{}
	if contentType != "" {
		opts.HTTPHeaders = &blob.HTTPHeaders{BlobContentType: &contentType}
	}

	if _, err := s.client.UploadBuffer(ctx, s.container, blobName, data, opts); err != nil {
		logger.Log.Errorw("blob upload failed", "container", s.container, "blob", blobName, "error", err)
		return "", err
	}

	logger.Log.Infow("blob uploaded", "container", s.container, "blob", blobName)
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.client.URL(), "/"), s.container, blobName), nil
}

// DownloadJSON fetches a blob from the given container and decodes it as
// JSON into out.
func (s *BlobStorage) DownloadJSON(ctx context.Context, container, blobName string, out any) error {
	resp, err := s.client.DownloadStream(ctx, container, blobName, nil)
	if err != nil {
		logger.Log.Errorw("blob download failed", "container", container, "blob", blobName, "error", err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read blob %q: %w", blobName, err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode blob %q: %w", blobName, err)
	}
	return nil
}
