package mock

import (
	"context"
	"io"

	"github.com/dukerupert/dokimi"
)

var _ dokimi.FileStorage = (*FileStorage)(nil)

// FileStorage is a mock implementation of dokimi.FileStorage.
type FileStorage struct {
	UploadFn func(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	DeleteFn func(ctx context.Context, key string) error
	GetURLFn func(key string) string
}

func (m *FileStorage) Upload(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	return m.UploadFn(ctx, key, reader, contentType)
}

func (m *FileStorage) Delete(ctx context.Context, key string) error {
	return m.DeleteFn(ctx, key)
}

func (m *FileStorage) GetURL(key string) string {
	return m.GetURLFn(key)
}
