package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)

	ctx := context.Background()
	url, err := store.Upload(ctx, "creatives/test.png", strings.NewReader("fake image data"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/creatives/test.png", url)

	data, err := os.ReadFile(filepath.Join(dir, "creatives", "test.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake image data", string(data))

	require.NoError(t, store.Delete(ctx, "creatives/test.png"))
	_, err = os.Stat(filepath.Join(dir, "creatives", "test.png"))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost/uploads")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never/uploaded.png"))
}

func TestLocalStorage_GetURL(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir(), "http://localhost/uploads/")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost/uploads/a/b.png", store.GetURL("a/b.png"))
}
