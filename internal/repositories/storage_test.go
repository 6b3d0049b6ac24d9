package repositories

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, storage.Save(ctx, "a.png", "image/png", strings.NewReader("png-bytes"), 9))

	img, err := storage.Resolve(ctx, "a.png")
	require.NoError(t, err)
	assert.Empty(t, img.URL)
	raw, err := os.ReadFile(img.Path)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(raw))

	require.NoError(t, storage.Delete(ctx, "a.png"))
	_, err = storage.Resolve(ctx, "a.png")
	assert.ErrorIs(t, err, ErrImageNotFound)

	// Deleting twice is fine.
	assert.NoError(t, storage.Delete(ctx, "a.png"))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	ctx := context.Background()
	storage, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"../secret", "a/b.png", "..", ""} {
		_, err := storage.Resolve(ctx, name)
		assert.ErrorIs(t, err, ErrImageNotFound, name)
		assert.Error(t, storage.Save(ctx, name, "", strings.NewReader("x"), 1), name)
	}
}

// fakeBucket answers the handful of S3 calls R2Storage makes.
type fakeBucket struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (b *fakeBucket) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := r.URL.Path
	switch r.Method {
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		b.objects[key] = body
		w.WriteHeader(http.StatusOK)
	case http.MethodHead:
		if _, ok := b.objects[key]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(b.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestR2Storage(t *testing.T) {
	bucket := &fakeBucket{objects: make(map[string][]byte)}
	srv := httptest.NewServer(bucket)
	defer srv.Close()

	storage, err := NewR2Storage("key", "secret", "", "feed", "auto", srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = storage.Resolve(ctx, "missing.png")
	assert.ErrorIs(t, err, ErrImageNotFound)

	require.NoError(t, storage.Save(ctx, "a.png", "image/png", strings.NewReader("png-bytes"), 9))
	assert.Equal(t, "png-bytes", string(bucket.objects["/feed/posts/a.png"]))

	streamed := io.MultiReader(strings.NewReader("gif-"), strings.NewReader("bytes"))
	require.NoError(t, storage.Save(ctx, "b.gif", "image/gif", streamed, 0))
	assert.Equal(t, "gif-bytes", string(bucket.objects["/feed/posts/b.gif"]))

	img, err := storage.Resolve(ctx, "a.png")
	require.NoError(t, err)
	assert.Empty(t, img.Path)
	assert.Contains(t, img.URL, "/feed/posts/a.png")
	assert.Contains(t, img.URL, "X-Amz-Signature=")

	require.NoError(t, storage.Delete(ctx, "a.png"))
	_, err = storage.Resolve(ctx, "a.png")
	assert.ErrorIs(t, err, ErrImageNotFound)
}

func TestNewR2Storage_Validation(t *testing.T) {
	_, err := NewR2Storage("k", "s", "acct", "", "auto", "")
	assert.Error(t, err)
	_, err = NewR2Storage("k", "s", "", "bucket", "auto", "")
	assert.Error(t, err)

	storage, err := NewR2Storage("k", "s", "acct", "bucket", "auto", "")
	require.NoError(t, err)
	assert.NotNil(t, storage)
}
