package storage_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dental-clinic-api/config"
	"dental-clinic-api/internal/infrastructure/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngPayload returns bytes carrying a real PNG signature so content
// sniffing accepts them.
func pngPayload(body string) []byte {
	return append([]byte("\x89PNG\r\n\x1a\n"), body...)
}

func newStore(t *testing.T, maxBytes int64) *storage.LocalStore {
	t.Helper()

	store, err := storage.NewLocalStore(config.UploadConfig{
		Dir:      t.TempDir(),
		MaxBytes: maxBytes,
	})
	require.NoError(t, err)
	return store
}

func TestLocalStore_SaveAndRemove(t *testing.T) {
	store := newStore(t, 1024)

	content := pngPayload("fake image bytes")
	relPath, err := store.Save("radiografias", "panoramica.png", bytes.NewReader(content), int64(len(content)))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "radiografias/"))
	assert.True(t, strings.HasSuffix(relPath, ".png"))

	data, err := os.ReadFile(filepath.Join(store.Root(), relPath))
	require.NoError(t, err)
	assert.Equal(t, content, data)

	require.NoError(t, store.Remove(relPath))
	_, err = os.Stat(filepath.Join(store.Root(), relPath))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStore_RejectsExtension(t *testing.T) {
	store := newStore(t, 1024)

	_, err := store.Save("radiografias", "script.sh", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, storage.ErrInvalidExtension)
}

func TestLocalStore_RejectsOversize(t *testing.T) {
	store := newStore(t, 4)

	_, err := store.Save("radiografias", "big.png", strings.NewReader("too large"), 9)
	assert.ErrorIs(t, err, storage.ErrFileTooLarge)
}

func TestLocalStore_RejectsMismatchedContent(t *testing.T) {
	store := newStore(t, 1024)

	// ELF header with a whitelisted extension: the name passes but the
	// bytes must not.
	payload := []byte("\x7fELF\x02\x01\x01\x00 not an image")
	_, err := store.Save("radiografias", "estudio.png", bytes.NewReader(payload), int64(len(payload)))
	assert.ErrorIs(t, err, storage.ErrInvalidContent)

	entries, readErr := os.ReadDir(filepath.Join(store.Root(), "radiografias"))
	if readErr == nil {
		assert.Empty(t, entries)
	}
}

func TestLocalStore_AcceptsPDFContent(t *testing.T) {
	store := newStore(t, 1024)

	payload := []byte("%PDF-1.4\n%fake body")
	relPath, err := store.Save("radiografias", "estudio.pdf", bytes.NewReader(payload), int64(len(payload)))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(relPath, ".pdf"))
}
