package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"gallery_shallery/internal/storage"
	filestorage "gallery_shallery/internal/storage/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFileStorage(t *testing.T) *filestorage.LocalFileStorage {
	t.Helper()

	fs, err := filestorage.NewLocalFileStorage(t.TempDir())
	require.NoError(t, err)

	return fs
}

func TestLocalFileStorage_Save(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful save", func(t *testing.T) {
		filePath, size, err := fs.Save(ctx, "backup.json", strings.NewReader(`{"albums":[]}`))
		require.NoError(t, err)

		assert.Equal(t, "backup.json", filePath)
		assert.Equal(t, int64(13), size)

		// Проверяем содержимое файла
		data, err := os.ReadFile(fs.GetFullPath(filePath))
		require.NoError(t, err)
		assert.Equal(t, `{"albums":[]}`, string(data))
	})

	t.Run("overwrite existing file", func(t *testing.T) {
		_, _, err := fs.Save(ctx, "same.json", strings.NewReader("first"))
		require.NoError(t, err)
		_, _, err = fs.Save(ctx, "same.json", strings.NewReader("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(fs.GetFullPath("same.json"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("reject path traversal", func(t *testing.T) {
		for _, name := range []string{"", "../escape.json", "sub/file.json", ".."} {
			_, _, err := fs.Save(ctx, name, strings.NewReader("x"))
			assert.ErrorIs(t, err, storage.ErrInvalidFileName, name)
		}
	})

	t.Run("save with context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(ctx)
		cancel() // Отменяем контекст сразу

		_, _, err := fs.Save(ctx, "cancelled.json", strings.NewReader("x"))
		assert.ErrorIs(t, err, context.Canceled)

		_, err = os.Stat(fs.GetFullPath("cancelled.json"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestLocalFileStorage_Open(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	_, _, err := fs.Save(ctx, "read.json", strings.NewReader("content"))
	require.NoError(t, err)

	rc, err := fs.Open(ctx, "read.json")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	_, err = fs.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, storage.ErrFileNotFound)
}

func TestLocalFileStorage_Delete(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	t.Run("successful delete", func(t *testing.T) {
		filePath, _, err := fs.Save(ctx, "to_delete.json", strings.NewReader("content"))
		require.NoError(t, err)

		err = fs.Delete(ctx, filePath)
		assert.NoError(t, err)

		_, err = os.Stat(fs.GetFullPath(filePath))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("delete non-existent file", func(t *testing.T) {
		err := fs.Delete(ctx, "nonexistent.json")
		assert.ErrorIs(t, err, storage.ErrFileNotFound)
	})
}

func TestLocalFileStorage_List(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	for _, name := range []string{
		"gallery-shallery-backup-2024-01-01.json",
		"gallery-shallery-backup-2024-03-01.json",
		"notes.txt",
	} {
		_, _, err := fs.Save(ctx, name, strings.NewReader("{}"))
		require.NoError(t, err)
	}
	require.NoError(t, os.Mkdir(filepath.Join(fs.GetBaseDir(), "gallery-shallery-backup-dir"), 0755))

	names, err := fs.List(ctx, "gallery-shallery-backup")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"gallery-shallery-backup-2024-03-01.json",
		"gallery-shallery-backup-2024-01-01.json",
	}, names)
}

func TestNewLocalFileStorage(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		fs, err := filestorage.NewLocalFileStorage(filepath.Join(t.TempDir(), "nested", "backups"))
		require.NoError(t, err)
		assert.NotNil(t, fs)
	})

	t.Run("invalid directory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

		// Каталог нельзя создать внутри обычного файла
		_, err := filestorage.NewLocalFileStorage(filepath.Join(file, "backups"))
		assert.Error(t, err)
	})
}

func TestConcurrentSaves(t *testing.T) {
	fs := setupFileStorage(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, err := fs.Save(ctx, "concurrent-"+string(rune('a'+i))+".json", strings.NewReader("data"))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	names, err := fs.List(ctx, "concurrent-")
	require.NoError(t, err)
	assert.Len(t, names, 10)
}
