package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gallery_shallery/internal/storage"
)

// FileStorage интерфейс для работы с каталогом файлов резервных копий
type FileStorage interface {
	Save(ctx context.Context, name string, src io.Reader) (filePath string, fileSize int64, err error)
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, prefix string) ([]string, error)
	GetFullPath(relativePath string) string
	GetBaseDir() string
}

// LocalFileStorage реализация для локальной файловой системы
type LocalFileStorage struct {
	baseDir string // Базовый каталог для хранения (например: "./backups")
}

func NewLocalFileStorage(baseDir string) (*LocalFileStorage, error) {
	// Создаем директорию, если она не существует
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, err
	}

	return &LocalFileStorage{
		baseDir: baseDir,
	}, nil
}

// Save записывает содержимое src в файл name. Существующий файл перезаписывается.
func (s *LocalFileStorage) Save(ctx context.Context, name string, src io.Reader) (string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, err
	}

	if err := validateName(name); err != nil {
		return "", 0, err
	}

	filePath := filepath.Join(s.baseDir, name)
	tmpPath := filePath + ".tmp"

	// Пишем во временный файл и переименовываем, чтобы не оставить половину копии
	dst, err := os.Create(tmpPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create destination file: %w", err)
	}

	done := make(chan struct{})
	var size int64
	var copyErr error

	go func() {
		size, copyErr = io.Copy(dst, src)
		close(done)
	}()

	select {
	case <-done:
		closeErr := dst.Close()
		if copyErr != nil {
			_ = os.Remove(tmpPath)
			return "", 0, fmt.Errorf("failed to copy file: %w", copyErr)
		}
		if closeErr != nil {
			_ = os.Remove(tmpPath)
			return "", 0, fmt.Errorf("failed to close file: %w", closeErr)
		}
	case <-ctx.Done():
		_ = dst.Close()
		_ = os.Remove(tmpPath)
		return "", 0, ctx.Err()
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		return "", 0, fmt.Errorf("failed to finalize file: %w", err)
	}

	return name, size, nil
}

// Open открывает файл из хранилища на чтение
func (s *LocalFileStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := validateName(name); err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", name, storage.ErrFileNotFound)
		}
		return nil, err
	}

	return f, nil
}

// Delete удаляет файл из хранилища
func (s *LocalFileStorage) Delete(ctx context.Context, name string) error {
	if err := validateName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(s.baseDir, name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", name, storage.ErrFileNotFound)
	}

	return err
}

// List возвращает имена файлов с указанным префиксом, новые (по имени) первыми
func (s *LocalFileStorage) List(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || strings.HasSuffix(e.Name(), ".tmp") {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))

	return names, nil
}

// GetFullPath возвращает полный путь к файлу на диске
func (s *LocalFileStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.baseDir, relativePath)
}

func (s *LocalFileStorage) GetBaseDir() string {
	return s.baseDir
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("%q: %w", name, storage.ErrInvalidFileName)
	}
	return nil
}
