package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/lib/logger/sl"
	"gallery_shallery/internal/metrics"
	storage "gallery_shallery/internal/storage/filestorage"
)

const (
	// FilePrefix общий префикс имен файлов резервных копий, локальных и облачных
	FilePrefix = "gallery-shallery-backup"

	fileDateLayout = "2006-01-02"
)

var ErrMalformedBackup = errors.New("malformed backup")

// Gallery состояние приложения, которое экспортируется и заменяется при импорте
type Gallery interface {
	Snapshot() models.AppState
	Replace(ctx context.Context, state models.AppState)
}

type BackupService struct {
	log   *slog.Logger
	files storage.FileStorage
	now   func() time.Time
}

func NewBackupService(log *slog.Logger, files storage.FileStorage) *BackupService {
	return &BackupService{
		log:   log,
		files: files,
		now:   time.Now,
	}
}

// FileName возвращает имя файла резервной копии за дату t по UTC, как и exportDate в копии
func FileName(t time.Time) string {
	return fmt.Sprintf("%s-%s.json", FilePrefix, t.UTC().Format(fileDateLayout))
}

// FileName возвращает имя файла резервной копии за текущую дату
func (s *BackupService) FileName() string {
	return FileName(s.now())
}

// ExportBundle сериализует состояние в JSON с отступом в два пробела
func (s *BackupService) ExportBundle(state models.AppState) ([]byte, error) {
	const op = "service.BackupService.ExportBundle"

	bundle := models.NewBackupBundle(state, s.now())

	data, err := json.MarshalIndent(bundle, "", "  ")
	metrics.BackupOperationsTotal.WithLabelValues("export", metrics.Status(err)).Inc()
	if err != nil {
		s.log.Error("failed to encode backup", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.BackupSizeBytes.Set(float64(len(data)))

	s.log.Debug("backup exported",
		slog.String("op", op),
		slog.Int("albums", len(bundle.Albums)),
		slog.Int("bytes", len(data)),
	)

	return data, nil
}

// ImportBundle разбирает резервную копию. Документ должен быть JSON-объектом
// с полем albums. Неразборчивые даты отбрасываются, значения перечислений
// не проверяются.
func (s *BackupService) ImportBundle(data []byte) (*models.BackupBundle, error) {
	const op = "service.BackupService.ImportBundle"

	bundle, err := decodeBundle(data)
	metrics.BackupOperationsTotal.WithLabelValues("import", metrics.Status(err)).Inc()
	if err != nil {
		s.log.Warn("backup rejected", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("backup parsed",
		slog.String("op", op),
		slog.Int("albums", len(bundle.Albums)),
		slog.String("version", bundle.Version),
	)

	return bundle, nil
}

// ImportReader читает резервную копию целиком и разбирает ее
func (s *BackupService) ImportReader(r io.Reader) (*models.BackupBundle, error) {
	const op = "service.BackupService.ImportReader"

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.ImportBundle(data)
}

// ApplyBundle полностью заменяет состояние содержимым копии. Слияния нет:
// альбомы, которых нет в копии, исчезают.
func (s *BackupService) ApplyBundle(ctx context.Context, bundle *models.BackupBundle, gallery Gallery) {
	const op = "service.BackupService.ApplyBundle"

	state := bundle.State()
	gallery.Replace(ctx, state)
	metrics.BackupOperationsTotal.WithLabelValues("apply", metrics.StatusSuccess).Inc()

	s.log.Info("backup applied",
		slog.String("op", op),
		slog.Int("albums", len(state.Albums)),
		slog.String("export_date", bundle.ExportDate),
	)
}

// SaveLocal записывает резервную копию в каталог копий и возвращает имя файла
func (s *BackupService) SaveLocal(ctx context.Context, state models.AppState) (string, int64, error) {
	const op = "service.BackupService.SaveLocal"
	log := s.log.With(slog.String("op", op))

	data, err := s.ExportBundle(state)
	if err != nil {
		return "", 0, err
	}

	name, size, err := s.files.Save(ctx, s.FileName(), bytes.NewReader(data))
	if err != nil {
		log.Error("failed to save backup file", sl.Err(err))
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("backup saved", slog.String("file", s.files.GetFullPath(name)), slog.Int64("size", size))
	return name, size, nil
}

// ImportFile читает и разбирает резервную копию из каталога копий
func (s *BackupService) ImportFile(ctx context.Context, name string) (*models.BackupBundle, error) {
	const op = "service.BackupService.ImportFile"

	f, err := s.files.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	return s.ImportReader(f)
}

// DeleteLocal удаляет резервную копию из каталога копий
func (s *BackupService) DeleteLocal(ctx context.Context, name string) error {
	const op = "service.BackupService.DeleteLocal"

	if err := s.files.Delete(ctx, name); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("backup deleted", slog.String("op", op), slog.String("file", name))
	return nil
}

// Dir каталог локальных резервных копий
func (s *BackupService) Dir() string {
	return s.files.GetBaseDir()
}

// ListLocal возвращает имена локальных резервных копий, новые первыми
func (s *BackupService) ListLocal(ctx context.Context) ([]string, error) {
	const op = "service.BackupService.ListLocal"

	names, err := s.files.List(ctx, FilePrefix)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return names, nil
}

func decodeBundle(data []byte) (*models.BackupBundle, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformedBackup)
	}

	albums, ok := fields["albums"]
	if !ok || bytes.Equal(bytes.TrimSpace(albums), []byte("null")) {
		return nil, fmt.Errorf("%w: albums field is missing", ErrMalformedBackup)
	}

	var bundle models.BackupBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBackup, err)
	}

	return &bundle, nil
}
