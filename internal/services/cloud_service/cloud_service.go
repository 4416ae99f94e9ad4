package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/lib/logger/sl"
	"gallery_shallery/internal/metrics"
	"gallery_shallery/internal/repository"
	backupservice "gallery_shallery/internal/services/backup_service"
	"gallery_shallery/internal/storage"
)

var (
	ErrMissingCredentials = errors.New("cloud credentials are not configured")
	ErrConnection         = errors.New("cloud connection failed")
	ErrNotSignedIn        = errors.New("not signed in to cloud drive")
	ErrUpload             = errors.New("cloud upload failed")
	ErrAuthNotSupported   = errors.New("cloud drive does not use interactive authorization")
)

// State состояние подключения к облачному диску
type State string

const (
	StateUninitialized State = "uninitialized"
	StateConfigured    State = "configured"
	StateSignedIn      State = "signed-in"
)

// CredentialStore хранит учетные данные между перезапусками
type CredentialStore interface {
	Save(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	LoadInto(ctx context.Context, key string, dst any) bool
}

// Codec разбирает скачанные резервные копии
type Codec interface {
	ImportBundle(data []byte) (*models.BackupBundle, error)
}

// CloudService необязательное зеркало резервных копий в облаке.
// Все операции с данными требуют состояния signed-in и проверяют его до обращения к сети.
// Повторов нет: решение о повторе принимает вызывающий код.
type CloudService struct {
	log   *slog.Logger
	drive storage.CloudDrive
	store CredentialStore
	codec Codec
	now   func() time.Time

	mu      sync.Mutex
	creds   models.CloudCredentials
	state   State
	session storage.CloudSession
	// gen растет при каждом сбросе сессии; вход, начатый до сброса, отбрасывается
	gen uint64
}

func NewCloudService(log *slog.Logger, drive storage.CloudDrive, store CredentialStore, codec Codec) *CloudService {
	return &CloudService{
		log:   log,
		drive: drive,
		store: store,
		codec: codec,
		now:   time.Now,
		state: StateUninitialized,
	}
}

// Restore загружает сохраненные учетные данные; полный набор переводит сервис в configured
func (s *CloudService) Restore(ctx context.Context) {
	clientID, _ := repository.Load[string](ctx, s.store, repository.KeyCloudClientID)
	apiKey, _ := repository.Load[string](ctx, s.store, repository.KeyCloudAPIKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.creds = models.CloudCredentials{ClientID: clientID, APIKey: apiKey}
	s.gen++
	s.session = nil
	s.state = StateUninitialized
	if s.creds.Complete() {
		s.state = StateConfigured
	}
}

// Configure сохраняет учетные данные; сеть не используется.
// Смена учетных данных завершает текущую сессию, неполный набор стирается из хранилища.
func (s *CloudService) Configure(ctx context.Context, clientID, apiKey string) State {
	const op = "service.CloudService.Configure"

	creds := models.CloudCredentials{ClientID: clientID, APIKey: apiKey}

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := creds != s.creds
	s.creds = creds

	switch {
	case !creds.Complete():
		s.gen++
		s.session = nil
		s.state = StateUninitialized
	case changed || s.state == StateUninitialized:
		s.gen++
		s.session = nil
		s.state = StateConfigured
	}

	for key, value := range map[string]string{
		repository.KeyCloudClientID: creds.ClientID,
		repository.KeyCloudAPIKey:   creds.APIKey,
	} {
		var err error
		if creds.Complete() {
			err = s.store.Save(ctx, key, value)
		} else {
			err = s.store.Delete(ctx, key)
		}
		if err != nil {
			s.log.Warn("failed to persist cloud credentials", slog.String("op", op), slog.String("key", key), sl.Err(err))
		}
	}

	s.log.Info("cloud credentials configured",
		slog.String("op", op),
		slog.String("provider", s.drive.Name()),
		slog.String("state", string(s.state)),
	)

	return s.state
}

// Connect выполняет вход у провайдера. При ошибке состояние не меняется.
func (s *CloudService) Connect(ctx context.Context) error {
	const op = "service.CloudService.Connect"
	log := s.log.With(
		slog.String("op", op),
		slog.String("provider", s.drive.Name()),
	)

	s.mu.Lock()
	creds, gen := s.creds, s.gen
	s.mu.Unlock()

	if !creds.Complete() {
		return fmt.Errorf("%s: %w", op, ErrMissingCredentials)
	}

	log.Info("signing in to cloud drive")

	session, err := s.drive.SignIn(ctx, creds)
	s.count("connect", err)
	if err != nil {
		var authErr *storage.AuthRequiredError
		if errors.As(err, &authErr) {
			log.Info("interactive authorization required")
		} else {
			log.Warn("sign in failed", sl.Err(err))
		}
		return fmt.Errorf("%s: %w: %w", op, ErrConnection, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// пока шел вход, сессию могли сбросить: Disconnect, Configure или Restore
	if s.gen != gen {
		log.Info("sign in discarded, session was reset")
		return fmt.Errorf("%s: %w: session reset during sign in", op, ErrConnection)
	}

	s.session = session
	s.state = StateSignedIn

	log.Info("signed in to cloud drive")
	return nil
}

// AuthURL возвращает адрес интерактивной авторизации для провайдеров, которым она нужна
func (s *CloudService) AuthURL(state string) (string, error) {
	const op = "service.CloudService.AuthURL"

	s.mu.Lock()
	creds := s.creds
	s.mu.Unlock()

	if !creds.Complete() {
		return "", fmt.Errorf("%s: %w", op, ErrMissingCredentials)
	}

	authorizer, ok := s.drive.(storage.Authorizer)
	if !ok {
		return "", fmt.Errorf("%s: %w", op, ErrAuthNotSupported)
	}

	return authorizer.AuthURL(creds, state), nil
}

// Disconnect завершает сессию; учетные данные сохраняются. Повторный вызов ничего не меняет.
func (s *CloudService) Disconnect() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.session = nil
	if s.state == StateSignedIn {
		s.state = StateConfigured
	}

	return s.state
}

// Upload сохраняет резервную копию в облаке под именем с текущей датой
func (s *CloudService) Upload(ctx context.Context, bundle models.BackupBundle) (models.RemoteBackup, error) {
	const op = "service.CloudService.Upload"

	session, err := s.activeSession()
	if err != nil {
		return models.RemoteBackup{}, fmt.Errorf("%s: %w", op, err)
	}

	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return models.RemoteBackup{}, fmt.Errorf("%s: %w: %w", op, ErrUpload, err)
	}

	name := backupservice.FileName(s.now())
	log := s.log.With(
		slog.String("op", op),
		slog.String("name", name),
	)

	backup, err := session.Upload(ctx, name, data)
	s.count("upload", err)
	if err != nil {
		log.Error("upload failed", sl.Err(err))
		return models.RemoteBackup{}, fmt.Errorf("%s: %w: %w", op, ErrUpload, err)
	}

	log.Info("backup uploaded", slog.String("id", backup.ID), slog.Int("bytes", len(data)))
	return backup, nil
}

// List возвращает резервные копии в облаке, новые первыми
func (s *CloudService) List(ctx context.Context) ([]models.RemoteBackup, error) {
	const op = "service.CloudService.List"

	session, err := s.activeSession()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	backups, err := session.List(ctx, backupservice.FilePrefix)
	s.count("list", err)
	if err != nil {
		s.log.Warn("list failed", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrConnection, err)
	}

	return backups, nil
}

// Download скачивает и разбирает резервную копию. Состояние приложения не меняется.
func (s *CloudService) Download(ctx context.Context, id string) (*models.BackupBundle, error) {
	const op = "service.CloudService.Download"

	session, err := s.activeSession()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	data, err := session.Download(ctx, id)
	s.count("download", err)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		s.log.Warn("download failed", slog.String("op", op), slog.String("id", id), sl.Err(err))
		return nil, fmt.Errorf("%s: %w: %w", op, ErrConnection, err)
	}

	bundle, err := s.codec.ImportBundle(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bundle, nil
}

func (s *CloudService) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

func (s *CloudService) Credentials() models.CloudCredentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creds
}

func (s *CloudService) Provider() string {
	return s.drive.Name()
}

func (s *CloudService) activeSession() (storage.CloudSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSignedIn || s.session == nil {
		return nil, ErrNotSignedIn
	}
	return s.session, nil
}

func (s *CloudService) count(operation string, err error) {
	metrics.CloudOperationsTotal.WithLabelValues(s.drive.Name(), operation, metrics.Status(err)).Inc()
}
