package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/lib/hydrate"
	"gallery_shallery/internal/lib/logger/sl"
	"gallery_shallery/internal/lib/validate"
	"gallery_shallery/internal/repository"
	"gallery_shallery/internal/transport/http/dto"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// StateStore зеркало состояния в постоянном хранилище
type StateStore interface {
	Save(ctx context.Context, key string, value any) error
	LoadInto(ctx context.Context, key string, dst any) bool
}

// GalleryService владеет состоянием приложения: альбомами, темой,
// настройками главной и пользовательским шрифтом.
// После каждого изменения затронутая часть состояния сохраняется в StateStore.
// Ошибки сохранения логируются и не мешают изменению состояния в памяти.
type GalleryService struct {
	log      *slog.Logger
	store    StateStore
	validate *validator.Validate
	now      func() time.Time

	mu    sync.RWMutex
	state models.AppState
}

func NewGalleryService(log *slog.Logger, store StateStore) *GalleryService {
	return &GalleryService{
		log:      log,
		store:    store,
		validate: validate.New(),
		now:      time.Now,
		state:    models.DefaultAppState(),
	}
}

// CreateAlbum создает новый альбом без фотографий
func (s *GalleryService) CreateAlbum(ctx context.Context, req dto.CreateAlbumRequest) (models.Album, error) {
	const op = "service.GalleryService.CreateAlbum"
	req.Title = strings.TrimSpace(req.Title)

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	log.Info("creating album")

	if err := s.validate.Struct(req); err != nil {
		log.Warn("invalid album", sl.Err(err))
		return models.Album{}, fmt.Errorf("%s: %w", op, validate.AsValidationError(err))
	}

	id, err := newID()
	if err != nil {
		log.Error("failed to generate album id", sl.Err(err))
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	createdAt := s.timestamp()
	album := models.Album{
		ID:         id,
		Title:      req.Title,
		Category:   orDefault(models.Category(req.Category), models.DefaultCategory),
		Theme:      orDefault(models.AlbumTheme(req.Theme), models.DefaultAlbumTheme),
		Font:       orDefault(models.Font(req.Font), models.DefaultFont),
		GoogleFont: strings.TrimSpace(req.GoogleFont),
		Layout:     orDefault(models.Layout(req.Layout), models.DefaultLayout),
		Photos:     []models.Photo{},
		CreatedAt:  &createdAt,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Albums = append(s.state.Albums, album)
	s.persistAlbums(ctx)

	log.Info("album created", slog.String("id", id))
	return album.Clone(), nil
}

// AddPhoto добавляет фотографию в конец альбома
func (s *GalleryService) AddPhoto(ctx context.Context, albumID string, req dto.AddPhotoRequest) (models.Photo, error) {
	const op = "service.GalleryService.AddPhoto"
	log := s.log.With(
		slog.String("op", op),
		slog.String("album_id", albumID),
	)

	if err := s.validate.Struct(req); err != nil {
		log.Warn("invalid photo", sl.Err(err))
		return models.Photo{}, fmt.Errorf("%s: %w", op, validate.AsValidationError(err))
	}

	photo := models.Photo{
		URL:       req.URL,
		Title:     strings.TrimSpace(req.Title),
		Location:  req.Location,
		Backstory: req.Backstory,
		Stickers:  append([]string{}, req.Stickers...),
	}

	if req.Date != "" {
		date, ok := hydrate.ParseTime(req.Date)
		if !ok {
			return models.Photo{}, fmt.Errorf("%s: %w", op, &models.ValidationError{
				Field:  "date",
				Reason: fmt.Sprintf("%q is not an ISO-8601 date", req.Date),
			})
		}
		photo.Date = &date
	}

	id, err := newID()
	if err != nil {
		log.Error("failed to generate photo id", sl.Err(err))
		return models.Photo{}, fmt.Errorf("%s: %w", op, err)
	}
	photo.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(albumID)
	if idx < 0 {
		log.Warn("album not found")
		return models.Photo{}, fmt.Errorf("%s: %w", op, models.ErrAlbumNotFound)
	}

	s.state.Albums[idx].Photos = append(s.state.Albums[idx].Photos, photo)
	s.persistAlbums(ctx)

	log.Info("photo added", slog.String("photo_id", id))
	return photo.Clone(), nil
}

// RemovePhoto удаляет фотографию из альбома
func (s *GalleryService) RemovePhoto(ctx context.Context, albumID, photoID string) error {
	const op = "service.GalleryService.RemovePhoto"
	log := s.log.With(
		slog.String("op", op),
		slog.String("album_id", albumID),
		slog.String("photo_id", photoID),
	)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(albumID)
	if idx < 0 {
		return fmt.Errorf("%s: %w", op, models.ErrAlbumNotFound)
	}

	photos := s.state.Albums[idx].Photos
	for i := range photos {
		if photos[i].ID == photoID {
			s.state.Albums[idx].Photos = append(photos[:i:i], photos[i+1:]...)
			s.persistAlbums(ctx)

			log.Info("photo removed")
			return nil
		}
	}

	return fmt.Errorf("%s: %w", op, models.ErrPhotoNotFound)
}

// ToggleFavorite переключает отметку "избранное" и возвращает обновленный альбом
func (s *GalleryService) ToggleFavorite(ctx context.Context, albumID string) (models.Album, error) {
	const op = "service.GalleryService.ToggleFavorite"

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(albumID)
	if idx < 0 {
		return models.Album{}, fmt.Errorf("%s: %w", op, models.ErrAlbumNotFound)
	}

	s.state.Albums[idx].IsFavorite = !s.state.Albums[idx].IsFavorite
	s.persistAlbums(ctx)

	s.log.Debug("favorite toggled",
		slog.String("op", op),
		slog.String("album_id", albumID),
		slog.Bool("favorite", s.state.Albums[idx].IsFavorite),
	)

	return s.state.Albums[idx].Clone(), nil
}

// DeleteAlbum удаляет альбом вместе с фотографиями
func (s *GalleryService) DeleteAlbum(ctx context.Context, albumID string) error {
	const op = "service.GalleryService.DeleteAlbum"
	log := s.log.With(
		slog.String("op", op),
		slog.String("album_id", albumID),
	)

	log.Info("deleting album")

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(albumID)
	if idx < 0 {
		log.Warn("album not found")
		return fmt.Errorf("%s: %w", op, models.ErrAlbumNotFound)
	}

	s.state.Albums = append(s.state.Albums[:idx:idx], s.state.Albums[idx+1:]...)
	s.persistAlbums(ctx)

	log.Info("album deleted")
	return nil
}

// UpdateAlbum заменяет альбом с тем же ID. Если в album не переданы
// фотографии или дата создания, сохраняются текущие.
func (s *GalleryService) UpdateAlbum(ctx context.Context, album models.Album) (models.Album, error) {
	const op = "service.GalleryService.UpdateAlbum"
	log := s.log.With(
		slog.String("op", op),
		slog.String("album_id", album.ID),
	)

	log.Info("updating album")

	album.Title = strings.TrimSpace(album.Title)
	if err := validateAlbum(album); err != nil {
		log.Warn("invalid album", sl.Err(err))
		return models.Album{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(album.ID)
	if idx < 0 {
		log.Warn("album not found")
		return models.Album{}, fmt.Errorf("%s: %w", op, models.ErrAlbumNotFound)
	}

	current := s.state.Albums[idx]
	updated := album.Clone()
	if album.Photos == nil {
		updated.Photos = current.Clone().Photos
	}
	if album.CreatedAt == nil {
		updated.CreatedAt = current.Clone().CreatedAt
	}

	s.state.Albums[idx] = updated
	s.persistAlbums(ctx)

	log.Info("album updated")
	return updated.Clone(), nil
}

// SetTheme заменяет тему приложения
func (s *GalleryService) SetTheme(ctx context.Context, theme models.AppTheme) error {
	const op = "service.GalleryService.SetTheme"

	if err := theme.Validate(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Theme = theme
	s.persist(ctx, repository.KeyAppTheme, s.state.Theme)

	s.log.Info("theme changed",
		slog.String("op", op),
		slog.String("theme", theme.Name),
		slog.Bool("custom", theme.IsCustom()),
	)

	return nil
}

// SetHomeCustomization заменяет настройки главной; размытие приводится к 0..20
func (s *GalleryService) SetHomeCustomization(ctx context.Context, c models.HomeCustomization) models.HomeCustomization {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Customization = c.Normalize()
	s.persist(ctx, repository.KeyHomeCustomization, s.state.Customization)

	return s.state.Customization.Normalize()
}

// SetCustomFont заменяет имя пользовательского шрифта; пустая строка сбрасывает его
func (s *GalleryService) SetCustomFont(ctx context.Context, font string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.CustomFont = strings.TrimSpace(font)
	s.persist(ctx, repository.KeyCustomFont, s.state.CustomFont)
}

func (s *GalleryService) Albums() []models.Album {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Album, len(s.state.Albums))
	for i, album := range s.state.Albums {
		out[i] = album.Clone()
	}

	return out
}

// AlbumsByCategory возвращает альбомы выбранной категории в порядке создания
func (s *GalleryService) AlbumsByCategory(category models.Category) []models.Album {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Album{}
	for _, album := range s.state.Albums {
		if album.Category == category {
			out = append(out, album.Clone())
		}
	}

	return out
}

func (s *GalleryService) Album(albumID string) (models.Album, error) {
	const op = "service.GalleryService.Album"

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(albumID)
	if idx < 0 {
		return models.Album{}, fmt.Errorf("%s: %w", op, models.ErrAlbumNotFound)
	}

	return s.state.Albums[idx].Clone(), nil
}

func (s *GalleryService) Theme() models.AppTheme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Theme
}

func (s *GalleryService) HomeCustomization() models.HomeCustomization {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Customization.Normalize()
}

func (s *GalleryService) CustomFont() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.CustomFont
}

func (s *GalleryService) PredefinedThemes() []models.AppTheme {
	return models.PredefinedThemes()
}

// Snapshot возвращает копию всего состояния
func (s *GalleryService) Snapshot() models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

// Restore загружает сохраненное состояние. Отсутствующие или поврежденные
// значения заменяются значениями по умолчанию.
func (s *GalleryService) Restore(ctx context.Context) {
	const op = "service.GalleryService.Restore"

	state := models.DefaultAppState()

	if albums, ok := repository.Load[[]models.Album](ctx, s.store, repository.KeyAlbums); ok && albums != nil {
		state.Albums = albums
	}
	if theme, ok := repository.Load[models.AppTheme](ctx, s.store, repository.KeyAppTheme); ok && theme.Validate() == nil {
		state.Theme = theme
	}
	if c, ok := repository.Load[models.HomeCustomization](ctx, s.store, repository.KeyHomeCustomization); ok {
		state.Customization = c.Normalize()
	}
	if font, ok := repository.Load[string](ctx, s.store, repository.KeyCustomFont); ok {
		state.CustomFont = font
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.log.Info("state restored",
		slog.String("op", op),
		slog.Int("albums", len(state.Albums)),
		slog.String("theme", state.Theme.Name),
	)
}

// Replace полностью заменяет состояние и сохраняет все его части
func (s *GalleryService) Replace(ctx context.Context, state models.AppState) {
	const op = "service.GalleryService.Replace"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = state.Clone()
	if s.state.Theme.Validate() != nil {
		s.state.Theme = models.DefaultTheme()
	}

	s.persistAlbums(ctx)
	s.persist(ctx, repository.KeyAppTheme, s.state.Theme)
	s.persist(ctx, repository.KeyHomeCustomization, s.state.Customization)
	s.persist(ctx, repository.KeyCustomFont, s.state.CustomFont)

	s.log.Info("state replaced",
		slog.String("op", op),
		slog.Int("albums", len(s.state.Albums)),
	)
}

// indexOf вызывается под s.mu
func (s *GalleryService) indexOf(albumID string) int {
	for i := range s.state.Albums {
		if s.state.Albums[i].ID == albumID {
			return i
		}
	}
	return -1
}

func (s *GalleryService) persistAlbums(ctx context.Context) {
	s.persist(ctx, repository.KeyAlbums, s.state.Albums)
}

func (s *GalleryService) persist(ctx context.Context, key string, value any) {
	if err := s.store.Save(ctx, key, value); err != nil {
		s.log.Warn("failed to persist state",
			slog.String("key", key),
			sl.Err(err),
		)
	}
}

func (s *GalleryService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func validateAlbum(a models.Album) error {
	switch {
	case a.Title == "":
		return &models.ValidationError{Field: "title", Reason: "is required"}
	case !a.Category.Valid():
		return &models.ValidationError{Field: "category", Reason: fmt.Sprintf("unknown category %q", a.Category)}
	case !a.Theme.Valid():
		return &models.ValidationError{Field: "theme", Reason: fmt.Sprintf("unknown theme %q", a.Theme)}
	case !a.Font.Valid():
		return &models.ValidationError{Field: "font", Reason: fmt.Sprintf("unknown font %q", a.Font)}
	case !a.Layout.Valid():
		return &models.ValidationError{Field: "layout", Reason: fmt.Sprintf("unknown layout %q", a.Layout)}
	}
	return nil
}

// newID возвращает UUIDv7: метка времени в миллисекундах и случайная часть
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func orDefault[T ~string](value, def T) T {
	if value == "" {
		return def
	}
	return value
}
