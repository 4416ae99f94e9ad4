package http

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/lib/logger/sl"
	"gallery_shallery/internal/lib/validate"
	backupservice "gallery_shallery/internal/services/backup_service"
	cloudservice "gallery_shallery/internal/services/cloud_service"
	"gallery_shallery/internal/storage"
	"gallery_shallery/internal/transport/http/dto"
	"gallery_shallery/internal/transport/http/dto/response"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	_ "gallery_shallery/docs"
)

type GalleryService interface {
	CreateAlbum(ctx context.Context, req dto.CreateAlbumRequest) (models.Album, error)
	AddPhoto(ctx context.Context, albumID string, req dto.AddPhotoRequest) (models.Photo, error)
	RemovePhoto(ctx context.Context, albumID, photoID string) error
	ToggleFavorite(ctx context.Context, albumID string) (models.Album, error)
	DeleteAlbum(ctx context.Context, albumID string) error
	UpdateAlbum(ctx context.Context, album models.Album) (models.Album, error)
	SetTheme(ctx context.Context, theme models.AppTheme) error
	SetHomeCustomization(ctx context.Context, c models.HomeCustomization) models.HomeCustomization
	SetCustomFont(ctx context.Context, font string)
	Albums() []models.Album
	AlbumsByCategory(category models.Category) []models.Album
	Album(albumID string) (models.Album, error)
	Theme() models.AppTheme
	HomeCustomization() models.HomeCustomization
	CustomFont() string
	PredefinedThemes() []models.AppTheme
	Snapshot() models.AppState
	Replace(ctx context.Context, state models.AppState)
}

type BackupService interface {
	ExportBundle(state models.AppState) ([]byte, error)
	ImportReader(r io.Reader) (*models.BackupBundle, error)
	ApplyBundle(ctx context.Context, bundle *models.BackupBundle, gallery backupservice.Gallery)
	FileName() string
	SaveLocal(ctx context.Context, state models.AppState) (string, int64, error)
	ImportFile(ctx context.Context, name string) (*models.BackupBundle, error)
	DeleteLocal(ctx context.Context, name string) error
	ListLocal(ctx context.Context) ([]string, error)
}

type CloudService interface {
	Configure(ctx context.Context, clientID, apiKey string) cloudservice.State
	Connect(ctx context.Context) error
	AuthURL(state string) (string, error)
	Disconnect() cloudservice.State
	Upload(ctx context.Context, bundle models.BackupBundle) (models.RemoteBackup, error)
	List(ctx context.Context) ([]models.RemoteBackup, error)
	Download(ctx context.Context, id string) (*models.BackupBundle, error)
	State() cloudservice.State
	Credentials() models.CloudCredentials
	Provider() string
}

type Routers struct {
	log            *slog.Logger
	GalleryService GalleryService
	BackupService  BackupService
	CloudService   CloudService
}

func NewRouter(log *slog.Logger, galleryService GalleryService, backupService BackupService, cloudService CloudService) *Routers {
	return &Routers{
		log:            log,
		GalleryService: galleryService,
		BackupService:  backupService,
		CloudService:   cloudService,
	}
}

// CustomValidator подключает go-playground/validator к echo
type CustomValidator struct {
	validator *validator.Validate
}

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{validator: validate.New()}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return validate.AsValidationError(cv.validator.Struct(i))
}

// Health godoc
// @Summary Проверка работоспособности
// @Tags service
// @Produce json
// @Success 200 {object} response.Response
// @Router /health [get]
func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.MessageResponse("ok"))
}

// errorResponse переводит ошибку сервиса в HTTP-статус и код ответа
func (r *Routers) errorResponse(c echo.Context, log *slog.Logger, err error) error {
	status, code := classify(err)

	details := err.Error()
	var authErr *storage.AuthRequiredError
	if errors.As(err, &authErr) {
		details = authErr.URL
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", slog.Int("status", status), sl.Err(err))
	} else {
		log.Warn("request rejected", slog.Int("status", status), sl.Err(err))
	}

	return c.JSON(status, response.ErrorResponseWithDetails(code, details))
}

func classify(err error) (int, string) {
	var authErr *storage.AuthRequiredError

	switch {
	case models.IsValidationError(err):
		return http.StatusBadRequest, response.CodeValidationFailed
	case errors.Is(err, models.ErrAlbumNotFound),
		errors.Is(err, models.ErrPhotoNotFound),
		errors.Is(err, storage.ErrObjectNotFound),
		errors.Is(err, storage.ErrFileNotFound):
		return http.StatusNotFound, response.CodeNotFound
	case errors.Is(err, storage.ErrInvalidFileName):
		return http.StatusBadRequest, response.CodeInvalidRequest
	case errors.Is(err, backupservice.ErrMalformedBackup):
		return http.StatusBadRequest, response.CodeMalformedBackup
	case errors.Is(err, cloudservice.ErrMissingCredentials):
		return http.StatusPreconditionFailed, response.CodeMissingCredentials
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, response.CodeAuthorizationRequired
	case errors.Is(err, cloudservice.ErrNotSignedIn):
		return http.StatusConflict, response.CodeNotSignedIn
	case errors.Is(err, cloudservice.ErrAuthNotSupported):
		return http.StatusBadRequest, response.CodeInvalidRequest
	case errors.Is(err, cloudservice.ErrUpload):
		return http.StatusBadGateway, response.CodeUploadFailed
	case errors.Is(err, cloudservice.ErrConnection):
		return http.StatusBadGateway, response.CodeConnectionFailed
	default:
		return http.StatusInternalServerError, response.CodeInternal
	}
}
