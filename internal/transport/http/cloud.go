package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/storage"
	"gallery_shallery/internal/transport/http/dto"
	"gallery_shallery/internal/transport/http/dto/response"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName   = "gallery_session"
	oauthStateKey = "oauth_state"
)

// SetCloudCredentials godoc
// @Summary Учетные данные облачного диска
// @Description Сохраняет client id и API key; сеть не используется
// @Tags cloud
// @Accept json
// @Produce json
// @Param request body dto.CredentialsRequest true "Учетные данные"
// @Success 200 {object} response.Response{data=dto.CloudStatusResponse}
// @Router /api/v1/cloud/credentials [put]
func (r *Routers) SetCloudCredentials(c echo.Context) error {
	var req dto.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	r.CloudService.Configure(c.Request().Context(), req.ClientID, req.APIKey)

	return c.JSON(http.StatusOK, response.SuccessResponse(r.cloudStatus()))
}

// CloudStatus godoc
// @Summary Состояние подключения к облаку
// @Tags cloud
// @Produce json
// @Success 200 {object} response.Response{data=dto.CloudStatusResponse}
// @Router /api/v1/cloud/status [get]
func (r *Routers) CloudStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.cloudStatus()))
}

// ConnectCloud godoc
// @Summary Вход в облачный диск
// @Description Для Google Drive нужен код авторизации; без него вернется 401 с адресом авторизации,
// @Description state которого уже сохранен в cookie-сессии для /cloud/callback
// @Tags cloud
// @Accept json
// @Produce json
// @Param request body dto.ConnectRequest false "Код авторизации"
// @Success 200 {object} response.Response{data=dto.CloudStatusResponse}
// @Failure 401 {object} response.ErrorResponse "Нужна авторизация"
// @Failure 412 {object} response.ErrorResponse "Нет учетных данных"
// @Failure 502 {object} response.ErrorResponse "Ошибка подключения"
// @Router /api/v1/cloud/connect [post]
func (r *Routers) ConnectCloud(c echo.Context) error {
	const op = "http.routers.ConnectCloud"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ConnectRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
		}
	}

	ctx := c.Request().Context()
	if req.Code != "" {
		ctx = storage.WithAuthCode(ctx, req.Code)
	}

	if err := r.CloudService.Connect(ctx); err != nil {
		var authErr *storage.AuthRequiredError
		if errors.As(err, &authErr) {
			authURL, authzErr := r.beginAuthorization(c, log)
			if authzErr != nil {
				return r.errorResponse(c, log, authzErr)
			}
			authErr.URL = authURL
		}
		return r.errorResponse(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(r.cloudStatus()))
}

// AuthorizeCloud godoc
// @Summary Начать OAuth-авторизацию
// @Description Перенаправляет на страницу согласия провайдера
// @Tags cloud
// @Success 302
// @Failure 412 {object} response.ErrorResponse "Нет учетных данных"
// @Router /api/v1/cloud/authorize [get]
func (r *Routers) AuthorizeCloud(c echo.Context) error {
	const op = "http.routers.AuthorizeCloud"

	log := r.log.With(
		slog.String("op", op),
	)

	authURL, err := r.beginAuthorization(c, log)
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	return c.Redirect(http.StatusFound, authURL)
}

// beginAuthorization запоминает новый state в cookie-сессии и возвращает адрес согласия с этим state
func (r *Routers) beginAuthorization(c echo.Context, log *slog.Logger) (string, error) {
	state := uuid.NewString()

	authURL, err := r.CloudService.AuthURL(state)
	if err != nil {
		return "", err
	}

	sess, err := session.Get(sessionName, c)
	if sess == nil {
		return "", err
	}
	if err != nil {
		log.Warn("broken session cookie, starting a new one", slog.String("error", err.Error()))
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values[oauthStateKey] = state
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return "", err
	}

	return authURL, nil
}

// CloudCallback godoc
// @Summary Завершение OAuth-авторизации
// @Tags cloud
// @Produce json
// @Param state query string true "OAuth state"
// @Param code query string true "Код авторизации"
// @Success 200 {object} response.Response{data=dto.CloudStatusResponse}
// @Failure 400 {object} response.ErrorResponse "state не совпадает"
// @Router /api/v1/cloud/callback [get]
func (r *Routers) CloudCallback(c echo.Context) error {
	const op = "http.routers.CloudCallback"

	log := r.log.With(
		slog.String("op", op),
	)

	sess, err := session.Get(sessionName, c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidOAuthState)
	}

	expected, _ := sess.Values[oauthStateKey].(string)
	if expected == "" || expected != c.QueryParam("state") {
		log.Warn("oauth state mismatch")
		return c.JSON(http.StatusBadRequest, response.ErrInvalidOAuthState)
	}

	delete(sess.Values, oauthStateKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return r.errorResponse(c, log, err)
	}

	if denied := c.QueryParam("error"); denied != "" {
		return c.JSON(http.StatusBadGateway, response.ErrorResponseWithDetails(response.CodeConnectionFailed, denied))
	}

	ctx := storage.WithAuthCode(c.Request().Context(), c.QueryParam("code"))
	if err := r.CloudService.Connect(ctx); err != nil {
		return r.errorResponse(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(r.cloudStatus()))
}

// DisconnectCloud godoc
// @Summary Выход из облачного диска
// @Description Учетные данные сохраняются; повторный вызов безопасен
// @Tags cloud
// @Produce json
// @Success 200 {object} response.Response{data=dto.CloudStatusResponse}
// @Router /api/v1/cloud/disconnect [post]
func (r *Routers) DisconnectCloud(c echo.Context) error {
	r.CloudService.Disconnect()

	return c.JSON(http.StatusOK, response.SuccessResponse(r.cloudStatus()))
}

// UploadCloudBackup godoc
// @Summary Загрузить текущее состояние в облако
// @Tags cloud
// @Produce json
// @Success 201 {object} response.Response{data=dto.UploadResponse}
// @Failure 409 {object} response.ErrorResponse "Нет входа в облако"
// @Failure 502 {object} response.ErrorResponse "Ошибка загрузки"
// @Router /api/v1/cloud/upload [post]
func (r *Routers) UploadCloudBackup(c echo.Context) error {
	const op = "http.routers.UploadCloudBackup"

	bundle := models.NewBackupBundle(r.GalleryService.Snapshot(), time.Now())

	backup, err := r.CloudService.Upload(c.Request().Context(), bundle)
	if err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(dto.UploadResponse{Backup: backup}))
}

// ListCloudBackups godoc
// @Summary Резервные копии в облаке
// @Tags cloud
// @Produce json
// @Success 200 {object} response.Response{data=dto.RemoteBackupsResponse}
// @Failure 409 {object} response.ErrorResponse "Нет входа в облако"
// @Router /api/v1/cloud/backups [get]
func (r *Routers) ListCloudBackups(c echo.Context) error {
	const op = "http.routers.ListCloudBackups"

	backups, err := r.CloudService.List(c.Request().Context())
	if err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.RemoteBackupsResponse{Backups: backups}))
}

// RestoreCloudBackup godoc
// @Summary Восстановить из облачной копии
// @Description Скачивает копию и полностью заменяет текущее состояние
// @Tags cloud
// @Produce json
// @Param id path string true "ID копии"
// @Success 200 {object} response.Response{data=dto.ImportResponse}
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Нет входа в облако"
// @Router /api/v1/cloud/backups/{id}/restore [post]
func (r *Routers) RestoreCloudBackup(c echo.Context) error {
	const op = "http.routers.RestoreCloudBackup"

	log := r.log.With(
		slog.String("op", op),
		slog.String("backup_id", c.Param("id")),
	)

	bundle, err := r.CloudService.Download(c.Request().Context(), c.Param("id"))
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	r.BackupService.ApplyBundle(c.Request().Context(), bundle, r.GalleryService)
	log.Info("restored from cloud backup", slog.Int("albums", len(bundle.Albums)))

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ImportResponse{
		Albums:     len(bundle.Albums),
		ExportDate: bundle.ExportDate,
		Version:    bundle.Version,
	}))
}

func (r *Routers) cloudStatus() dto.CloudStatusResponse {
	return dto.CloudStatusResponse{
		State:      string(r.CloudService.State()),
		Provider:   r.CloudService.Provider(),
		Configured: r.CloudService.Credentials().Complete(),
	}
}
