package http

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"gallery_shallery/internal/transport/http/dto"
	"gallery_shallery/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ExportBackup godoc
// @Summary Скачать резервную копию
// @Description JSON-файл со всеми альбомами, темой, настройками и шрифтом
// @Tags backup
// @Produce json
// @Success 200 {file} file "gallery-shallery-backup-YYYY-MM-DD.json"
// @Failure 500 {object} response.ErrorResponse
// @Router /api/v1/backup/export [get]
func (r *Routers) ExportBackup(c echo.Context) error {
	const op = "http.routers.ExportBackup"

	log := r.log.With(
		slog.String("op", op),
	)

	data, err := r.BackupService.ExportBundle(r.GalleryService.Snapshot())
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", r.BackupService.FileName()))

	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, data)
}

// ImportBackup godoc
// @Summary Восстановить из резервной копии
// @Description Принимает файл (multipart, поле file) или JSON в теле. Текущее состояние полностью заменяется.
// @Tags backup
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "Файл резервной копии"
// @Success 200 {object} response.Response{data=dto.ImportResponse}
// @Failure 400 {object} response.ErrorResponse "Поврежденная резервная копия"
// @Router /api/v1/backup/import [post]
func (r *Routers) ImportBackup(c echo.Context) error {
	const op = "http.routers.ImportBackup"

	log := r.log.With(
		slog.String("op", op),
	)

	var src io.Reader = c.Request().Body

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm) {
		file, err := c.FormFile("file")
		if err != nil {
			log.Warn("empty file in request", slog.String("error", err.Error()))
			return c.JSON(http.StatusBadRequest, response.ErrorResponseWithDetails(response.CodeInvalidRequest, "file is required"))
		}

		f, err := file.Open()
		if err != nil {
			return r.errorResponse(c, log, err)
		}
		defer f.Close()

		log.Debug("got backup file", slog.String("filename", file.Filename), slog.Int64("size", file.Size))
		src = f
	}

	bundle, err := r.BackupService.ImportReader(src)
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	r.BackupService.ApplyBundle(c.Request().Context(), bundle, r.GalleryService)

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ImportResponse{
		Albums:     len(bundle.Albums),
		ExportDate: bundle.ExportDate,
		Version:    bundle.Version,
	}))
}

// SaveLocalBackup godoc
// @Summary Сохранить резервную копию на сервере
// @Tags backup
// @Produce json
// @Success 201 {object} response.Response
// @Router /api/v1/backup/local [post]
func (r *Routers) SaveLocalBackup(c echo.Context) error {
	const op = "http.routers.SaveLocalBackup"

	name, size, err := r.BackupService.SaveLocal(c.Request().Context(), r.GalleryService.Snapshot())
	if err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(map[string]any{"file": name, "size": size}))
}

// ListLocalBackups godoc
// @Summary Резервные копии на сервере
// @Tags backup
// @Produce json
// @Success 200 {object} response.Response{data=[]string}
// @Router /api/v1/backup/local [get]
func (r *Routers) ListLocalBackups(c echo.Context) error {
	const op = "http.routers.ListLocalBackups"

	names, err := r.BackupService.ListLocal(c.Request().Context())
	if err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}
	if names == nil {
		names = []string{}
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(names))
}

// RestoreLocalBackup godoc
// @Summary Восстановить из копии на сервере
// @Description Текущее состояние полностью заменяется содержимым файла из каталога копий
// @Tags backup
// @Produce json
// @Param name path string true "Имя файла"
// @Success 200 {object} response.Response{data=dto.ImportResponse}
// @Failure 400 {object} response.ErrorResponse "Поврежденная копия или недопустимое имя"
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/backup/local/{name}/restore [post]
func (r *Routers) RestoreLocalBackup(c echo.Context) error {
	const op = "http.routers.RestoreLocalBackup"

	log := r.log.With(
		slog.String("op", op),
		slog.String("file", c.Param("name")),
	)

	bundle, err := r.BackupService.ImportFile(c.Request().Context(), c.Param("name"))
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	r.BackupService.ApplyBundle(c.Request().Context(), bundle, r.GalleryService)

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.ImportResponse{
		Albums:     len(bundle.Albums),
		ExportDate: bundle.ExportDate,
		Version:    bundle.Version,
	}))
}

// DeleteLocalBackup godoc
// @Summary Удалить копию на сервере
// @Tags backup
// @Param name path string true "Имя файла"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/backup/local/{name} [delete]
func (r *Routers) DeleteLocalBackup(c echo.Context) error {
	const op = "http.routers.DeleteLocalBackup"

	if err := r.BackupService.DeleteLocal(c.Request().Context(), c.Param("name")); err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}
