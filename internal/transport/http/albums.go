package http

import (
	"log/slog"
	"net/http"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/transport/http/dto"
	"gallery_shallery/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// ListAlbums godoc
// @Summary Список альбомов
// @Description Возвращает альбомы в порядке создания, опционально по категории
// @Tags albums
// @Produce json
// @Param category query string false "Категория" Enums(clicks, travel, personal, custom)
// @Success 200 {object} response.Response{data=[]models.Album}
// @Router /api/v1/albums [get]
func (r *Routers) ListAlbums(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		return c.JSON(http.StatusOK, response.SuccessResponse(r.GalleryService.Albums()))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(r.GalleryService.AlbumsByCategory(models.Category(category))))
}

// CreateAlbum godoc
// @Summary Создание альбома
// @Tags albums
// @Accept json
// @Produce json
// @Param request body dto.CreateAlbumRequest true "Данные альбома"
// @Success 201 {object} response.Response{data=models.Album}
// @Failure 400 {object} response.ErrorResponse "Неверные данные альбома"
// @Router /api/v1/albums [post]
func (r *Routers) CreateAlbum(c echo.Context) error {
	const op = "http.routers.CreateAlbum"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.CreateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	album, err := r.GalleryService.CreateAlbum(c.Request().Context(), req)
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(album))
}

// GetAlbum godoc
// @Summary Альбом по ID
// @Tags albums
// @Produce json
// @Param id path string true "ID альбома"
// @Success 200 {object} response.Response{data=models.Album}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/albums/{id} [get]
func (r *Routers) GetAlbum(c echo.Context) error {
	const op = "http.routers.GetAlbum"

	album, err := r.GalleryService.Album(c.Param("id"))
	if err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(album))
}

// UpdateAlbum godoc
// @Summary Изменение альбома
// @Description Заменяет редактируемые поля; фотографии и дата создания сохраняются
// @Tags albums
// @Accept json
// @Produce json
// @Param id path string true "ID альбома"
// @Param request body dto.UpdateAlbumRequest true "Новые значения"
// @Success 200 {object} response.Response{data=models.Album}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/albums/{id} [put]
func (r *Routers) UpdateAlbum(c echo.Context) error {
	const op = "http.routers.UpdateAlbum"

	log := r.log.With(
		slog.String("op", op),
		slog.String("album_id", c.Param("id")),
	)

	var req dto.UpdateAlbumRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return r.errorResponse(c, log, err)
	}

	album, err := r.GalleryService.UpdateAlbum(c.Request().Context(), models.Album{
		ID:         c.Param("id"),
		Title:      req.Title,
		Category:   models.Category(req.Category),
		Theme:      models.AlbumTheme(req.Theme),
		Font:       models.Font(req.Font),
		GoogleFont: req.GoogleFont,
		Layout:     models.Layout(req.Layout),
		IsFavorite: req.IsFavorite,
	})
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(album))
}

// DeleteAlbum godoc
// @Summary Удаление альбома
// @Tags albums
// @Param id path string true "ID альбома"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/albums/{id} [delete]
func (r *Routers) DeleteAlbum(c echo.Context) error {
	const op = "http.routers.DeleteAlbum"

	if err := r.GalleryService.DeleteAlbum(c.Request().Context(), c.Param("id")); err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleFavorite godoc
// @Summary Переключить "избранное"
// @Tags albums
// @Produce json
// @Param id path string true "ID альбома"
// @Success 200 {object} response.Response{data=models.Album}
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/albums/{id}/favorite [post]
func (r *Routers) ToggleFavorite(c echo.Context) error {
	const op = "http.routers.ToggleFavorite"

	album, err := r.GalleryService.ToggleFavorite(c.Request().Context(), c.Param("id"))
	if err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(album))
}

// AddPhoto godoc
// @Summary Добавление фотографии
// @Tags photos
// @Accept json
// @Produce json
// @Param id path string true "ID альбома"
// @Param request body dto.AddPhotoRequest true "Фотография"
// @Success 201 {object} response.Response{data=models.Photo}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/albums/{id}/photos [post]
func (r *Routers) AddPhoto(c echo.Context) error {
	const op = "http.routers.AddPhoto"

	log := r.log.With(
		slog.String("op", op),
		slog.String("album_id", c.Param("id")),
	)

	var req dto.AddPhotoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	photo, err := r.GalleryService.AddPhoto(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	return c.JSON(http.StatusCreated, response.SuccessResponse(photo))
}

// RemovePhoto godoc
// @Summary Удаление фотографии
// @Tags photos
// @Param id path string true "ID альбома"
// @Param photo_id path string true "ID фотографии"
// @Success 204
// @Failure 404 {object} response.ErrorResponse
// @Router /api/v1/albums/{id}/photos/{photo_id} [delete]
func (r *Routers) RemovePhoto(c echo.Context) error {
	const op = "http.routers.RemovePhoto"

	err := r.GalleryService.RemovePhoto(c.Request().Context(), c.Param("id"), c.Param("photo_id"))
	if err != nil {
		return r.errorResponse(c, r.log.With(slog.String("op", op)), err)
	}

	return c.NoContent(http.StatusNoContent)
}
