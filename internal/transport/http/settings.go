package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/transport/http/dto"
	"gallery_shallery/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

// GetTheme godoc
// @Summary Текущая тема приложения
// @Tags settings
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/settings/theme [get]
func (r *Routers) GetTheme(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.GalleryService.Theme()))
}

// ListThemes godoc
// @Summary Встроенные темы
// @Tags settings
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1/settings/themes [get]
func (r *Routers) ListThemes(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.GalleryService.PredefinedThemes()))
}

// SetTheme godoc
// @Summary Выбор темы
// @Description Только имя выбирает встроенную тему; customColors задает свою палитру
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.SetThemeRequest true "Тема"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse
// @Router /api/v1/settings/theme [put]
func (r *Routers) SetTheme(c echo.Context) error {
	const op = "http.routers.SetTheme"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SetThemeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}
	if err := c.Validate(req); err != nil {
		return r.errorResponse(c, log, err)
	}

	theme, err := themeFromRequest(req)
	if err != nil {
		return r.errorResponse(c, log, err)
	}

	if err := r.GalleryService.SetTheme(c.Request().Context(), theme); err != nil {
		return r.errorResponse(c, log, err)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(theme))
}

func themeFromRequest(req dto.SetThemeRequest) (models.AppTheme, error) {
	if !req.HasStyle() {
		theme, ok := models.FindPredefinedTheme(req.Name)
		if !ok {
			return models.AppTheme{}, &models.ValidationError{
				Field:  "name",
				Reason: fmt.Sprintf("unknown predefined theme %q", req.Name),
			}
		}
		return theme, nil
	}

	base := models.PresetStyle{
		PrimaryColor:    req.PrimaryColor,
		BackgroundColor: req.BackgroundColor,
		AccentColor:     req.AccentColor,
	}
	if req.CustomColors != nil {
		return models.NewCustomTheme(req.Name, base, req.CustomColors.Primary, req.CustomColors.Secondary, req.CustomColors.Accent), nil
	}

	return models.AppTheme{Name: req.Name, Variant: base}, nil
}

// GetCustomization godoc
// @Summary Настройки главной страницы
// @Tags settings
// @Produce json
// @Success 200 {object} response.Response{data=models.HomeCustomization}
// @Router /api/v1/settings/customization [get]
func (r *Routers) GetCustomization(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(r.GalleryService.HomeCustomization()))
}

// SetCustomization godoc
// @Summary Изменение настроек главной
// @Description Размытие приводится к диапазону 0..20
// @Tags settings
// @Accept json
// @Produce json
// @Param request body models.HomeCustomization true "Настройки"
// @Success 200 {object} response.Response{data=models.HomeCustomization}
// @Router /api/v1/settings/customization [put]
func (r *Routers) SetCustomization(c echo.Context) error {
	var req models.HomeCustomization
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	saved := r.GalleryService.SetHomeCustomization(c.Request().Context(), req)

	return c.JSON(http.StatusOK, response.SuccessResponse(saved))
}

// GetFont godoc
// @Summary Пользовательский шрифт
// @Tags settings
// @Produce json
// @Success 200 {object} response.Response{data=dto.FontResponse}
// @Router /api/v1/settings/font [get]
func (r *Routers) GetFont(c echo.Context) error {
	return c.JSON(http.StatusOK, response.SuccessResponse(dto.FontResponse{Font: r.GalleryService.CustomFont()}))
}

// SetFont godoc
// @Summary Изменение пользовательского шрифта
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.SetFontRequest true "Имя шрифта; пустое сбрасывает"
// @Success 200 {object} response.Response{data=dto.FontResponse}
// @Router /api/v1/settings/font [put]
func (r *Routers) SetFont(c echo.Context) error {
	var req dto.SetFontRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	r.GalleryService.SetCustomFont(c.Request().Context(), req.Font)

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.FontResponse{Font: r.GalleryService.CustomFont()}))
}
