package dto

type CustomColors struct {
	Primary   string `json:"primary" validate:"required"`
	Secondary string `json:"secondary" validate:"required"`
	Accent    string `json:"accent" validate:"required"`
}

// SetThemeRequest выбирает тему. Если заданы только имя и нет цветов,
// берется встроенная тема с этим именем.
type SetThemeRequest struct {
	Name            string        `json:"name" validate:"required"`
	PrimaryColor    string        `json:"primaryColor"`
	BackgroundColor string        `json:"backgroundColor"`
	AccentColor     string        `json:"accentColor"`
	CustomColors    *CustomColors `json:"customColors" validate:"omitempty"`
}

// HasStyle сообщает, переданы ли стилевые токены или палитра
func (r SetThemeRequest) HasStyle() bool {
	return r.CustomColors != nil || r.PrimaryColor != "" || r.BackgroundColor != "" || r.AccentColor != ""
}

type SetFontRequest struct {
	Font string `json:"font"`
}

type FontResponse struct {
	Font string `json:"font"`
}
