package models

import (
	"encoding/json"
	"fmt"
)

// AppTheme общая тема приложения. Имя служит ключом темы при выборе и сравнении.
// Вариант темы всегда ровно один: набор стилевых токенов или явная палитра.
type AppTheme struct {
	Name    string
	Variant ThemeVariant
}

// ThemeVariant закрытый набор вариантов темы: PresetStyle или CustomPalette
type ThemeVariant interface {
	isThemeVariant()
}

// PresetStyle набор стилевых токенов предопределенной темы
type PresetStyle struct {
	PrimaryColor    string
	BackgroundColor string
	AccentColor     string
}

// CustomPalette явные цвета, заданные пользователем.
// Base хранит стилевые токены, которые записываются рядом с палитрой.
type CustomPalette struct {
	Base      PresetStyle
	Primary   string
	Secondary string
	Accent    string
}

func (PresetStyle) isThemeVariant()   {}
func (CustomPalette) isThemeVariant() {}

type customColorsJSON struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

type appThemeJSON struct {
	Name            string            `json:"name"`
	PrimaryColor    string            `json:"primaryColor"`
	BackgroundColor string            `json:"backgroundColor"`
	AccentColor     string            `json:"accentColor"`
	CustomColors    *customColorsJSON `json:"customColors,omitempty"`
}

// NewPresetTheme создает тему со стилевыми токенами
func NewPresetTheme(name, primary, background, accent string) AppTheme {
	return AppTheme{
		Name: name,
		Variant: PresetStyle{
			PrimaryColor:    primary,
			BackgroundColor: background,
			AccentColor:     accent,
		},
	}
}

// NewCustomTheme создает тему с явной палитрой поверх базовых токенов
func NewCustomTheme(name string, base PresetStyle, primary, secondary, accent string) AppTheme {
	return AppTheme{
		Name: name,
		Variant: CustomPalette{
			Base:      base,
			Primary:   primary,
			Secondary: secondary,
			Accent:    accent,
		},
	}
}

// IsCustom сообщает, задана ли у темы явная палитра
func (t AppTheme) IsCustom() bool {
	_, ok := t.Variant.(CustomPalette)
	return ok
}

// Validate проверяет, что у темы есть имя и ровно один вариант
func (t AppTheme) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Reason: "theme name is required"}
	}

	switch t.Variant.(type) {
	case PresetStyle, CustomPalette:
		return nil
	default:
		return &ValidationError{Field: "variant", Reason: "theme must be either preset style or custom colors"}
	}
}

func (t AppTheme) MarshalJSON() ([]byte, error) {
	out := appThemeJSON{Name: t.Name}

	switch v := t.Variant.(type) {
	case PresetStyle:
		out.PrimaryColor = v.PrimaryColor
		out.BackgroundColor = v.BackgroundColor
		out.AccentColor = v.AccentColor
	case CustomPalette:
		out.PrimaryColor = v.Base.PrimaryColor
		out.BackgroundColor = v.Base.BackgroundColor
		out.AccentColor = v.Base.AccentColor
		out.CustomColors = &customColorsJSON{
			Primary:   v.Primary,
			Secondary: v.Secondary,
			Accent:    v.Accent,
		}
	default:
		return nil, fmt.Errorf("theme %q has no variant", t.Name)
	}

	return json.Marshal(out)
}

func (t *AppTheme) UnmarshalJSON(data []byte) error {
	var raw appThemeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	base := PresetStyle{
		PrimaryColor:    raw.PrimaryColor,
		BackgroundColor: raw.BackgroundColor,
		AccentColor:     raw.AccentColor,
	}

	if raw.CustomColors != nil {
		*t = NewCustomTheme(raw.Name, base, raw.CustomColors.Primary, raw.CustomColors.Secondary, raw.CustomColors.Accent)
		return nil
	}

	*t = AppTheme{Name: raw.Name, Variant: base}
	return nil
}

// PredefinedThemes возвращает каталог встроенных тем
func PredefinedThemes() []AppTheme {
	return []AppTheme{
		NewPresetTheme("Comic Classic", "from-yellow-100 via-pink-50 to-purple-100", "bg-white", "from-pink-500 to-purple-600"),
		NewPresetTheme("Dark Mode", "from-gray-900 via-purple-900 to-black", "bg-gray-800", "from-purple-500 to-pink-500"),
		NewPresetTheme("Ocean Breeze", "from-blue-100 via-cyan-50 to-teal-100", "bg-white", "from-blue-500 to-cyan-500"),
		NewPresetTheme("Sunset Vibes", "from-orange-100 via-red-50 to-pink-100", "bg-white", "from-orange-500 to-red-500"),
		NewPresetTheme("Forest Green", "from-green-100 via-emerald-50 to-teal-100", "bg-white", "from-green-500 to-emerald-500"),
	}
}

// DefaultTheme тема, которая действует до первого выбора пользователя
func DefaultTheme() AppTheme {
	return PredefinedThemes()[0]
}

// FindPredefinedTheme ищет встроенную тему по имени
func FindPredefinedTheme(name string) (AppTheme, bool) {
	for _, theme := range PredefinedThemes() {
		if theme.Name == name {
			return theme, true
		}
	}
	return AppTheme{}, false
}
