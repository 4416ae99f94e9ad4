package models

const (
	MinBlurIntensity = 0
	MaxBlurIntensity = 20
)

// HomeCustomization настройки главной страницы, одна на приложение
type HomeCustomization struct {
	BackgroundImage string   `json:"backgroundImage,omitempty"` // Фоновое изображение (data URI или URL)
	BlurIntensity   int      `json:"blurIntensity"`             // Размытие фона, 0..20
	CustomEmojis    []string `json:"customEmojis"`              // Декоративные символы
	ShowDecorations bool     `json:"showDecorations"`           // Показывать ли декорации
}

// DefaultHomeCustomization возвращает настройки по умолчанию
func DefaultHomeCustomization() HomeCustomization {
	return HomeCustomization{
		BlurIntensity:   MinBlurIntensity,
		CustomEmojis:    []string{},
		ShowDecorations: true,
	}
}

// Normalize приводит размытие к допустимому диапазону и заменяет nil-срез пустым
func (h HomeCustomization) Normalize() HomeCustomization {
	if h.BlurIntensity < MinBlurIntensity {
		h.BlurIntensity = MinBlurIntensity
	}
	if h.BlurIntensity > MaxBlurIntensity {
		h.BlurIntensity = MaxBlurIntensity
	}
	h.CustomEmojis = append([]string{}, h.CustomEmojis...)

	return h
}
