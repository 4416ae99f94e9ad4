package dto

// CreateAlbumRequest входные данные для создания альбома.
// Пустые category/theme/font/layout заменяются значениями по умолчанию.
type CreateAlbumRequest struct {
	Title      string `json:"title" validate:"required"`
	Category   string `json:"category" validate:"omitempty,oneof=clicks travel personal custom"`
	Theme      string `json:"theme" validate:"omitempty,oneof=comic-noir pastel-doodle sticker-burst neon-pop vintage-sketch kawaii-burst"`
	Font       string `json:"font" validate:"omitempty,oneof=handwritten typewriter bubble google-font"`
	GoogleFont string `json:"googleFont"`
	Layout     string `json:"layout" validate:"omitempty,oneof=panel vertical grid collage circular"`
}

// UpdateAlbumRequest заменяет редактируемые поля альбома; фотографии и дата создания не меняются
type UpdateAlbumRequest struct {
	Title      string `json:"title" validate:"required"`
	Category   string `json:"category" validate:"required,oneof=clicks travel personal custom"`
	Theme      string `json:"theme" validate:"required,oneof=comic-noir pastel-doodle sticker-burst neon-pop vintage-sketch kawaii-burst"`
	Font       string `json:"font" validate:"required,oneof=handwritten typewriter bubble google-font"`
	GoogleFont string `json:"googleFont"`
	Layout     string `json:"layout" validate:"required,oneof=panel vertical grid collage circular"`
	IsFavorite bool   `json:"isFavorite"`
}

// AddPhotoRequest данные новой фотографии. Date принимается в ISO-8601.
type AddPhotoRequest struct {
	URL       string   `json:"url" validate:"required"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Location  string   `json:"location"`
	Backstory string   `json:"backstory"`
	Stickers  []string `json:"stickers"`
}
