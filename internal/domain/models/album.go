package models

import (
	"encoding/json"
	"time"

	"gallery_shallery/internal/lib/hydrate"
)

type Category string

type AlbumTheme string

type Font string

type Layout string

const (
	CategoryClicks   Category = "clicks"
	CategoryTravel   Category = "travel"
	CategoryPersonal Category = "personal"
	CategoryCustom   Category = "custom"
)

const (
	AlbumThemeComicNoir     AlbumTheme = "comic-noir"
	AlbumThemePastelDoodle  AlbumTheme = "pastel-doodle"
	AlbumThemeStickerBurst  AlbumTheme = "sticker-burst"
	AlbumThemeNeonPop       AlbumTheme = "neon-pop"
	AlbumThemeVintageSketch AlbumTheme = "vintage-sketch"
	AlbumThemeKawaiiBurst   AlbumTheme = "kawaii-burst"
)

const (
	FontHandwritten Font = "handwritten"
	FontTypewriter  Font = "typewriter"
	FontBubble      Font = "bubble"
	FontGoogle      Font = "google-font"
)

const (
	LayoutPanel    Layout = "panel"
	LayoutVertical Layout = "vertical"
	LayoutGrid     Layout = "grid"
	LayoutCollage  Layout = "collage"
	LayoutCircular Layout = "circular"
)

// Значения по умолчанию при создании альбома
const (
	DefaultCategory   = CategoryClicks
	DefaultAlbumTheme = AlbumThemePastelDoodle
	DefaultFont       = FontHandwritten
	DefaultLayout     = LayoutGrid
)

// Album представляет собой тематический альбом с фотографиями
type Album struct {
	ID         string     `json:"id"`                   // Уникальный идентификатор альбома
	Title      string     `json:"title"`                // Заголовок альбома
	Category   Category   `json:"category"`             // Категория (clicks, travel, personal, custom)
	Theme      AlbumTheme `json:"theme"`                // Визуальная тема альбома
	Font       Font       `json:"font"`                 // Шрифт заголовка
	GoogleFont string     `json:"googleFont,omitempty"` // Имя внешнего шрифта для font=google-font
	Layout     Layout     `json:"layout"`               // Раскладка фотографий
	Photos     []Photo    `json:"photos"`               // Фотографии в порядке добавления
	CreatedAt  *time.Time `json:"createdAt,omitempty"`  // Дата создания (nil, если не удалось разобрать)
	IsFavorite bool       `json:"isFavorite,omitempty"` // Отмечен ли альбом как избранный
}

// Photo представляет фотографию внутри альбома
type Photo struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	Title     string     `json:"title,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	Location  string     `json:"location,omitempty"`
	Backstory string     `json:"backstory,omitempty"`
	Stickers  []string   `json:"stickers"`
}

// albumJSON повторяет Album, но даты читаются как сырые значения,
// чтобы некорректная дата не ломала разбор всего документа
type albumJSON struct {
	ID         string          `json:"id"`
	Title      string          `json:"title"`
	Category   Category        `json:"category"`
	Theme      AlbumTheme      `json:"theme"`
	Font       Font            `json:"font"`
	GoogleFont string          `json:"googleFont"`
	Layout     Layout          `json:"layout"`
	Photos     []Photo         `json:"photos"`
	CreatedAt  json.RawMessage `json:"createdAt"`
	IsFavorite bool            `json:"isFavorite"`
}

type photoJSON struct {
	ID        string          `json:"id"`
	URL       string          `json:"url"`
	Title     string          `json:"title"`
	Date      json.RawMessage `json:"date"`
	Location  string          `json:"location"`
	Backstory string          `json:"backstory"`
	Stickers  []string        `json:"stickers"`
}

// UnmarshalJSON восстанавливает альбом; неразборчивая дата создания отбрасывается
func (a *Album) UnmarshalJSON(data []byte) error {
	var raw albumJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = Album{
		ID:         raw.ID,
		Title:      raw.Title,
		Category:   raw.Category,
		Theme:      raw.Theme,
		Font:       raw.Font,
		GoogleFont: raw.GoogleFont,
		Layout:     raw.Layout,
		Photos:     raw.Photos,
		CreatedAt:  hydrate.OptionalTime(raw.CreatedAt),
		IsFavorite: raw.IsFavorite,
	}
	if a.Photos == nil {
		a.Photos = []Photo{}
	}

	return nil
}

// UnmarshalJSON восстанавливает фотографию; неразборчивая дата съемки отбрасывается
func (p *Photo) UnmarshalJSON(data []byte) error {
	var raw photoJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Photo{
		ID:        raw.ID,
		URL:       raw.URL,
		Title:     raw.Title,
		Date:      hydrate.OptionalTime(raw.Date),
		Location:  raw.Location,
		Backstory: raw.Backstory,
		Stickers:  raw.Stickers,
	}
	if p.Stickers == nil {
		p.Stickers = []string{}
	}

	return nil
}

// Clone возвращает глубокую копию альбома, чтобы вызывающий код не мог
// изменить состояние в обход сервиса
func (a Album) Clone() Album {
	out := a
	if a.CreatedAt != nil {
		t := *a.CreatedAt
		out.CreatedAt = &t
	}
	out.Photos = make([]Photo, len(a.Photos))
	for i, p := range a.Photos {
		out.Photos[i] = p.Clone()
	}

	return out
}

func (p Photo) Clone() Photo {
	out := p
	if p.Date != nil {
		t := *p.Date
		out.Date = &t
	}
	out.Stickers = append([]string{}, p.Stickers...)

	return out
}

func (c Category) Valid() bool {
	switch c {
	case CategoryClicks, CategoryTravel, CategoryPersonal, CategoryCustom:
		return true
	}
	return false
}

func (t AlbumTheme) Valid() bool {
	switch t {
	case AlbumThemeComicNoir, AlbumThemePastelDoodle, AlbumThemeStickerBurst,
		AlbumThemeNeonPop, AlbumThemeVintageSketch, AlbumThemeKawaiiBurst:
		return true
	}
	return false
}

func (f Font) Valid() bool {
	switch f {
	case FontHandwritten, FontTypewriter, FontBubble, FontGoogle:
		return true
	}
	return false
}

func (l Layout) Valid() bool {
	switch l {
	case LayoutPanel, LayoutVertical, LayoutGrid, LayoutCollage, LayoutCircular:
		return true
	}
	return false
}
