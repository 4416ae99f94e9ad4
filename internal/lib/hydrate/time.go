// Package hydrate восстанавливает отдельные поля из сохраненных JSON-документов.
// Ошибка разбора поля не считается ошибкой документа: поле просто становится пустым.
package hydrate

import (
	"encoding/json"
	"strings"
	"time"
)

// Форматы, которые встречаются в сохраненных данных: ISO-8601 из браузера
// (toISOString), RFC3339 без долей секунды и просто дата.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTime разбирает ISO-8601 строку. ok=false, если ни один формат не подошел.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// OptionalTime превращает сырое JSON-значение в дату или nil.
// null, отсутствующее поле, не-строка и неразборчивая строка дают nil.
func OptionalTime(raw json.RawMessage) *time.Time {
	if len(raw) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}

	t, ok := ParseTime(s)
	if !ok {
		return nil
	}

	return &t
}
