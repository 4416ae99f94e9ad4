package models

import "time"

const BackupVersion = "1.0"

// BackupBundle переносимый снимок состояния приложения.
// Поля JSON должны совпадать с форматом файлов, которые уже есть у пользователей.
type BackupBundle struct {
	Albums            []Album            `json:"albums"`
	AppTheme          *AppTheme          `json:"appTheme,omitempty"`
	HomeCustomization *HomeCustomization `json:"homeCustomization,omitempty"`
	CustomFont        string             `json:"customFont"`
	ExportDate        string             `json:"exportDate"`
	Version           string             `json:"version"`
}

// NewBackupBundle собирает снимок из текущего состояния
func NewBackupBundle(state AppState, exportedAt time.Time) BackupBundle {
	snapshot := state.Clone()

	return BackupBundle{
		Albums:            snapshot.Albums,
		AppTheme:          &snapshot.Theme,
		HomeCustomization: &snapshot.Customization,
		CustomFont:        snapshot.CustomFont,
		ExportDate:        exportedAt.UTC().Format(time.RFC3339Nano),
		Version:           BackupVersion,
	}
}

// State превращает снимок в состояние приложения.
// Отсутствующие тема и настройки главной заменяются значениями по умолчанию.
func (b BackupBundle) State() AppState {
	state := DefaultAppState()

	state.Albums = make([]Album, len(b.Albums))
	for i, album := range b.Albums {
		state.Albums[i] = album.Clone()
	}
	if b.AppTheme != nil && b.AppTheme.Validate() == nil {
		state.Theme = *b.AppTheme
	}
	if b.HomeCustomization != nil {
		state.Customization = b.HomeCustomization.Normalize()
	}
	state.CustomFont = b.CustomFont

	return state
}

// RemoteBackup описывает резервную копию в облачном хранилище
type RemoteBackup struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	Size      int64     `json:"size,omitempty"`
}
