package dto

import "gallery_shallery/internal/domain/models"

type CredentialsRequest struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
}

type ConnectRequest struct {
	Code string `json:"code"`
}

// CloudStatusResponse описывает состояние подключения к облаку
type CloudStatusResponse struct {
	State      string `json:"state"`
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
}

type RemoteBackupsResponse struct {
	Backups []models.RemoteBackup `json:"backups"`
}

type UploadResponse struct {
	Backup models.RemoteBackup `json:"backup"`
}

type ImportResponse struct {
	Albums     int    `json:"albums"`
	ExportDate string `json:"exportDate"`
	Version    string `json:"version"`
}
