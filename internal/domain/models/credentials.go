package models

// CloudCredentials идентификатор клиента и API-ключ облачного хранилища
type CloudCredentials struct {
	ClientID string `json:"client_id"`
	APIKey   string `json:"api_key"`
}

// Complete сообщает, заданы ли оба значения
func (c CloudCredentials) Complete() bool {
	return c.ClientID != "" && c.APIKey != ""
}
