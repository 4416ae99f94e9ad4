package storage

import (
	"context"
	"errors"
	"fmt"

	"gallery_shallery/internal/domain/models"
)

var (
	ErrKeyNotFound = errors.New("key not found")
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFileName = errors.New("invalid file name")
	ErrObjectNotFound  = errors.New("remote object not found")
)

// CloudDrive облачный диск для резервных копий
type CloudDrive interface {
	Name() string
	SignIn(ctx context.Context, creds models.CloudCredentials) (CloudSession, error)
}

// CloudSession авторизованное подключение к облачному диску
type CloudSession interface {
	Upload(ctx context.Context, name string, data []byte) (models.RemoteBackup, error)
	List(ctx context.Context, prefix string) ([]models.RemoteBackup, error)
	Download(ctx context.Context, id string) ([]byte, error)
}

// Authorizer реализуют диски, которым для входа нужен код авторизации пользователя
type Authorizer interface {
	AuthURL(creds models.CloudCredentials, state string) string
}

// AuthRequiredError возвращается при входе без кода авторизации;
// пользователя нужно отправить по URL
type AuthRequiredError struct {
	URL string
}

func (e *AuthRequiredError) Error() string {
	return fmt.Sprintf("authorization required: %s", e.URL)
}

type authCodeKey struct{}

// WithAuthCode передает код авторизации в SignIn
func WithAuthCode(ctx context.Context, code string) context.Context {
	return context.WithValue(ctx, authCodeKey{}, code)
}

// AuthCode достает код авторизации из контекста
func AuthCode(ctx context.Context) string {
	code, _ := ctx.Value(authCodeKey{}).(string)
	return code
}
