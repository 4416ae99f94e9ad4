package gdrive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/storage"

	"golang.org/x/oauth2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	ProviderName = "gdrive"

	// DriveFileScope дает доступ только к файлам, созданным приложением
	DriveFileScope = "https://www.googleapis.com/auth/drive.file"

	DefaultAuthURL    = "https://accounts.google.com/o/oauth2/auth"
	DefaultTokenURL   = "https://oauth2.googleapis.com/token"
	DefaultAPIBaseURL = "https://www.googleapis.com"

	fileFields = "id,name,createdTime,size"
	pageSize   = 100
	backupMime = "application/json"
)

type Config struct {
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	APIBaseURL   string
	HTTPClient   *http.Client
}

// Drive Google Drive через OAuth2 и клиент drive/v3
type Drive struct {
	cfg Config
}

func New(cfg Config) *Drive {
	if cfg.AuthURL == "" {
		cfg.AuthURL = DefaultAuthURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	return &Drive{cfg: cfg}
}

func (d *Drive) Name() string {
	return ProviderName
}

func (d *Drive) oauthConfig(creds models.CloudCredentials) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: d.cfg.ClientSecret,
		RedirectURL:  d.cfg.RedirectURL,
		Scopes:       []string{DriveFileScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:   d.cfg.AuthURL,
			TokenURL:  d.cfg.TokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

// AuthURL возвращает адрес страницы согласия Google
func (d *Drive) AuthURL(creds models.CloudCredentials, state string) string {
	return d.oauthConfig(creds).AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// SignIn обменивает код авторизации из контекста на токен и проверяет доступ к диску.
// Без кода возвращается *storage.AuthRequiredError, state в адресе заполняет вызывающий.
func (d *Drive) SignIn(ctx context.Context, creds models.CloudCredentials) (storage.CloudSession, error) {
	const op = "gdrive.Drive.SignIn"

	code := storage.AuthCode(ctx)
	if code == "" {
		return nil, &storage.AuthRequiredError{URL: d.AuthURL(creds, "")}
	}

	conf := d.oauthConfig(creds)

	token, err := conf.Exchange(context.WithValue(ctx, oauth2.HTTPClient, d.cfg.HTTPClient), code)
	if err != nil {
		return nil, fmt.Errorf("%s: exchange code: %w", op, err)
	}

	// клиент живет дольше запроса, поэтому обновление токена идет не через ctx
	clientCtx := context.WithValue(context.Background(), oauth2.HTTPClient, d.cfg.HTTPClient)

	svc, err := drive.NewService(clientCtx,
		option.WithHTTPClient(conf.Client(clientCtx, token)),
		option.WithEndpoint(d.cfg.APIBaseURL+"/drive/v3/"),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: new service: %w", op, err)
	}

	s := &Session{
		svc: svc,
		// WithAPIKey не действует вместе с WithHTTPClient, ключ идет параметром вызова
		key: googleapi.QueryParameter("key", creds.APIKey),
	}

	if _, err := s.svc.About.Get().Fields("user").Context(ctx).Do(s.key); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// Session авторизованный клиент Drive API
type Session struct {
	svc *drive.Service
	key googleapi.CallOption
}

func backupFromFile(f *drive.File) models.RemoteBackup {
	backup := models.RemoteBackup{
		ID:   f.Id,
		Name: f.Name,
		Size: f.Size,
	}
	if created, err := time.Parse(time.RFC3339, f.CreatedTime); err == nil {
		backup.CreatedAt = created.UTC()
	}

	return backup
}

// Upload создает файл, небольшое содержимое уходит одним multipart-запросом
func (s *Session) Upload(ctx context.Context, name string, data []byte) (models.RemoteBackup, error) {
	const op = "gdrive.Session.Upload"

	file, err := s.svc.Files.Create(&drive.File{Name: name, MimeType: backupMime}).
		Media(bytes.NewReader(data), googleapi.ContentType(backupMime)).
		Fields(fileFields).
		Context(ctx).
		Do(s.key)
	if err != nil {
		return models.RemoteBackup{}, fmt.Errorf("%s: %w", op, err)
	}

	return backupFromFile(file), nil
}

// List возвращает файлы, имя которых начинается с prefix, новые первыми
func (s *Session) List(ctx context.Context, prefix string) ([]models.RemoteBackup, error) {
	const op = "gdrive.Session.List"

	call := s.svc.Files.List().
		Q(fmt.Sprintf("name contains '%s' and trashed = false", escapeQuery(prefix))).
		OrderBy("createdTime desc").
		Spaces("drive").
		Fields(googleapi.Field("nextPageToken, files(" + fileFields + ")")).
		PageSize(pageSize).
		Context(ctx)

	backups := make([]models.RemoteBackup, 0)
	// Pages не передает параметры вызова, поэтому страницы листаем сами
	for {
		list, err := call.Do(s.key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for _, f := range list.Files {
			// "contains" в Drive ищет по словам, префикс проверяем сами
			if strings.HasPrefix(f.Name, prefix) {
				backups = append(backups, backupFromFile(f))
			}
		}

		if list.NextPageToken == "" {
			return backups, nil
		}
		call.PageToken(list.NextPageToken)
	}
}

// Download читает содержимое файла
func (s *Session) Download(ctx context.Context, id string) ([]byte, error) {
	const op = "gdrive.Session.Download"

	resp, err := s.svc.Files.Get(id).Context(ctx).Download(s.key)
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
			return nil, fmt.Errorf("%s: %s: %w", op, id, storage.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}

func escapeQuery(s string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(s)
}
