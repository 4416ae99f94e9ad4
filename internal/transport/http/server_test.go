package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"

	httpapp "gallery_shallery/internal/app/http"
	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/repository"
	backupservice "gallery_shallery/internal/services/backup_service"
	cloudservice "gallery_shallery/internal/services/cloud_service"
	galleryservice "gallery_shallery/internal/services/gallery_service"
	"gallery_shallery/internal/storage"
	filestorage "gallery_shallery/internal/storage/filestorage"
	memoryapp "gallery_shallery/internal/storage/memory"
	httprouters "gallery_shallery/internal/transport/http"
	"gallery_shallery/internal/transport/http/dto"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/suite"
)

const goodCode = "good-code"

// fakeDrive хранит загруженные копии в памяти и требует код авторизации, как Google Drive
type fakeDrive struct {
	mu      sync.Mutex
	seq     int
	objects map[string]models.RemoteBackup
	data    map[string][]byte
}

func newFakeDrive() *fakeDrive {
	return &fakeDrive{
		objects: map[string]models.RemoteBackup{},
		data:    map[string][]byte{},
	}
}

func (d *fakeDrive) Name() string {
	return "fake"
}

func (d *fakeDrive) AuthURL(creds models.CloudCredentials, state string) string {
	return "https://auth.example/consent?client_id=" + url.QueryEscape(creds.ClientID) + "&state=" + url.QueryEscape(state)
}

func (d *fakeDrive) SignIn(ctx context.Context, creds models.CloudCredentials) (storage.CloudSession, error) {
	switch storage.AuthCode(ctx) {
	case "":
		return nil, &storage.AuthRequiredError{URL: d.AuthURL(creds, "")}
	case goodCode:
		return d, nil
	default:
		return nil, errors.New("invalid_grant")
	}
}

func (d *fakeDrive) Upload(_ context.Context, name string, data []byte) (models.RemoteBackup, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	backup := models.RemoteBackup{ID: fmt.Sprintf("obj-%d", d.seq), Name: name, Size: int64(len(data))}
	d.objects[backup.ID] = backup
	d.data[backup.ID] = append([]byte{}, data...)

	return backup, nil
}

func (d *fakeDrive) List(_ context.Context, prefix string) ([]models.RemoteBackup, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.RemoteBackup
	for _, b := range d.objects {
		if strings.HasPrefix(b.Name, prefix) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })

	return out, nil
}

func (d *fakeDrive) Download(_ context.Context, id string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	data, ok := d.data[id]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Details string          `json:"details"`
}

type ServerSuite struct {
	suite.Suite

	handler http.Handler
	gallery *galleryservice.GalleryService
	drive   *fakeDrive
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) SetupTest() {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	store := repository.NewStateRepository(log, repository.NewMemoryKVRepo(memoryapp.NewClient()))

	files, err := filestorage.NewLocalFileStorage(s.T().TempDir())
	s.Require().NoError(err)

	s.drive = newFakeDrive()
	s.gallery = galleryservice.NewGalleryService(log, store)
	backup := backupservice.NewBackupService(log, files)
	cloud := cloudservice.NewCloudService(log, s.drive, store, backup)

	server := httpapp.New(log, "localhost", "0", "test-secret", httprouters.NewRouter(log, s.gallery, backup, cloud))
	server.BuildRouters()
	s.handler = server.Handler()
}

func (s *ServerSuite) do(method, target string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		data, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	return rec
}

func (s *ServerSuite) decode(rec *httptest.ResponseRecorder, data any) envelope {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	if data != nil {
		s.Require().NoError(json.Unmarshal(env.Data, data))
	}
	return env
}

func (s *ServerSuite) createAlbum(title string) models.Album {
	rec := s.do(http.MethodPost, "/api/v1/albums", dto.CreateAlbumRequest{Title: title, Category: "travel"})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var album models.Album
	s.decode(rec, &album)
	return album
}

func (s *ServerSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", s.decode(rec, nil).Message)
}

func (s *ServerSuite) TestAlbumLifecycle() {
	title := gofakeit.Sentence(3)
	album := s.createAlbum(title)
	s.Equal(title, album.Title)
	s.Equal(models.CategoryTravel, album.Category)
	s.Equal(models.DefaultLayout, album.Layout)

	rec := s.do(http.MethodPost, "/api/v1/albums/"+album.ID+"/photos", dto.AddPhotoRequest{
		URL:      gofakeit.URL(),
		Location: gofakeit.City(),
		Date:     "2024-06-01T12:00:00Z",
		Stickers: []string{"⭐", "⭐"},
	})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var photo models.Photo
	s.decode(rec, &photo)
	s.Require().NotNil(photo.Date)

	rec = s.do(http.MethodPost, "/api/v1/albums/"+album.ID+"/favorite", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var toggled models.Album
	s.decode(rec, &toggled)
	s.True(toggled.IsFavorite)

	rec = s.do(http.MethodGet, "/api/v1/albums?category=personal", nil)
	var filtered []models.Album
	s.decode(rec, &filtered)
	s.Empty(filtered)

	rec = s.do(http.MethodPut, "/api/v1/albums/"+album.ID, dto.UpdateAlbumRequest{
		Title:    "Renamed",
		Category: "personal",
		Theme:    "neon-pop",
		Font:     "bubble",
		Layout:   "collage",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Album
	s.decode(rec, &updated)
	s.Equal("Renamed", updated.Title)
	s.Len(updated.Photos, 1, "photos survive an update")

	rec = s.do(http.MethodDelete, "/api/v1/albums/"+album.ID+"/photos/"+photo.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/albums/"+album.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/albums/"+album.ID, nil)
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("not_found", s.decode(rec, nil).Error)
}

func (s *ServerSuite) TestAlbumErrors() {
	tests := []struct {
		name   string
		method string
		target string
		body   any
		status int
		code   string
	}{
		{"missing title", http.MethodPost, "/api/v1/albums", dto.CreateAlbumRequest{}, http.StatusBadRequest, "validation_failed"},
		{"unknown category", http.MethodPost, "/api/v1/albums", dto.CreateAlbumRequest{Title: "x", Category: "food"}, http.StatusBadRequest, "validation_failed"},
		{"broken json", http.MethodPost, "/api/v1/albums", `{"title":`, http.StatusBadRequest, "invalid_request"},
		{"photo for unknown album", http.MethodPost, "/api/v1/albums/nope/photos", dto.AddPhotoRequest{URL: "data:x"}, http.StatusNotFound, "not_found"},
		{"toggle unknown album", http.MethodPost, "/api/v1/albums/nope/favorite", nil, http.StatusNotFound, "not_found"},
		{"update with bad layout", http.MethodPut, "/api/v1/albums/nope", dto.UpdateAlbumRequest{
			Title: "x", Category: "travel", Theme: "neon-pop", Font: "bubble", Layout: "spiral",
		}, http.StatusBadRequest, "validation_failed"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rec := s.do(tt.method, tt.target, tt.body)
			s.Equal(tt.status, rec.Code, rec.Body.String())
			s.Equal(tt.code, s.decode(rec, nil).Error)
		})
	}
}

func (s *ServerSuite) TestSettings() {
	rec := s.do(http.MethodPut, "/api/v1/settings/theme", dto.SetThemeRequest{Name: "Dark Mode"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("Dark Mode", s.gallery.Theme().Name)

	rec = s.do(http.MethodPut, "/api/v1/settings/theme", dto.SetThemeRequest{Name: "Nope"})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, "/api/v1/settings/theme", dto.SetThemeRequest{
		Name:         "Mine",
		CustomColors: &dto.CustomColors{Primary: "#111111", Secondary: "#222222", Accent: "#333333"},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.True(s.gallery.Theme().IsCustom())

	rec = s.do(http.MethodGet, "/api/v1/settings/themes", nil)
	var themes []json.RawMessage
	s.decode(rec, &themes)
	s.Len(themes, len(models.PredefinedThemes()))

	rec = s.do(http.MethodPut, "/api/v1/settings/customization", models.HomeCustomization{BlurIntensity: 35, CustomEmojis: []string{"🎈"}})
	s.Require().Equal(http.StatusOK, rec.Code)
	var custom models.HomeCustomization
	s.decode(rec, &custom)
	s.Equal(models.MaxBlurIntensity, custom.BlurIntensity)

	rec = s.do(http.MethodPut, "/api/v1/settings/font", dto.SetFontRequest{Font: "  Lobster "})
	var font dto.FontResponse
	s.decode(rec, &font)
	s.Equal("Lobster", font.Font)
}

func (s *ServerSuite) TestBackupExportImport() {
	s.createAlbum("Trip")
	s.createAlbum("Beach")

	rec := s.do(http.MethodGet, "/api/v1/backup/export", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get("Content-Disposition"), "gallery-shallery-backup-")
	s.Contains(rec.Body.String(), "\n  \"albums\"")
	exported := rec.Body.String()

	s.createAlbum("Extra")
	s.Len(s.gallery.Albums(), 3)

	rec = s.do(http.MethodPost, "/api/v1/backup/import", exported)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var imported dto.ImportResponse
	s.decode(rec, &imported)
	s.Equal(2, imported.Albums)
	s.Equal(models.BackupVersion, imported.Version)
	s.Len(s.gallery.Albums(), 2)

	rec = s.do(http.MethodPost, "/api/v1/backup/import", `{"version":"1.0"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("malformed_backup", s.decode(rec, nil).Error)
	s.Len(s.gallery.Albums(), 2, "failed import leaves state untouched")
}

func (s *ServerSuite) TestBackupImportMultipart() {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", "backup.json")
	s.Require().NoError(err)
	_, err = io.WriteString(part, `{"albums":[{"id":"a1","title":"Old","category":"clicks","photos":[]}],"customFont":"Pacifico"}`)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/backup/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Equal("Pacifico", s.gallery.CustomFont())
	s.Equal(models.DefaultTheme().Name, s.gallery.Theme().Name)
	s.Require().Len(s.gallery.Albums(), 1)
	s.Equal("Old", s.gallery.Albums()[0].Title)
}

func (s *ServerSuite) TestLocalBackups() {
	s.createAlbum("Trip")

	rec := s.do(http.MethodPost, "/api/v1/backup/local", nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, "/api/v1/backup/local", nil)
	var names []string
	s.decode(rec, &names)
	s.Require().Len(names, 1)
	s.True(strings.HasPrefix(names[0], backupservice.FilePrefix))
}

func (s *ServerSuite) TestLocalBackupRestoreDelete() {
	s.createAlbum("Trip")

	rec := s.do(http.MethodPost, "/api/v1/backup/local", nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var saved struct {
		File string `json:"file"`
	}
	s.decode(rec, &saved)
	s.Require().NotEmpty(saved.File)

	s.createAlbum("Party")
	s.Len(s.gallery.Albums(), 2)

	rec = s.do(http.MethodPost, "/api/v1/backup/local/"+saved.File+"/restore", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var imported dto.ImportResponse
	s.decode(rec, &imported)
	s.Equal(1, imported.Albums)
	s.Require().Len(s.gallery.Albums(), 1)
	s.Equal("Trip", s.gallery.Albums()[0].Title)

	rec = s.do(http.MethodPost, "/api/v1/backup/local/missing.json/restore", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/backup/local/..", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid_request", s.decode(rec, nil).Error)

	rec = s.do(http.MethodDelete, "/api/v1/backup/local/"+saved.File, nil)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/api/v1/backup/local/"+saved.File, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/backup/local", nil)
	var names []string
	s.decode(rec, &names)
	s.Empty(names)
}

func (s *ServerSuite) TestCloudConnectStartsAuthorization() {
	s.do(http.MethodPut, "/api/v1/cloud/credentials", dto.CredentialsRequest{ClientID: "client", APIKey: "key"})

	rec := s.do(http.MethodPost, "/api/v1/cloud/connect", nil)
	s.Require().Equal(http.StatusUnauthorized, rec.Code)
	env := s.decode(rec, nil)
	s.Equal("authorization_required", env.Error)

	consent, err := url.Parse(env.Details)
	s.Require().NoError(err)
	state := consent.Query().Get("state")
	s.Require().NotEmpty(state)
	cookies := rec.Result().Cookies()
	s.Require().NotEmpty(cookies)

	rec = s.do(http.MethodGet, "/api/v1/cloud/callback?state="+url.QueryEscape(state)+"&code="+goodCode, nil, cookies...)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var status dto.CloudStatusResponse
	s.decode(rec, &status)
	s.Equal("signed-in", status.State)
}

func (s *ServerSuite) TestCloudRequiresSetup() {
	rec := s.do(http.MethodPost, "/api/v1/cloud/upload", nil)
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("not_signed_in", s.decode(rec, nil).Error)

	rec = s.do(http.MethodPost, "/api/v1/cloud/connect", nil)
	s.Equal(http.StatusPreconditionFailed, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/cloud/authorize", nil)
	s.Equal(http.StatusPreconditionFailed, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/cloud/status", nil)
	var status dto.CloudStatusResponse
	s.decode(rec, &status)
	s.Equal("uninitialized", status.State)
	s.False(status.Configured)
}

func (s *ServerSuite) TestCloudConnectWithCode() {
	rec := s.do(http.MethodPut, "/api/v1/cloud/credentials", dto.CredentialsRequest{ClientID: "client", APIKey: "key"})
	s.Require().Equal(http.StatusOK, rec.Code)
	var status dto.CloudStatusResponse
	s.decode(rec, &status)
	s.Equal("configured", status.State)

	rec = s.do(http.MethodPost, "/api/v1/cloud/connect", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(s.decode(rec, nil).Details, "https://auth.example/consent")

	rec = s.do(http.MethodPost, "/api/v1/cloud/connect", dto.ConnectRequest{Code: "stale"})
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Equal("connection_failed", s.decode(rec, nil).Error)

	rec = s.do(http.MethodPost, "/api/v1/cloud/connect", dto.ConnectRequest{Code: goodCode})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &status)
	s.Equal("signed-in", status.State)
	s.Equal("fake", status.Provider)
}

func (s *ServerSuite) TestCloudOAuthFlow() {
	s.do(http.MethodPut, "/api/v1/cloud/credentials", dto.CredentialsRequest{ClientID: "client", APIKey: "key"})

	rec := s.do(http.MethodGet, "/api/v1/cloud/authorize", nil)
	s.Require().Equal(http.StatusFound, rec.Code, rec.Body.String())

	location, err := url.Parse(rec.Header().Get("Location"))
	s.Require().NoError(err)
	state := location.Query().Get("state")
	s.Require().NotEmpty(state)
	cookies := rec.Result().Cookies()
	s.Require().NotEmpty(cookies)

	rec = s.do(http.MethodGet, "/api/v1/cloud/callback?state=forged&code="+goodCode, nil, cookies...)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("invalid_oauth_state", s.decode(rec, nil).Error)

	rec = s.do(http.MethodGet, "/api/v1/cloud/callback?state="+state+"&code="+goodCode, nil)
	s.Equal(http.StatusBadRequest, rec.Code, "callback without session cookie")

	rec = s.do(http.MethodGet, "/api/v1/cloud/callback?state="+state+"&code="+goodCode, nil, cookies...)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var status dto.CloudStatusResponse
	s.decode(rec, &status)
	s.Equal("signed-in", status.State)
}

func (s *ServerSuite) TestCloudUploadListRestore() {
	s.do(http.MethodPut, "/api/v1/cloud/credentials", dto.CredentialsRequest{ClientID: "client", APIKey: "key"})
	s.Require().Equal(http.StatusOK, s.do(http.MethodPost, "/api/v1/cloud/connect", dto.ConnectRequest{Code: goodCode}).Code)

	s.createAlbum("Trip")

	rec := s.do(http.MethodPost, "/api/v1/cloud/upload", nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var uploaded dto.UploadResponse
	s.decode(rec, &uploaded)
	s.True(strings.HasPrefix(uploaded.Backup.Name, backupservice.FilePrefix))

	rec = s.do(http.MethodGet, "/api/v1/cloud/backups", nil)
	var listed dto.RemoteBackupsResponse
	s.decode(rec, &listed)
	s.Require().Len(listed.Backups, 1)
	s.Equal(uploaded.Backup.ID, listed.Backups[0].ID)

	s.createAlbum("Beach")
	s.Len(s.gallery.Albums(), 2)

	rec = s.do(http.MethodPost, "/api/v1/cloud/backups/"+uploaded.Backup.ID+"/restore", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.Require().Len(s.gallery.Albums(), 1)
	s.Equal("Trip", s.gallery.Albums()[0].Title)

	rec = s.do(http.MethodPost, "/api/v1/cloud/backups/missing/restore", nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPost, "/api/v1/cloud/disconnect", nil)
	var status dto.CloudStatusResponse
	s.decode(rec, &status)
	s.Equal("configured", status.State)

	rec = s.do(http.MethodGet, "/api/v1/cloud/backups", nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *ServerSuite) TestMetricsEndpoint() {
	s.do(http.MethodGet, "/health", nil)

	rec := s.do(http.MethodGet, "/metrics", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "gallery_http_requests_total")
}
