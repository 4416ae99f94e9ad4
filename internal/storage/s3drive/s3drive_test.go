package s3drive

import (
	"context"
	"encoding/xml"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBucket = "gallery"

var testCreds = models.CloudCredentials{ClientID: "AKIDTEST", APIKey: "secret"}

type object struct {
	data     []byte
	modified time.Time
}

// fakeS3 минимальный S3 с path-style адресацией
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]object
	clock   time.Time
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !strings.Contains(r.Header.Get("Authorization"), "Credential="+testCreds.ClientID+"/") {
		writeError(w, http.StatusForbidden, "InvalidAccessKeyId")
		return
	}

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if bucket != testBucket {
		writeError(w, http.StatusNotFound, "NoSuchBucket")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case key == "" && r.Method == http.MethodHead:
		w.WriteHeader(http.StatusOK)

	case key == "" && r.Method == http.MethodGet:
		f.list(w, r.URL.Query().Get("prefix"))

	case r.Method == http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		f.clock = f.clock.Add(time.Minute)
		f.objects[key] = object{data: data, modified: f.clock}
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)

	case r.Method == http.MethodHead || r.Method == http.MethodGet:
		obj, ok := f.objects[key]
		if !ok {
			if r.Method == http.MethodHead {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			writeError(w, http.StatusNotFound, "NoSuchKey")
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(obj.data)))
		w.Header().Set("Last-Modified", obj.modified.Format(http.TimeFormat))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodGet {
			_, _ = w.Write(obj.data)
		}

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeS3) list(w http.ResponseWriter, prefix string) {
	type content struct {
		Key          string `xml:"Key"`
		LastModified string `xml:"LastModified"`
		Size         int    `xml:"Size"`
	}
	type result struct {
		XMLName     xml.Name  `xml:"ListBucketResult"`
		Name        string    `xml:"Name"`
		Prefix      string    `xml:"Prefix"`
		KeyCount    int       `xml:"KeyCount"`
		IsTruncated bool      `xml:"IsTruncated"`
		Contents    []content `xml:"Contents"`
	}

	out := result{Name: testBucket, Prefix: prefix}
	for key, obj := range f.objects {
		if strings.HasPrefix(key, prefix) {
			out.Contents = append(out.Contents, content{
				Key:          key,
				LastModified: obj.modified.UTC().Format("2006-01-02T15:04:05.000Z"),
				Size:         len(obj.data),
			})
		}
	}
	sort.Slice(out.Contents, func(i, j int) bool { return out.Contents[i].Key < out.Contents[j].Key })
	out.KeyCount = len(out.Contents)

	w.Header().Set("Content-Type", "application/xml")
	_ = xml.NewEncoder(w).Encode(out)
}

func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>`+code+`</Code><Message>`+code+`</Message></Error>`)
}

func newTestDrive(t *testing.T, bucket string) (*Drive, *fakeS3) {
	t.Helper()
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	fake := &fakeS3{
		objects: map[string]object{},
		clock:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	return New(Config{
		Endpoint:   srv.URL,
		Region:     "us-east-1",
		Bucket:     bucket,
		Prefix:     "backups",
		HTTPClient: srv.Client(),
	}), fake
}

func TestDrive_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		d, _ := newTestDrive(t, testBucket)
		session, err := d.SignIn(ctx, testCreds)
		require.NoError(t, err)
		assert.NotNil(t, session)
	})

	t.Run("unknown bucket", func(t *testing.T) {
		d, _ := newTestDrive(t, "other")
		_, err := d.SignIn(ctx, testCreds)
		assert.Error(t, err)
	})

	t.Run("wrong access key", func(t *testing.T) {
		d, _ := newTestDrive(t, testBucket)
		_, err := d.SignIn(ctx, models.CloudCredentials{ClientID: "AKIDOTHER", APIKey: "secret"})
		assert.Error(t, err)
	})
}

func TestSession_UploadListDownload(t *testing.T) {
	ctx := context.Background()
	d, fake := newTestDrive(t, testBucket)

	session, err := d.SignIn(ctx, testCreds)
	require.NoError(t, err)

	first, err := session.Upload(ctx, "gallery-shallery-backup-2024-05-01.json", []byte(`{"albums":[]}`))
	require.NoError(t, err)
	assert.Equal(t, "gallery-shallery-backup-2024-05-01.json", first.ID)
	assert.Equal(t, int64(len(`{"albums":[]}`)), first.Size)

	_, err = session.Upload(ctx, "gallery-shallery-backup-2024-05-02.json", []byte(`{"albums":[{"id":"a1"}]}`))
	require.NoError(t, err)

	fake.mu.Lock()
	_, stored := fake.objects["backups/gallery-shallery-backup-2024-05-01.json"]
	fake.objects["backups/notes.txt"] = object{data: []byte("x"), modified: fake.clock}
	fake.mu.Unlock()
	assert.True(t, stored, "objects are stored under the prefix")

	backups, err := session.List(ctx, "gallery-shallery-backup")
	require.NoError(t, err)
	require.Len(t, backups, 2)
	assert.Equal(t, "gallery-shallery-backup-2024-05-02.json", backups[0].Name)
	assert.Equal(t, "gallery-shallery-backup-2024-05-01.json", backups[1].Name)
	assert.True(t, backups[0].CreatedAt.After(backups[1].CreatedAt))

	data, err := session.Download(ctx, backups[0].ID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"albums":[{"id":"a1"}]}`, string(data))

	_, err = session.Download(ctx, "gallery-shallery-backup-1999-01-01.json")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)

	_, err = session.Download(ctx, "../secret")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}
