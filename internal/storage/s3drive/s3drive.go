package s3drive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"gallery_shallery/internal/domain/models"
	"gallery_shallery/internal/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const ProviderName = "s3"

type Config struct {
	Endpoint   string // пустой для AWS, иначе S3-совместимый сервер (path-style)
	Region     string
	Bucket     string
	Prefix     string
	HTTPClient *http.Client
}

// Drive хранит резервные копии в S3-бакете. Идентификатор клиента служит
// access key id, API-ключ служит secret access key.
type Drive struct {
	cfg Config
}

func New(cfg Config) *Drive {
	if cfg.Prefix != "" && !strings.HasSuffix(cfg.Prefix, "/") {
		cfg.Prefix += "/"
	}
	return &Drive{cfg: cfg}
}

func (d *Drive) Name() string {
	return ProviderName
}

// SignIn создает клиента и проверяет доступ к бакету через HeadBucket
func (d *Drive) SignIn(ctx context.Context, creds models.CloudCredentials) (storage.CloudSession, error) {
	const op = "s3drive.Drive.SignIn"

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(d.cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(creds.ClientID, creds.APIKey, "")),
		awsconfig.WithRetryMaxAttempts(1),
	}
	if d.cfg.HTTPClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(d.cfg.HTTPClient))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: load aws config: %w", op, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		// S3-совместимые серверы часто не поддерживают новые контрольные суммы
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
		o.ResponseChecksumValidation = aws.ResponseChecksumValidationWhenRequired
		if d.cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(d.cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(d.cfg.Bucket)}); err != nil {
		return nil, fmt.Errorf("%s: bucket %q: %w", op, d.cfg.Bucket, err)
	}

	return &Session{
		client: client,
		bucket: d.cfg.Bucket,
		prefix: d.cfg.Prefix,
	}, nil
}

type Session struct {
	client *s3.Client
	bucket string
	prefix string
}

func (s *Session) Upload(ctx context.Context, name string, data []byte) (models.RemoteBackup, error) {
	const op = "s3drive.Session.Upload"

	key := s.prefix + name

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentType:   aws.String("application/json"),
		ContentLength: aws.Int64(int64(len(data))),
	})
	if err != nil {
		return models.RemoteBackup{}, fmt.Errorf("%s: %w", op, err)
	}

	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return models.RemoteBackup{}, fmt.Errorf("%s: %w", op, err)
	}

	return models.RemoteBackup{
		ID:        name,
		Name:      name,
		CreatedAt: aws.ToTime(head.LastModified).UTC(),
		Size:      aws.ToInt64(head.ContentLength),
	}, nil
}

// List возвращает объекты с префиксом, новые первыми
func (s *Session) List(ctx context.Context, prefix string) ([]models.RemoteBackup, error) {
	const op = "s3drive.Session.List"

	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix + prefix),
	})

	backups := []models.RemoteBackup{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		for _, obj := range page.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), s.prefix)
			if strings.Contains(name, "/") {
				continue
			}
			backups = append(backups, models.RemoteBackup{
				ID:        name,
				Name:      name,
				CreatedAt: aws.ToTime(obj.LastModified).UTC(),
				Size:      aws.ToInt64(obj.Size),
			})
		}
	}

	sort.SliceStable(backups, func(i, j int) bool {
		if backups[i].CreatedAt.Equal(backups[j].CreatedAt) {
			return backups[i].Name > backups[j].Name
		}
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})

	return backups, nil
}

func (s *Session) Download(ctx context.Context, id string) ([]byte, error) {
	const op = "s3drive.Session.Download"

	if id == "" || strings.Contains(id, "/") {
		return nil, fmt.Errorf("%s: %q: %w", op, id, storage.ErrObjectNotFound)
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.prefix + id),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("%s: %s: %w", op, id, storage.ErrObjectNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return data, nil
}
