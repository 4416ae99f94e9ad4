package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "gallery_shallery/internal/app/http"
	"gallery_shallery/internal/config"
	"gallery_shallery/internal/repository"
	backupservice "gallery_shallery/internal/services/backup_service"
	cloudservice "gallery_shallery/internal/services/cloud_service"
	galleryservice "gallery_shallery/internal/services/gallery_service"
	"gallery_shallery/internal/storage"
	filestorage "gallery_shallery/internal/storage/filestorage"
	"gallery_shallery/internal/storage/gdrive"
	"gallery_shallery/internal/storage/s3drive"
	httprouters "gallery_shallery/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server
	Gallery    *galleryservice.GalleryService
	Backup     *backupservice.BackupService
	Cloud      *cloudservice.CloudService

	repo *repository.Repository
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, log, repository.Options{
		Backend:       cfg.Storage.Backend,
		DSN:           cfg.Storage.DSN,
		RedisAddr:     cfg.Storage.Redis.RedisAddr,
		RedisPassword: cfg.Storage.Redis.RedisPassword,
		RedisDB:       cfg.Storage.Redis.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	files, err := filestorage.NewLocalFileStorage(cfg.Backup.Dir)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: backup dir: %w", op, err)
	}

	drive, err := NewDrive(cfg.Cloud)
	if err != nil {
		repo.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	gallery := galleryservice.NewGalleryService(log, repo.State)
	gallery.Restore(ctx)

	backup := backupservice.NewBackupService(log, files)

	cloud := cloudservice.NewCloudService(log, drive, repo.State, backup)
	cloud.Restore(ctx)

	routers := httprouters.NewRouter(log, gallery, backup, cloud)
	server := httpapp.New(log, cfg.HTTP.Host, cfg.HTTP.Port, cfg.SessionSecret, routers)

	log.Info("application initialized",
		slog.String("storage", cfg.Storage.Backend),
		slog.String("cloud", drive.Name()),
		slog.String("backup_dir", backup.Dir()),
		slog.Int("albums", len(gallery.Albums())),
	)

	return &App{
		HTTPServer: server,
		Gallery:    gallery,
		Backup:     backup,
		Cloud:      cloud,
		repo:       repo,
	}, nil
}

// NewDrive выбирает облачный диск по конфигу
func NewDrive(cfg config.CloudConfig) (storage.CloudDrive, error) {
	switch cfg.Provider {
	case "", gdrive.ProviderName:
		return gdrive.New(gdrive.Config{
			ClientSecret: cfg.GDrive.ClientSecret,
			RedirectURL:  cfg.GDrive.RedirectURL,
			AuthURL:      cfg.GDrive.AuthURL,
			TokenURL:     cfg.GDrive.TokenURL,
			APIBaseURL:   cfg.GDrive.APIBaseURL,
		}), nil
	case s3drive.ProviderName:
		return s3drive.New(s3drive.Config{
			Endpoint: cfg.S3.Endpoint,
			Region:   cfg.S3.Region,
			Bucket:   cfg.S3.Bucket,
			Prefix:   cfg.S3.Prefix,
		}), nil
	default:
		return nil, fmt.Errorf("unknown cloud provider %q", cfg.Provider)
	}
}

func (a *App) Close() {
	a.repo.Close()
}
