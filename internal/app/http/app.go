package httpapp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mw "gallery_shallery/internal/middleware"
	httprouters "gallery_shallery/internal/transport/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Резервная копия с фотографиями в data URI бывает большой
const bodyLimit = "64M"

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
}

func New(log *slog.Logger, host, port, sessionSecret string, routers *httprouters.Routers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Validator = httprouters.NewCustomValidator()

	e.Use(session.Middleware(sessions.NewCookieStore([]byte(sessionSecret))))

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(bodyLimit))
	e.Use(mw.PrometheusMetrics)

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("method", v.Method),
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
	}
}

// Handler отдает echo как http.Handler, в тестах его оборачивает httptest
func (s *Server) Handler() http.Handler {
	return s.e
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("addr", s.addr()))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(s.addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping http server", slog.String("op", op))

	if err := s.e.Shutdown(ctx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefully: %w", op, err)
	}

	return nil
}

func (s *Server) addr() string {
	return fmt.Sprintf("%s:%s", s.host, s.port)
}

func (s *Server) BuildRouters() {
	s.e.GET("/health", s.routers.Health)
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	s.e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := s.e.Group("/api/v1")
	{
		albums := api.Group("/albums")
		{
			albums.GET("", s.routers.ListAlbums)
			albums.POST("", s.routers.CreateAlbum)
			albums.GET("/:id", s.routers.GetAlbum)
			albums.PUT("/:id", s.routers.UpdateAlbum)
			albums.DELETE("/:id", s.routers.DeleteAlbum)
			albums.POST("/:id/favorite", s.routers.ToggleFavorite)
			albums.POST("/:id/photos", s.routers.AddPhoto)
			albums.DELETE("/:id/photos/:photo_id", s.routers.RemovePhoto)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/theme", s.routers.GetTheme)
			settings.PUT("/theme", s.routers.SetTheme)
			settings.GET("/themes", s.routers.ListThemes)
			settings.GET("/customization", s.routers.GetCustomization)
			settings.PUT("/customization", s.routers.SetCustomization)
			settings.GET("/font", s.routers.GetFont)
			settings.PUT("/font", s.routers.SetFont)
		}

		backup := api.Group("/backup")
		{
			backup.GET("/export", s.routers.ExportBackup)
			backup.POST("/import", s.routers.ImportBackup)
			backup.GET("/local", s.routers.ListLocalBackups)
			backup.POST("/local", s.routers.SaveLocalBackup)
			backup.POST("/local/:name/restore", s.routers.RestoreLocalBackup)
			backup.DELETE("/local/:name", s.routers.DeleteLocalBackup)
		}

		cloud := api.Group("/cloud")
		{
			cloud.PUT("/credentials", s.routers.SetCloudCredentials)
			cloud.GET("/status", s.routers.CloudStatus)
			cloud.POST("/connect", s.routers.ConnectCloud)
			cloud.GET("/authorize", s.routers.AuthorizeCloud)
			cloud.GET("/callback", s.routers.CloudCallback)
			cloud.POST("/disconnect", s.routers.DisconnectCloud)
			cloud.POST("/upload", s.routers.UploadCloudBackup)
			cloud.GET("/backups", s.routers.ListCloudBackups)
			cloud.POST("/backups/:id/restore", s.routers.RestoreCloudBackup)
		}
	}
}
