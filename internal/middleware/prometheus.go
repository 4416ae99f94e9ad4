package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"gallery_shallery/internal/metrics"

	"github.com/labstack/echo/v4"
)

// PrometheusMetrics считает запросы и их длительность по шаблону маршрута.
// Запросы к самому /metrics не учитываются.
func PrometheusMetrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Path() == "/metrics" {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		duration := time.Since(start).Seconds()

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request().Method,
			path,
			strconv.Itoa(responseStatus(c, err)),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request().Method,
			path,
		).Observe(duration)

		return err
	}
}

// responseStatus учитывает ошибку, которую echo еще не записал в ответ
func responseStatus(c echo.Context, err error) int {
	if err == nil || c.Response().Committed {
		return c.Response().Status
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}
