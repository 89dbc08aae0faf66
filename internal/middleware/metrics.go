package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Santy1924/Online-Course-Platform/internal/metrics"
)

type MetricsMiddleware struct {
	client metrics.MetricsClient
}

func NewMetricsMiddleware(client metrics.MetricsClient) *MetricsMiddleware {
	return &MetricsMiddleware{client: client}
}

func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		timeStart := time.Now()

		err := next(ctx)

		duration := time.Since(timeStart).Seconds()
		path := ctx.Path()
		method := ctx.Request().Method
		status := strconv.Itoa(ctx.Response().Status)

		m.client.Inc("http_requests_total", map[string]string{
			"path":   path,
			"method": method,
			"status": status,
		})

		m.client.Histogram("http_request_duration_seconds", duration, map[string]string{
			"path":   path,
			"method": method,
		})

		return err
	}
}
