package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/Santy1924/Online-Course-Platform/internal/metrics"
)

type InflightMetricsMiddleware struct {
	client metrics.MetricsClient
}

func NewInflightMiddleware(client metrics.MetricsClient) *InflightMetricsMiddleware {
	return &InflightMetricsMiddleware{client: client}
}

func (im *InflightMetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		im.client.Gauge("http_requests_in_flight", 1, nil)

		defer im.client.Gauge("http_requests_in_flight", -1, nil)

		return next(ctx)
	}
}
