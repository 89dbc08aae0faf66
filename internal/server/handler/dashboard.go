package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Santy1924/Online-Course-Platform/internal/api"
	"github.com/Santy1924/Online-Course-Platform/internal/service"
)

func GetDashboardMetricsHandler(courseSvc service.CourseServiceInterface, ctx echo.Context) error {
	metrics, err := courseSvc.Metrics(ctx.Request().Context())
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.DashboardMetrics{
		TotalCourses:     metrics.TotalCourses,
		PublishedCourses: metrics.PublishedCourses,
		DraftCourses:     metrics.DraftCourses,
		TotalLessons:     metrics.TotalLessons,
	})
}

func HealthHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
