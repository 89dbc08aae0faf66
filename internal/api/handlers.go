package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface is the transport contract the APIServer implements. Path
// ids arrive pre-parsed; malformed ids never reach a handler.
type ServerInterface interface {
	Register(ctx echo.Context) error
	Login(ctx echo.Context) error
	Logout(ctx echo.Context) error

	SearchCourses(ctx echo.Context, params SearchCoursesParams) error
	GetCourse(ctx echo.Context, id openapi_types.UUID) error
	CreateCourse(ctx echo.Context) error
	UpdateCourse(ctx echo.Context, id openapi_types.UUID) error
	DeleteCourse(ctx echo.Context, id openapi_types.UUID) error
	HardDeleteCourse(ctx echo.Context, id openapi_types.UUID) error
	PublishCourse(ctx echo.Context, id openapi_types.UUID) error
	UnpublishCourse(ctx echo.Context, id openapi_types.UUID) error
	GetCourseSummary(ctx echo.Context, id openapi_types.UUID) error

	GetLessonsByCourse(ctx echo.Context, courseID openapi_types.UUID) error
	GetLesson(ctx echo.Context, id openapi_types.UUID) error
	CreateLesson(ctx echo.Context) error
	UpdateLesson(ctx echo.Context, id openapi_types.UUID) error
	DeleteLesson(ctx echo.Context, id openapi_types.UUID) error
	HardDeleteLesson(ctx echo.Context, id openapi_types.UUID) error
	ReorderLessons(ctx echo.Context) error

	GetDashboardMetrics(ctx echo.Context) error
	GetHealth(ctx echo.Context) error
}

func withUUIDParam(name string, h func(ctx echo.Context, id openapi_types.UUID) error) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		id, err := uuid.Parse(ctx.Param(name))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Error: struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				}{Code: "bad_request", Message: "Invalid " + name + " parameter"},
			})
		}
		return h(ctx, openapi_types.UUID(id))
	}
}

func RegisterHandlers(e *echo.Echo, server ServerInterface) {
	e.GET("/health", server.GetHealth)

	e.POST("/api/auth/register", server.Register)
	e.POST("/api/auth/login", server.Login)
	e.POST("/api/auth/logout", server.Logout)

	e.GET("/api/courses/search", func(ctx echo.Context) error {
		var params SearchCoursesParams
		if err := ctx.Bind(&params); err != nil {
			return ctx.JSON(http.StatusBadRequest, Error{
				Error: struct {
					Code    string `json:"code"`
					Message string `json:"message"`
				}{Code: "bad_request", Message: "Invalid query parameters"},
			})
		}
		return server.SearchCourses(ctx, params)
	})
	e.GET("/api/courses/:id", withUUIDParam("id", server.GetCourse))
	e.POST("/api/courses", server.CreateCourse)
	e.PUT("/api/courses/:id", withUUIDParam("id", server.UpdateCourse))
	e.DELETE("/api/courses/:id", withUUIDParam("id", server.DeleteCourse))
	e.DELETE("/api/courses/:id/hard", withUUIDParam("id", server.HardDeleteCourse))
	e.PATCH("/api/courses/:id/publish", withUUIDParam("id", server.PublishCourse))
	e.PATCH("/api/courses/:id/unpublish", withUUIDParam("id", server.UnpublishCourse))
	e.GET("/api/courses/:id/summary", withUUIDParam("id", server.GetCourseSummary))

	e.GET("/api/lessons/course/:courseId", withUUIDParam("courseId", server.GetLessonsByCourse))
	e.GET("/api/lessons/:id", withUUIDParam("id", server.GetLesson))
	e.POST("/api/lessons", server.CreateLesson)
	e.PUT("/api/lessons/:id", withUUIDParam("id", server.UpdateLesson))
	e.DELETE("/api/lessons/:id", withUUIDParam("id", server.DeleteLesson))
	e.DELETE("/api/lessons/:id/hard", withUUIDParam("id", server.HardDeleteLesson))
	e.POST("/api/lessons/reorder", server.ReorderLessons)

	e.GET("/api/dashboard/metrics", server.GetDashboardMetrics)
}
