package server

import (
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Santy1924/Online-Course-Platform/internal/api"
	"github.com/Santy1924/Online-Course-Platform/internal/server/handler"
)

var _ api.ServerInterface = (*APIServer)(nil)

func (s *APIServer) Register(ctx echo.Context) error {
	return handler.RegisterHandler(s.userRepo, s.sessionRepo, ctx)
}

func (s *APIServer) Login(ctx echo.Context) error {
	return handler.LoginHandler(s.userRepo, s.sessionRepo, ctx)
}

func (s *APIServer) Logout(ctx echo.Context) error {
	return handler.LogoutHandler(s.sessionRepo, ctx)
}

func (s *APIServer) SearchCourses(ctx echo.Context, params api.SearchCoursesParams) error {
	return handler.SearchCoursesHandler(s.courseSvc, ctx, params)
}

func (s *APIServer) GetCourse(ctx echo.Context, id openapi_types.UUID) error {
	return handler.GetCourseHandler(s.courseSvc, ctx, id)
}

func (s *APIServer) CreateCourse(ctx echo.Context) error {
	return handler.CreateCourseHandler(s.courseSvc, s.business, ctx)
}

func (s *APIServer) UpdateCourse(ctx echo.Context, id openapi_types.UUID) error {
	return handler.UpdateCourseHandler(s.courseSvc, ctx, id)
}

func (s *APIServer) DeleteCourse(ctx echo.Context, id openapi_types.UUID) error {
	return handler.DeleteCourseHandler(s.courseSvc, s.business, ctx, id)
}

func (s *APIServer) HardDeleteCourse(ctx echo.Context, id openapi_types.UUID) error {
	return handler.HardDeleteCourseHandler(s.courseSvc, s.business, ctx, id)
}

func (s *APIServer) PublishCourse(ctx echo.Context, id openapi_types.UUID) error {
	return handler.PublishCourseHandler(s.courseSvc, s.business, ctx, id)
}

func (s *APIServer) UnpublishCourse(ctx echo.Context, id openapi_types.UUID) error {
	return handler.UnpublishCourseHandler(s.courseSvc, s.business, ctx, id)
}

func (s *APIServer) GetCourseSummary(ctx echo.Context, id openapi_types.UUID) error {
	return handler.GetCourseSummaryHandler(s.courseSvc, ctx, id)
}

func (s *APIServer) GetLessonsByCourse(ctx echo.Context, courseID openapi_types.UUID) error {
	return handler.GetLessonsByCourseHandler(s.lessonSvc, ctx, courseID)
}

func (s *APIServer) GetLesson(ctx echo.Context, id openapi_types.UUID) error {
	return handler.GetLessonHandler(s.lessonSvc, ctx, id)
}

func (s *APIServer) CreateLesson(ctx echo.Context) error {
	return handler.CreateLessonHandler(s.lessonSvc, s.business, ctx)
}

func (s *APIServer) UpdateLesson(ctx echo.Context, id openapi_types.UUID) error {
	return handler.UpdateLessonHandler(s.lessonSvc, ctx, id)
}

func (s *APIServer) DeleteLesson(ctx echo.Context, id openapi_types.UUID) error {
	return handler.DeleteLessonHandler(s.lessonSvc, s.business, ctx, id)
}

func (s *APIServer) HardDeleteLesson(ctx echo.Context, id openapi_types.UUID) error {
	return handler.HardDeleteLessonHandler(s.lessonSvc, s.business, ctx, id)
}

func (s *APIServer) ReorderLessons(ctx echo.Context) error {
	return handler.ReorderLessonsHandler(s.lessonSvc, s.business, ctx)
}

func (s *APIServer) GetDashboardMetrics(ctx echo.Context) error {
	return handler.GetDashboardMetricsHandler(s.courseSvc, ctx)
}

func (s *APIServer) GetHealth(ctx echo.Context) error {
	return handler.HealthHandler(ctx)
}
