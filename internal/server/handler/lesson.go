package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/Santy1924/Online-Course-Platform/internal/api"
	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
	"github.com/Santy1924/Online-Course-Platform/internal/metrics"
	"github.com/Santy1924/Online-Course-Platform/internal/service"
)

func lessonToAPI(lesson *model.Lesson) api.Lesson {
	return api.Lesson{
		Id:        openapi_types.UUID(lesson.ID),
		CourseId:  openapi_types.UUID(lesson.CourseID),
		Title:     lesson.Title,
		Order:     lesson.Position,
		CreatedAt: lesson.CreatedAt,
		UpdatedAt: lesson.UpdatedAt,
	}
}

func GetLessonsByCourseHandler(lessonSvc service.LessonServiceInterface, ctx echo.Context, courseID openapi_types.UUID) error {
	lessons, err := lessonSvc.ListByCourse(ctx.Request().Context(), uuid.UUID(courseID))
	if err != nil {
		return serviceError(ctx, err)
	}

	items := make([]api.Lesson, 0, len(lessons))
	for i := range lessons {
		items = append(items, lessonToAPI(&lessons[i]))
	}

	return ctx.JSON(http.StatusOK, items)
}

func GetLessonHandler(lessonSvc service.LessonServiceInterface, ctx echo.Context, id openapi_types.UUID) error {
	lesson, err := lessonSvc.GetByID(ctx.Request().Context(), uuid.UUID(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, lessonToAPI(lesson))
}

func CreateLessonHandler(lessonSvc service.LessonServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context) error {
	var req api.CreateLessonRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Course id and title are required; order must be positive")
	}

	courseID := uuid.UUID(req.CourseId)

	var order int
	if req.Order != nil {
		order = *req.Order
	} else {
		next, err := lessonSvc.NextOrder(ctx.Request().Context(), courseID)
		if err != nil {
			return serviceError(ctx, err)
		}
		order = next
	}

	lesson, err := lessonSvc.Create(ctx.Request().Context(), courseID, req.Title, order)
	if err != nil {
		return serviceError(ctx, err)
	}

	bm.LessonCreated(courseID.String())

	return ctx.JSON(http.StatusCreated, lessonToAPI(lesson))
}

func UpdateLessonHandler(lessonSvc service.LessonServiceInterface, ctx echo.Context, id openapi_types.UUID) error {
	var req api.UpdateLessonRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Title is required; order must be positive")
	}

	if _, err := lessonSvc.Update(ctx.Request().Context(), uuid.UUID(id), req.Title, req.Order); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func DeleteLessonHandler(lessonSvc service.LessonServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context, id openapi_types.UUID) error {
	if err := lessonSvc.SoftDelete(ctx.Request().Context(), uuid.UUID(id)); err != nil {
		return serviceError(ctx, err)
	}

	bm.LessonDeleted(uuid.UUID(id).String(), "soft")

	return ctx.NoContent(http.StatusNoContent)
}

func HardDeleteLessonHandler(lessonSvc service.LessonServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context, id openapi_types.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := lessonSvc.HardDelete(ctx.Request().Context(), uuid.UUID(id)); err != nil {
		return serviceError(ctx, err)
	}

	bm.LessonDeleted(uuid.UUID(id).String(), "hard")

	return ctx.NoContent(http.StatusNoContent)
}

func ReorderLessonsHandler(lessonSvc service.LessonServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context) error {
	var req api.ReorderLessonsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Course id and lesson order are required")
	}

	ids := make([]uuid.UUID, 0, len(req.NewOrder))
	for _, id := range req.NewOrder {
		ids = append(ids, uuid.UUID(id))
	}

	if err := lessonSvc.Reorder(ctx.Request().Context(), uuid.UUID(req.CourseId), ids); err != nil {
		return serviceError(ctx, err)
	}

	bm.LessonsReordered(uuid.UUID(req.CourseId).String(), len(ids))

	return ctx.NoContent(http.StatusNoContent)
}
