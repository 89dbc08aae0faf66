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

func courseToAPI(info service.CourseInfo) api.Course {
	return api.Course{
		Id:          openapi_types.UUID(info.Course.ID),
		Title:       info.Course.Title,
		Status:      string(info.Course.Status),
		LessonCount: info.LessonCount,
		CreatedAt:   info.Course.CreatedAt,
		UpdatedAt:   info.Course.UpdatedAt,
	}
}

func SearchCoursesHandler(courseSvc service.CourseServiceInterface, ctx echo.Context, params api.SearchCoursesParams) error {
	page := 1
	pageSize := 10

	if params.Page != nil {
		page = *params.Page
	}
	if params.PageSize != nil {
		pageSize = *params.PageSize
	}

	if page < 1 {
		return badRequest(ctx, "Page must be positive")
	}
	if pageSize < 1 || pageSize > 100 {
		return badRequest(ctx, "Page size must be between 1 and 100")
	}

	search := ""
	if params.Q != nil {
		search = *params.Q
	}

	var status *model.CourseStatus
	if params.Status != nil {
		switch model.CourseStatus(*params.Status) {
		case model.CourseStatusDraft, model.CourseStatusPublished:
			s := model.CourseStatus(*params.Status)
			status = &s
		default:
			return badRequest(ctx, "Status must be draft or published")
		}
	}

	infos, total, err := courseSvc.List(ctx.Request().Context(), search, status, page, pageSize)
	if err != nil {
		return serviceError(ctx, err)
	}

	items := make([]api.Course, 0, len(infos))
	for _, info := range infos {
		items = append(items, courseToAPI(info))
	}

	return ctx.JSON(http.StatusOK, api.PaginatedCoursesResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

func GetCourseHandler(courseSvc service.CourseServiceInterface, ctx echo.Context, id openapi_types.UUID) error {
	info, err := courseSvc.GetByID(ctx.Request().Context(), uuid.UUID(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, courseToAPI(*info))
}

func CreateCourseHandler(courseSvc service.CourseServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context) error {
	var req api.CreateCourseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Title is required and must be at most 255 characters")
	}

	course, err := courseSvc.Create(ctx.Request().Context(), req.Title)
	if err != nil {
		return serviceError(ctx, err)
	}

	bm.CourseCreated()

	return ctx.JSON(http.StatusCreated, courseToAPI(service.CourseInfo{Course: *course}))
}

func UpdateCourseHandler(courseSvc service.CourseServiceInterface, ctx echo.Context, id openapi_types.UUID) error {
	var req api.UpdateCourseRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Title is required and must be at most 255 characters")
	}

	if _, err := courseSvc.Update(ctx.Request().Context(), uuid.UUID(id), req.Title); err != nil {
		return serviceError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func DeleteCourseHandler(courseSvc service.CourseServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context, id openapi_types.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := courseSvc.SoftDelete(ctx.Request().Context(), uuid.UUID(id)); err != nil {
		return serviceError(ctx, err)
	}

	bm.CourseDeleted(uuid.UUID(id).String(), "soft")

	return ctx.NoContent(http.StatusNoContent)
}

func HardDeleteCourseHandler(courseSvc service.CourseServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context, id openapi_types.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := courseSvc.HardDelete(ctx.Request().Context(), uuid.UUID(id)); err != nil {
		return serviceError(ctx, err)
	}

	bm.CourseDeleted(uuid.UUID(id).String(), "hard")

	return ctx.NoContent(http.StatusNoContent)
}

func PublishCourseHandler(courseSvc service.CourseServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context, id openapi_types.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := courseSvc.Publish(ctx.Request().Context(), uuid.UUID(id)); err != nil {
		return serviceError(ctx, err)
	}

	bm.CoursePublished(uuid.UUID(id).String())

	return ctx.NoContent(http.StatusNoContent)
}

func UnpublishCourseHandler(courseSvc service.CourseServiceInterface, bm *metrics.BusinessMetrics, ctx echo.Context, id openapi_types.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if err := courseSvc.Unpublish(ctx.Request().Context(), uuid.UUID(id)); err != nil {
		return serviceError(ctx, err)
	}

	bm.CourseUnpublished(uuid.UUID(id).String())

	return ctx.NoContent(http.StatusNoContent)
}

func GetCourseSummaryHandler(courseSvc service.CourseServiceInterface, ctx echo.Context, id openapi_types.UUID) error {
	summary, err := courseSvc.Summary(ctx.Request().Context(), uuid.UUID(id))
	if err != nil {
		return serviceError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, api.CourseSummary{
		Id:           openapi_types.UUID(summary.ID),
		Title:        summary.Title,
		TotalLessons: summary.TotalLessons,
		LastModified: summary.LastModified,
	})
}
