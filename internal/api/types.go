package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Error struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type RegisterRequest struct {
	Email    openapi_types.Email `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    openapi_types.Email `json:"email" validate:"required,email"`
	Password string              `json:"password" validate:"required"`
}

type AuthResponse struct {
	SessionToken openapi_types.UUID `json:"session_token"`
	User         User               `json:"user"`
}

type User struct {
	Id        openapi_types.UUID  `json:"id"`
	Email     openapi_types.Email `json:"email"`
	Role      string              `json:"role"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type CreateCourseRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

type UpdateCourseRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

type Course struct {
	Id          openapi_types.UUID `json:"id"`
	Title       string             `json:"title"`
	Status      string             `json:"status"`
	LessonCount int64              `json:"lesson_count"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type PaginatedCoursesResponse struct {
	Items    []Course `json:"items"`
	Total    int64    `json:"total"`
	Page     int      `json:"page"`
	PageSize int      `json:"page_size"`
}

type CourseSummary struct {
	Id           openapi_types.UUID `json:"id"`
	Title        string             `json:"title"`
	TotalLessons int64              `json:"total_lessons"`
	LastModified time.Time          `json:"last_modified"`
}

type DashboardMetrics struct {
	TotalCourses     int64 `json:"total_courses"`
	PublishedCourses int64 `json:"published_courses"`
	DraftCourses     int64 `json:"draft_courses"`
	TotalLessons     int64 `json:"total_lessons"`
}

type CreateLessonRequest struct {
	CourseId openapi_types.UUID `json:"course_id" validate:"required"`
	Title    string             `json:"title" validate:"required,min=1,max=255"`
	// Order is optional; when omitted the lesson is appended after the
	// course's current maximum order.
	Order *int `json:"order,omitempty" validate:"omitempty,min=1"`
}

type UpdateLessonRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
	Order int    `json:"order" validate:"required,min=1"`
}

type Lesson struct {
	Id        openapi_types.UUID `json:"id"`
	CourseId  openapi_types.UUID `json:"course_id"`
	Title     string             `json:"title"`
	Order     int                `json:"order"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type ReorderLessonsRequest struct {
	CourseId openapi_types.UUID   `json:"course_id" validate:"required"`
	NewOrder []openapi_types.UUID `json:"new_order" validate:"required"`
}

type SearchCoursesParams struct {
	Q        *string `query:"q"`
	Status   *string `query:"status"`
	Page     *int    `query:"page"`
	PageSize *int    `query:"page_size"`
}
