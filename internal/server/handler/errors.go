package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"

	"github.com/Santy1924/Online-Course-Platform/internal/api"
	"github.com/Santy1924/Online-Course-Platform/internal/service"
)

// uniqueConstraintColumn extracts the column name from a Postgres unique
// constraint violation (error code 23505). It maps GORM-generated index names
// like "idx_lessons_course_active_position" to the trailing column part.
// Returns "" if the error is not a unique violation.
func uniqueConstraintColumn(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return ""
	}
	// GORM generates index names as idx_<table>_<column>.
	parts := strings.SplitN(pgErr.ConstraintName, "_", 3)
	if len(parts) == 3 {
		return parts[2]
	}
	return pgErr.ConstraintName
}

func apiError(ctx echo.Context, status int, code, message string) error {
	return ctx.JSON(status, api.Error{
		Error: struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}{Code: code, Message: message},
	})
}

func badRequest(ctx echo.Context, message string) error {
	return apiError(ctx, http.StatusBadRequest, "bad_request", message)
}

func unauthorized(ctx echo.Context, message string) error {
	return apiError(ctx, http.StatusUnauthorized, "unauthorized", message)
}

func forbidden(ctx echo.Context, message string) error {
	return apiError(ctx, http.StatusForbidden, "forbidden", message)
}

func notFound(ctx echo.Context, message string) error {
	return apiError(ctx, http.StatusNotFound, "not_found", message)
}

func conflict(ctx echo.Context, message string) error {
	return apiError(ctx, http.StatusConflict, "conflict", message)
}

func internalError(ctx echo.Context, message string) error {
	return apiError(ctx, http.StatusInternalServerError, "internal_error", message)
}

// serviceError maps a typed domain failure to its HTTP response. Unclassified
// errors (storage failures and the like) surface as 500, except for a unique
// constraint violation the service-level check did not catch, which is the
// storage backstop for a lesson order race and reads as a conflict.
func serviceError(ctx echo.Context, err error) error {
	switch service.KindOf(err) {
	case service.KindNotFound:
		return notFound(ctx, err.Error())
	case service.KindConflict:
		return conflict(ctx, err.Error())
	case service.KindInvalidState, service.KindInvalidInput:
		return badRequest(ctx, err.Error())
	}

	if col := uniqueConstraintColumn(err); col != "" {
		return conflict(ctx, "Duplicate value for "+col)
	}

	return internalError(ctx, "Internal server error")
}
