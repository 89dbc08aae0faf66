package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/Santy1924/Online-Course-Platform/internal/api"
	"github.com/Santy1924/Online-Course-Platform/internal/db/repo"
	"github.com/Santy1924/Online-Course-Platform/internal/server/handler"
)

func authError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusUnauthorized, api.Error{
		Error: struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}{Code: "unauthorized", Message: message},
	})
}

// Auth guards every route except the listed public ones. The bearer token is
// a session id; the resolved user and session land in the request context for
// the handlers' role checks.
func Auth(userRepo repo.UserRepositoryInterface, sessionRepo repo.SessionRepositoryInterface, publicPaths []string) echo.MiddlewareFunc {
	public := make(map[string]bool, len(publicPaths))
	for _, p := range publicPaths {
		public[p] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if public[ctx.Path()] {
				return next(ctx)
			}

			authHeader := ctx.Request().Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				return authError(ctx, "Missing or invalid Authorization header")
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			sessionID, err := uuid.Parse(tokenStr)
			if err != nil {
				return authError(ctx, "Invalid session token")
			}

			session, err := sessionRepo.GetByID(ctx.Request().Context(), sessionID)
			if err != nil {
				return authError(ctx, "Session not found")
			}

			user, err := userRepo.GetByID(ctx.Request().Context(), session.UserID)
			if err != nil {
				return authError(ctx, "User not found")
			}

			_ = sessionRepo.TouchAccessedAt(ctx.Request().Context(), session.ID)

			ctx.Set(handler.UserContextKey, user)
			ctx.Set(handler.SessionContextKey, session)
			return next(ctx)
		}
	}
}
