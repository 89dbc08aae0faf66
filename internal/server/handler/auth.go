package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Santy1924/Online-Course-Platform/internal/api"
	"github.com/Santy1924/Online-Course-Platform/internal/db/model"
	"github.com/Santy1924/Online-Course-Platform/internal/db/repo"
)

const (
	UserContextKey    = "user"
	SessionContextKey = "session"
)

func currentUser(ctx echo.Context) *model.User {
	user, _ := ctx.Get(UserContextKey).(*model.User)
	return user
}

// requireAdmin writes the 403 response itself; a nil return means the caller
// may proceed.
func requireAdmin(ctx echo.Context) error {
	user := currentUser(ctx)
	if user == nil {
		return unauthorized(ctx, "Authentication required")
	}
	if !user.IsAdmin() {
		return forbidden(ctx, "Admin role required")
	}
	return nil
}

func userToAPI(user *model.User) api.User {
	return api.User{
		Id:        openapi_types.UUID(user.ID),
		Email:     openapi_types.Email(user.Email),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func RegisterHandler(userRepo repo.UserRepositoryInterface, sessionRepo repo.SessionRepositoryInterface, ctx echo.Context) error {
	var req api.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Valid email and a password of at least 8 characters are required")
	}

	if exists, err := userRepo.ExistsByEmail(ctx.Request().Context(), string(req.Email)); err != nil {
		return internalError(ctx, "Failed to check email uniqueness")
	} else if exists {
		return conflict(ctx, "User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return internalError(ctx, "Failed to hash password")
	}

	user := model.User{
		Email:        string(req.Email),
		PasswordHash: string(hash),
		Role:         model.UserRoleAuthor,
	}

	if err := userRepo.Create(ctx.Request().Context(), &user); err != nil {
		if col := uniqueConstraintColumn(err); col != "" {
			return conflict(ctx, "User with this "+col+" already exists")
		}
		return internalError(ctx, "Failed to create user")
	}

	session := model.Session{
		UserID:    user.ID,
		IP:        ctx.RealIP(),
		UserAgent: ctx.Request().UserAgent(),
	}
	if err := sessionRepo.Create(ctx.Request().Context(), &session); err != nil {
		return internalError(ctx, "Failed to create session")
	}

	return ctx.JSON(http.StatusCreated, api.AuthResponse{
		SessionToken: openapi_types.UUID(session.ID),
		User:         userToAPI(&user),
	})
}

func LoginHandler(userRepo repo.UserRepositoryInterface, sessionRepo repo.SessionRepositoryInterface, ctx echo.Context) error {
	var req api.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return badRequest(ctx, "Email and password are required")
	}

	user, err := userRepo.GetByEmail(ctx.Request().Context(), string(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unauthorized(ctx, "Invalid credentials")
		}
		return internalError(ctx, "Failed to find user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return unauthorized(ctx, "Invalid credentials")
	}

	session := model.Session{
		UserID:    user.ID,
		IP:        ctx.RealIP(),
		UserAgent: ctx.Request().UserAgent(),
	}
	if err := sessionRepo.Create(ctx.Request().Context(), &session); err != nil {
		return internalError(ctx, "Failed to create session")
	}

	return ctx.JSON(http.StatusOK, api.AuthResponse{
		SessionToken: openapi_types.UUID(session.ID),
		User:         userToAPI(user),
	})
}

func LogoutHandler(sessionRepo repo.SessionRepositoryInterface, ctx echo.Context) error {
	session, ok := ctx.Get(SessionContextKey).(*model.Session)
	if !ok || session == nil {
		return unauthorized(ctx, "Authentication required")
	}

	if err := sessionRepo.Delete(ctx.Request().Context(), session.ID); err != nil {
		return internalError(ctx, "Failed to delete session")
	}

	return ctx.NoContent(http.StatusNoContent)
}
