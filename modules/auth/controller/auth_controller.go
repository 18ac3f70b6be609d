package controller

import (
	"net/http"
	"strings"

	"dayboard/core/controller"
	"dayboard/core/errors"
	"dayboard/modules/auth/dto"
	"dayboard/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	service service.AuthService
	base    controller.BaseController
}

func NewAuthController(svc service.AuthService) *AuthController {
	return &AuthController{
		service: svc,
		base:    controller.NewBaseController(),
	}
}

// Register creates an inactive account and sends the activation email.
// POST /auth/register
func (c *AuthController) Register(ctx echo.Context) error {
	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if field := req.MissingField(); field != "" {
		return c.base.BadRequest(errors.ErrInvalidInput, field+" is required")
	}

	if appErr := c.service.Register(ctx.Request().Context(), &req); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusCreated, dto.MessageResponse{Success: true, Message: "check your email to activate the account"})
}

// Activate consumes an activation token.
// GET /auth/activate?token=<token>
func (c *AuthController) Activate(ctx echo.Context) error {
	token := ctx.QueryParam("token")
	if token == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "token is required")
	}

	if appErr := c.service.Activate(ctx.Request().Context(), token); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "account activated"})
}

// Login exchanges credentials for a session token.
// POST /auth/login
func (c *AuthController) Login(ctx echo.Context) error {
	var req dto.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "email and password are required")
	}

	resp, appErr := c.service.Login(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// Logout blacklists the presented session token.
// POST /auth/logout
func (c *AuthController) Logout(ctx echo.Context) error {
	token := strings.TrimPrefix(ctx.Request().Header.Get("Authorization"), "Bearer ")
	if token == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "token is required")
	}

	if appErr := c.service.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "session closed"})
}

// SendResetEmail queues a reset email; always 200 for a valid request.
// POST /auth/send-reset-email
func (c *AuthController) SendResetEmail(ctx echo.Context) error {
	var req dto.SendResetEmailRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if req.Email == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "email is required")
	}

	if appErr := c.service.SendResetEmail(ctx.Request().Context(), req.Email); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "if the email is registered, a reset link was sent"})
}

// UpdatePassword consumes a reset token and sets a new password.
// POST /auth/update-password
func (c *AuthController) UpdatePassword(ctx echo.Context) error {
	var req dto.UpdatePasswordRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if req.Token == "" || req.Password == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "token and password are required")
	}

	if appErr := c.service.UpdatePassword(ctx.Request().Context(), &req); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: "password updated"})
}
