package router

import (
	"dayboard/core/middleware"
	"dayboard/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

// Setup registers the auth routes. Only logout needs a session.
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	auth := e.Group("/auth")
	auth.POST("/register", r.controller.Register)
	auth.GET("/activate", r.controller.Activate)
	auth.POST("/login", r.controller.Login)
	auth.POST("/logout", r.controller.Logout, mw.AuthMiddleware())
	auth.POST("/send-reset-email", r.controller.SendResetEmail)
	auth.POST("/update-password", r.controller.UpdatePassword)
}
