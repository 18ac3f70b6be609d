package auth

import (
	"dayboard/core/cache"
	"dayboard/core/database"
	"dayboard/core/middleware"
	"dayboard/core/taskqueue"
	"dayboard/modules/auth/controller"
	"dayboard/modules/auth/repository"
	"dayboard/modules/auth/router"
	"dayboard/modules/auth/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, c cache.Cache, queue *taskqueue.Client, mw *middleware.Middleware) {
	users := repository.NewUserRepository(db)
	svc := service.NewAuthService(users, c, queue)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}
