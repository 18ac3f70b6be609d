package calendar

import (
	"dayboard/core/database"
	"dayboard/core/middleware"
	"dayboard/modules/calendar/controller"
	"dayboard/modules/calendar/repository"
	"dayboard/modules/calendar/router"
	"dayboard/modules/calendar/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware) repository.EventRepository {
	repo := repository.NewEventRepository(db)
	svc := service.NewCalendarService(repo)
	ctrl := controller.NewCalendarController(svc)

	router.NewCalendarRouter(ctrl).Setup(e, mw)

	// The feed module reconciles against the same Event Store.
	return repo
}
