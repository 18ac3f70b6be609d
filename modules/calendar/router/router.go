package router

import (
	"dayboard/core/middleware"
	"dayboard/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

type CalendarRouter struct {
	controller *controller.CalendarController
}

func NewCalendarRouter(controller *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{controller: controller}
}

func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	events := e.Group("/calendar-events", mw.AuthMiddleware())
	events.GET("", r.controller.ListEvents)
	events.POST("", r.controller.SaveEvent)
	events.PUT("", r.controller.UpdateEvent)
	events.DELETE("", r.controller.DeleteEvent)

	folders := e.Group("/calendar-folders", mw.AuthMiddleware())
	folders.GET("", r.controller.ListFolders)
}
