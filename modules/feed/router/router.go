package router

import (
	"dayboard/core/middleware"
	"dayboard/modules/feed/controller"

	"github.com/labstack/echo/v4"
)

type FeedRouter struct {
	controller *controller.FeedController
}

func NewFeedRouter(controller *controller.FeedController) *FeedRouter {
	return &FeedRouter{controller: controller}
}

func (r *FeedRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	feed := e.Group("/ical-feed", mw.AuthMiddleware())
	feed.GET("", r.controller.FetchFeed)

	subs := e.Group("/ical-subscriptions", mw.AuthMiddleware())
	subs.GET("", r.controller.GetSubscriptions)
	subs.POST("", r.controller.SaveSubscription)
	subs.POST("/verify", r.controller.VerifySubscription)
}
