package feed

import (
	"time"

	"dayboard/core/config"
	"dayboard/core/database"
	"dayboard/core/middleware"
	calendarRepo "dayboard/modules/calendar/repository"
	"dayboard/modules/feed/controller"
	"dayboard/modules/feed/fetcher"
	"dayboard/modules/feed/repository"
	"dayboard/modules/feed/router"
	"dayboard/modules/feed/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, events calendarRepo.EventRepository) {
	cfg := config.Get()

	subs := repository.NewSubscriptionRepository(db)
	f := fetcher.NewFetcher(time.Duration(cfg.Feed.FetchTimeoutSeconds) * time.Second)
	svc := service.NewFeedService(subs, events, f)
	ctrl := controller.NewFeedController(svc)

	router.NewFeedRouter(ctrl).Setup(e, mw)
}
