package server

import (
	"fmt"
	"net/http"

	"dayboard/core/cache"
	"dayboard/core/config"
	"dayboard/core/database"
	"dayboard/core/logger"
	"dayboard/core/middleware"
	"dayboard/core/storage"
	"dayboard/core/taskqueue"
	"dayboard/modules/auth"
	"dayboard/modules/calendar"
	"dayboard/modules/feed"
	"dayboard/modules/notes"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// Run wires configuration, storage, the task queue and every module,
// then serves HTTP until the process exits.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	c := cache.NewRedisCache(cfg.Redis)

	queue := taskqueue.NewClient(cfg.Redis)
	defer queue.Close()

	mailer := taskqueue.NewMailer(cfg.SMTP, cfg.Server.BaseURL)
	worker := taskqueue.StartWorker(cfg.Redis, mailer)
	defer worker.Shutdown()

	store := storage.NewS3Storage(cfg.S3)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	mw := middleware.NewMiddleware(c)

	auth.Init(e, db, c, queue, mw)
	events := calendar.Init(e, db, mw)
	feed.Init(e, db, mw, events)
	notes.Init(e, db, mw, store)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server starting", "addr", addr)
	return e.Start(addr)
}
