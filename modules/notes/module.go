package notes

import (
	"dayboard/core/database"
	"dayboard/core/middleware"
	"dayboard/core/storage"
	"dayboard/modules/notes/controller"
	"dayboard/modules/notes/repository"
	"dayboard/modules/notes/router"
	"dayboard/modules/notes/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.IDatabase, mw *middleware.Middleware, store storage.ObjectStorage) {
	repo := repository.NewNoteRepository(db)
	svc := service.NewNotesService(repo, store)
	ctrl := controller.NewNotesController(svc)

	router.NewNotesRouter(ctrl).Setup(e, mw)
}
