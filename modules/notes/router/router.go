package router

import (
	"dayboard/core/middleware"
	"dayboard/modules/notes/controller"

	"github.com/labstack/echo/v4"
)

type NotesRouter struct {
	controller *controller.NotesController
}

func NewNotesRouter(controller *controller.NotesController) *NotesRouter {
	return &NotesRouter{controller: controller}
}

func (r *NotesRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	notes := e.Group("/notes", mw.AuthMiddleware())
	notes.GET("", r.controller.List)
	notes.POST("", r.controller.Save)
	notes.GET("/:id", r.controller.Get)
	notes.PUT("/:id", r.controller.Update)
	notes.DELETE("/:id", r.controller.Delete)
	notes.POST("/:id/attachments", r.controller.UploadAttachment)
	notes.GET("/:id/attachments", r.controller.ListAttachments)

	tags := e.Group("/tags", mw.AuthMiddleware())
	tags.GET("", r.controller.ListTags)
}
