package controller

import (
	"net/http"

	"dayboard/core/controller"
	"dayboard/core/errors"
	"dayboard/core/middleware"
	"dayboard/core/params"
	"dayboard/modules/notes/dto"
	"dayboard/modules/notes/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type NotesController struct {
	service service.NotesService
	base    controller.BaseController
}

func NewNotesController(svc service.NotesService) *NotesController {
	return &NotesController{
		service: svc,
		base:    controller.NewBaseController(),
	}
}

// List returns a page of the user's notes, optionally filtered by tag.
// GET /notes?userId=<id>&tag=<tag>&page=<n>&page_size=<n>
func (c *NotesController) List(ctx echo.Context) error {
	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	page, appErr := c.service.List(ctx.Request().Context(), userID, ctx.QueryParam("tag"), params.FromContext(ctx))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, page)
}

// ListTags returns the distinct tags used by the user.
// GET /tags?userId=<id>
func (c *NotesController) ListTags(ctx echo.Context) error {
	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	tags, appErr := c.service.ListTags(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.TagListResponse{Tags: tags})
}

// Save creates a note, or updates one when id is present.
// POST /notes
func (c *NotesController) Save(ctx echo.Context) error {
	var req dto.SaveNoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if field := req.MissingField(); field != "" {
		return c.base.BadRequest(errors.ErrInvalidInput, field+" is required")
	}

	userID, appErr := middleware.ResolveUserID(ctx, req.UserID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	if req.ID != "" {
		if appErr := c.service.Update(ctx.Request().Context(), userID, &req); appErr != nil {
			return c.base.ErrorResponse(ctx, appErr)
		}
		return ctx.JSON(http.StatusOK, dto.SaveNoteResponse{Success: true, ID: req.ID, Message: "note updated"})
	}

	id, appErr := c.service.Create(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.SaveNoteResponse{Success: true, ID: id.String(), Message: "note created"})
}

// Get returns a single note owned by the user.
// GET /notes/:id
func (c *NotesController) Get(ctx echo.Context) error {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidInput, "invalid note id")
	}

	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	note, appErr := c.service.Get(ctx.Request().Context(), userID, noteID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, note)
}

// Update replaces a note's title, content and tags.
// PUT /notes/:id
func (c *NotesController) Update(ctx echo.Context) error {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidInput, "invalid note id")
	}

	var req dto.SaveNoteRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	req.ID = noteID.String()
	if field := req.MissingField(); field != "" {
		return c.base.BadRequest(errors.ErrInvalidInput, field+" is required")
	}

	userID, appErr := middleware.ResolveUserID(ctx, req.UserID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	if appErr := c.service.Update(ctx.Request().Context(), userID, &req); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.SaveNoteResponse{Success: true, ID: req.ID, Message: "note updated"})
}

// Delete removes a note owned by the user.
// DELETE /notes/:id?userId=<id>
func (c *NotesController) Delete(ctx echo.Context) error {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidInput, "invalid note id")
	}

	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	if appErr := c.service.Delete(ctx.Request().Context(), userID, noteID); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.SaveNoteResponse{Success: true, Message: "note deleted"})
}

// UploadAttachment accepts a multipart "file" part and stores it.
// POST /notes/:id/attachments
func (c *NotesController) UploadAttachment(ctx echo.Context) error {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidInput, "invalid note id")
	}

	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidInput, "file is required")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "unreadable file part")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	att, appErr := c.service.UploadAttachment(
		ctx.Request().Context(), userID, noteID,
		fileHeader.Filename, contentType, src, fileHeader.Size,
	)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.UploadAttachmentResponse{
		Success:  true,
		ID:       att.ID.String(),
		Filename: att.Filename,
	})
}

// ListAttachments lists a note's stored attachments.
// GET /notes/:id/attachments
func (c *NotesController) ListAttachments(ctx echo.Context) error {
	noteID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidInput, "invalid note id")
	}

	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	atts, appErr := c.service.ListAttachments(ctx.Request().Context(), userID, noteID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, atts)
}
