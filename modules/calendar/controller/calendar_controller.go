package controller

import (
	"net/http"

	"dayboard/core/controller"
	"dayboard/core/errors"
	"dayboard/core/middleware"
	"dayboard/modules/calendar/dto"
	"dayboard/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CalendarController struct {
	service service.CalendarService
	base    controller.BaseController
}

func NewCalendarController(svc service.CalendarService) *CalendarController {
	return &CalendarController{
		service: svc,
		base:    controller.NewBaseController(),
	}
}

// ListEvents returns all events for a user, optionally one folder.
// GET /calendar-events?userId=<id>&carpeta=<name>
func (c *CalendarController) ListEvents(ctx echo.Context) error {
	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	events, appErr := c.service.ListEvents(ctx.Request().Context(), userID, ctx.QueryParam("carpeta"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, events)
}

// ListFolders returns the distinct folder names for a user.
// GET /calendar-folders?userId=<id>
func (c *CalendarController) ListFolders(ctx echo.Context) error {
	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	folders, appErr := c.service.ListFolders(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.FolderListResponse{Folders: folders})
}

// SaveEvent creates a manual event, or updates one when id is present.
// POST /calendar-events
func (c *CalendarController) SaveEvent(ctx echo.Context) error {
	var req dto.SaveEventRequest
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
		if appErr := c.service.UpdateEvent(ctx.Request().Context(), userID, &req); appErr != nil {
			return c.base.ErrorResponse(ctx, appErr)
		}
		return ctx.JSON(http.StatusOK, dto.SaveEventResponse{Success: true, ID: req.ID, Message: "event updated"})
	}

	id, appErr := c.service.CreateEvent(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.SaveEventResponse{Success: true, ID: id.String(), Message: "event created"})
}

// UpdateEvent updates a manual event; id is required.
// PUT /calendar-events
func (c *CalendarController) UpdateEvent(ctx echo.Context) error {
	var req dto.SaveEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if req.ID == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "id is required")
	}
	if field := req.MissingField(); field != "" {
		return c.base.BadRequest(errors.ErrInvalidInput, field+" is required")
	}

	userID, appErr := middleware.ResolveUserID(ctx, req.UserID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	if appErr := c.service.UpdateEvent(ctx.Request().Context(), userID, &req); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.SaveEventResponse{Success: true, ID: req.ID, Message: "event updated"})
}

// DeleteEvent removes an event owned by the user.
// DELETE /calendar-events?id=<id>
func (c *CalendarController) DeleteEvent(ctx echo.Context) error {
	idParam := ctx.QueryParam("id")
	if idParam == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "id is required")
	}
	eventID, err := uuid.Parse(idParam)
	if err != nil {
		return c.base.BadRequest(errors.ErrInvalidInput, "invalid event id")
	}

	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	if appErr := c.service.DeleteEvent(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, dto.SaveEventResponse{Success: true, Message: "event deleted"})
}
