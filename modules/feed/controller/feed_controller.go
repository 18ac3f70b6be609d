package controller

import (
	"net/http"

	"dayboard/core/controller"
	"dayboard/core/errors"
	"dayboard/core/middleware"
	"dayboard/modules/feed/dto"
	"dayboard/modules/feed/service"

	"github.com/labstack/echo/v4"
)

type FeedController struct {
	service service.FeedService
	base    controller.BaseController
}

func NewFeedController(svc service.FeedService) *FeedController {
	return &FeedController{
		service: svc,
		base:    controller.NewBaseController(),
	}
}

// FetchFeed proxies a remote iCal feed and returns its events as JSON.
// GET /ical-feed?url=<feed url>
func (c *FeedController) FetchFeed(ctx echo.Context) error {
	url := ctx.QueryParam("url")
	if url == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "url is required")
	}

	events, appErr := c.service.FetchFeed(ctx.Request().Context(), url)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, events)
}

// SaveSubscription upserts a subscription and imports its events.
// POST /ical-subscriptions
func (c *FeedController) SaveSubscription(ctx echo.Context) error {
	var req dto.SaveSubscriptionRequest
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

	resp, appErr := c.service.SaveSubscription(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// VerifySubscription re-pulls the stored feed and reconciles it.
// POST /ical-subscriptions/verify
func (c *FeedController) VerifySubscription(ctx echo.Context) error {
	var req dto.VerifySubscriptionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.base.BadRequest(errors.ErrInvalidRequestData, "invalid request body")
	}
	if req.Source == "" {
		return c.base.BadRequest(errors.ErrInvalidInput, "source is required")
	}

	userID, appErr := middleware.ResolveUserID(ctx, req.UserID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	resp, appErr := c.service.VerifySubscription(ctx.Request().Context(), userID, req.Source)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, resp)
}

// GetSubscriptions returns the user's feed URLs keyed by provider.
// GET /ical-subscriptions?userId=<id>
func (c *FeedController) GetSubscriptions(ctx echo.Context) error {
	userID, appErr := middleware.ResolveUserID(ctx, ctx.QueryParam("userId"))
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}

	subs, appErr := c.service.GetSubscriptions(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.base.ErrorResponse(ctx, appErr)
	}
	return ctx.JSON(http.StatusOK, subs)
}
