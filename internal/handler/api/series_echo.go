package api

import (
	"time"

	models "GoldPulse/internal/domain/models"
	drepo "GoldPulse/internal/domain/repository"
	"GoldPulse/internal/usecase"
	xhttp "GoldPulse/pkg/http"
	xlogger "GoldPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SeriesEchoHandler implements Echo-based HTTP handlers for the dashboard API.
type SeriesEchoHandler struct {
	logger *xlogger.Logger
	svc    *usecase.SeriesService
	store  drepo.Storage
}

func NewSeriesEchoHandler(logger *xlogger.Logger, svc *usecase.SeriesService, store drepo.Storage) *SeriesEchoHandler {
	return &SeriesEchoHandler{logger: logger, svc: svc, store: store}
}

func (h *SeriesEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/series", h.Series)
	g.GET("/series/aggregate", h.Aggregate)
	g.GET("/series/nearest", h.Nearest)
	g.GET("/predictions", h.Predictions)
	g.GET("/quote", h.Quote)
	g.GET("/ticks", h.Ticks)
}

func (h *SeriesEchoHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	req.From = xhttp.ParseTimeDefault(c.QueryParam("from"), time.Time{})
	req.To = xhttp.ParseTimeDefault(c.QueryParam("to"), time.Time{})

	res, err := h.svc.Series(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("series usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.SuccessResponse(c, res)
}

func (h *SeriesEchoHandler) Aggregate(c echo.Context) error {
	req := &models.AggregateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Aggregate(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("aggregate usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SeriesEchoHandler) Nearest(c echo.Context) error {
	req := &models.NearestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	p, ok, err := h.svc.Nearest(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("nearest usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	if !ok {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("series is empty"))
	}
	return xhttp.SuccessResponse(c, p)
}

func (h *SeriesEchoHandler) Predictions(c echo.Context) error {
	req := &models.PredictionsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Predictions(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("predictions usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

// Ticks serves raw tick history from the ClickHouse backend.
func (h *SeriesEchoHandler) Ticks(c echo.Context) error {
	req := &models.TicksRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if h.store == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("tick storage not configured"))
	}

	now := time.Now()
	from := xhttp.ParseTimeDefault(c.QueryParam("from"), now.Add(-drepo.FrameWindow(drepo.DefaultFrame())))
	to := xhttp.ParseTimeDefault(c.QueryParam("to"), now)

	res, err := h.store.Query(c.Request().Context(), req.Category, from, to, req.Limit)
	if err != nil {
		h.logger.Error("ticks query error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *SeriesEchoHandler) Quote(c echo.Context) error {
	req := &models.QuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res, err := h.svc.Quote(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("quote usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, res)
}
