package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	models "RiverSight/internal/domain/models"
	domrepo "RiverSight/internal/domain/repository"
	svcmetrics "RiverSight/internal/service/metrics"
	"RiverSight/internal/service/yahoo"
	"RiverSight/internal/usecase"
	xhttp "RiverSight/pkg/http"
	xlogger "RiverSight/pkg/logger"
)

// RiverEchoHandler exposes the valuation analysis over HTTP.
type RiverEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.RiverAnalyzer
}

func NewRiverEchoHandler(logger *xlogger.Logger, analyzer *usecase.RiverAnalyzer) *RiverEchoHandler {
	svcmetrics.Register()
	return &RiverEchoHandler{logger: logger, analyzer: analyzer}
}

func (h *RiverEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/river", h.River)
	g.GET("/commentary", h.Commentary)
	g.GET("/healthz", h.Health)
}

func (h *RiverEchoHandler) River(c echo.Context) error {
	start := time.Now()
	req := &models.RiverRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	lookback := domrepo.NormalizeLookback(req.Lookback)

	res, err := h.analyzer.Analyze(c.Request().Context(), req.Symbol, lookback)
	svcmetrics.RiverLatency.WithLabelValues("river").Observe(time.Since(start).Seconds())
	if err != nil {
		svcmetrics.RiverErrors.WithLabelValues("river").Inc()
		h.logger.Error("river usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapError(err))
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=60")
	return xhttp.SuccessResponse(c, res)
}

func (h *RiverEchoHandler) Commentary(c echo.Context) error {
	start := time.Now()
	req := &models.CommentaryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.analyzer.HasNarrative() {
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("commentary generation is disabled"))
	}
	lookback := domrepo.NormalizeLookback(req.Lookback)

	res, err := h.analyzer.Commentary(c.Request().Context(), req.Symbol, lookback)
	svcmetrics.RiverLatency.WithLabelValues("commentary").Observe(time.Since(start).Seconds())
	if err != nil {
		svcmetrics.RiverErrors.WithLabelValues("commentary").Inc()
		h.logger.Error("commentary usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *RiverEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// mapError translates provider failures into transport errors.
func mapError(err error) error {
	if errors.Is(err, yahoo.ErrRateLimited) {
		return xhttp.TooManyRequestsError("upstream rate limit exceeded, retry shortly").WithError(err)
	}
	return err
}
