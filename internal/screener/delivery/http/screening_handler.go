package http

import (
	"errors"
	"net/http"

	"idx-scalping-sniper/internal/screener/analysis"
	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/internal/screener/repository"
	"idx-scalping-sniper/internal/screener/service"
	"idx-scalping-sniper/pkg/common"
	"idx-scalping-sniper/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScreeningHandler handles HTTP requests for screening, analysis and warrants.
type ScreeningHandler struct {
	screeningService service.ScreeningService
	analysisService  service.AnalysisService
	warrantService   service.WarrantService
	logger           *logger.Logger
}

// NewScreeningHandler creates a new ScreeningHandler.
func NewScreeningHandler(
	screeningService service.ScreeningService,
	analysisService service.AnalysisService,
	warrantService service.WarrantService,
	logger *logger.Logger,
) *ScreeningHandler {
	return &ScreeningHandler{
		screeningService: screeningService,
		analysisService:  analysisService,
		warrantService:   warrantService,
		logger:           logger,
	}
}

// RegisterRoutes registers the screener routes to the Echo group.
func (h *ScreeningHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/screening", h.GetScreening)
	g.GET("/analisa/:symbol", h.GetAnalisa)
	g.GET("/strategy/:symbol", h.GetStrategy)
	g.GET("/warrants", h.GetWarrants)
}

// GetScreening godoc
// @Summary Run a momentum screening
// @Description Scan the market and return the ten best momentum candidates plus the top five
// @Tags screening
// @Produce  json
// @Success 200 {object} dto.ScreeningResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /screening [get]
func (h *ScreeningHandler) GetScreening(c echo.Context) error {
	res, err := h.screeningService.Screen(c.Request().Context())
	if err != nil {
		if errors.Is(err, service.ErrNoData) {
			return c.JSON(http.StatusOK, dto.ErrorResponse{Error: "No stock data"})
		}
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusOK, dto.ScreeningResponse{
		Top10: res.Top(common.TopRankingSize),
		Top5:  res.Top(common.TopRecommendSize),
	})
}

// GetAnalisa godoc
// @Summary Get the raw detail record of a stock
// @Description Pass the upstream detail record through unchanged
// @Tags analysis
// @Produce  json
// @Param   symbol  path    string  true    "Stock symbol, e.g. BBCA"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analisa/{symbol} [get]
func (h *ScreeningHandler) GetAnalisa(c echo.Context) error {
	raw, err := h.analysisService.GetRaw(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Data not found"})
		}
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSONBlob(http.StatusOK, raw)
}

// GetStrategy godoc
// @Summary Get the trade plan of a stock
// @Description Entry, take-profit, stop-loss and signal derived from the moving averages
// @Tags analysis
// @Produce  json
// @Param   symbol  path    string  true    "Stock symbol, e.g. BBCA"
// @Success 200 {object} dto.StockAnalysis
// @Failure 404 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /strategy/{symbol} [get]
func (h *ScreeningHandler) GetStrategy(c echo.Context) error {
	res, err := h.analysisService.Analyze(c.Request().Context(), c.Param("symbol"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Data not found"})
		case errors.Is(err, analysis.ErrInvalidPrice):
			return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// GetWarrants godoc
// @Summary List active warrants
// @Description Warrants that traded today with their parent stock price, sorted by symbol
// @Tags warrants
// @Produce  json
// @Success 200 {object} dto.WarrantResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /warrants [get]
func (h *ScreeningHandler) GetWarrants(c echo.Context) error {
	pairings, err := h.warrantService.Screen(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.WarrantResponse{Warrants: pairings, Total: len(pairings)})
}
