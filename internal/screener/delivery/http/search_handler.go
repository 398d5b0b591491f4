package http

import (
	"net/http"
	"strconv"

	"idx-scalping-sniper/internal/screener/dto"
	"idx-scalping-sniper/internal/screener/search"
	"idx-scalping-sniper/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SearchHandler looks stocks up by code or company name.
type SearchHandler struct {
	index  search.StockIndex
	logger *logger.Logger
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(index search.StockIndex, logger *logger.Logger) *SearchHandler {
	return &SearchHandler{index: index, logger: logger}
}

// RegisterRoutes registers the search route to the Echo group.
func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/search", h.Search)
}

// Search godoc
// @Summary Search listed stocks
// @Description Match a query against stock codes and company names
// @Tags search
// @Produce  json
// @Param   q      query   string  true   "Code or company name, e.g. telkom"
// @Param   limit  query   int     false  "Maximum results (default 10)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /search [get]
func (h *SearchHandler) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "query parameter q is required"})
	}

	limit := search.DefaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "limit must be a positive integer"})
		}
		limit = n
	}

	results, err := h.index.Search(q, limit)
	if err != nil {
		h.logger.ErrorContext(c.Request().Context(), "Stock search failed", logger.StringField("query", q), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto.SearchResponse{Query: q, Results: results})
}
