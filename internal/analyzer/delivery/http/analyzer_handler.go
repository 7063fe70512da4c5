package http

import (
	"errors"
	"net/http"
	"strings"

	"golang-ai-analyzer/internal/analyzer/dto"
	"golang-ai-analyzer/internal/analyzer/repository"
	"golang-ai-analyzer/internal/analyzer/service"
	"golang-ai-analyzer/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/patrickmn/go-cache"
)

// AnalyzerHandler handles HTTP requests for analyses. Completed results are
// kept in an in-memory cache so the CSV report endpoints can serve the most
// recent analysis without re-running the pipeline.
type AnalyzerHandler struct {
	analyzerService service.AnalyzerService
	logger          *logger.Logger
	results         *cache.Cache
}

// NewAnalyzerHandler creates a new AnalyzerHandler.
func NewAnalyzerHandler(analyzerService service.AnalyzerService, log *logger.Logger, results *cache.Cache) *AnalyzerHandler {
	return &AnalyzerHandler{
		analyzerService: analyzerService,
		logger:          log,
		results:         results,
	}
}

// RegisterRoutes registers the analysis routes to the Echo group.
func (h *AnalyzerHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/analysis/stock", h.AnalyzeStock)
	g.GET("/analysis/stock/:symbol/report", h.StockReport)
	g.POST("/analysis/401k", h.Analyze401K)
	g.GET("/analysis/401k/:company/report", h.FourOhOneKReport)
}

// AnalyzeStock godoc
// @Summary Analyze a stock's AI potential
// @Description Fetch market data for the symbol and run the AI analysis pipeline
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.AnalyzeStockRequest   true    "Stock to analyze"
// @Success 200 {object} dto.StockAnalysis
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/stock [post]
func (h *AnalyzerHandler) AnalyzeStock(c echo.Context) error {
	var req dto.AnalyzeStockRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	if symbol == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Symbol is required"})
	}

	analysis, err := h.analyzerService.AnalyzeStock(c.Request().Context(), symbol, req.Period)
	if err != nil {
		if errors.Is(err, repository.ErrSymbolNotFound) {
			return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
		}
		h.logger.Error("Failed to analyze stock", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to analyze stock"})
	}

	h.results.SetDefault(stockResultKey(symbol), analysis)

	return c.JSON(http.StatusOK, analysis)
}

// StockReport godoc
// @Summary Download the latest stock analysis as CSV
// @Description Serve a CSV report of the most recent analysis for the symbol
// @Tags analysis
// @Produce  text/csv
// @Param   symbol  path    string true    "Stock symbol"
// @Success 200 {string} string
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/stock/{symbol}/report [get]
func (h *AnalyzerHandler) StockReport(c echo.Context) error {
	symbol := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))

	cached, ok := h.results.Get(stockResultKey(symbol))
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No analysis available for this symbol, run an analysis first"})
	}

	analysis, ok := cached.(*dto.StockAnalysis)
	if !ok {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build report"})
	}

	report, err := service.BuildStockReportCSV(analysis)
	if err != nil {
		h.logger.Error("Failed to build stock report", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build report"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+symbol+`_analysis.csv"`)
	return c.Blob(http.StatusOK, "text/csv", report)
}

// Analyze401K godoc
// @Summary Analyze a company's 401k benefits
// @Description Run the 401k benefits analysis for a company
// @Tags analysis
// @Accept  json
// @Produce  json
// @Param   request  body    dto.Analyze401KRequest   true    "Company to analyze"
// @Success 200 {object} dto.FourOhOneKResult
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/401k [post]
func (h *AnalyzerHandler) Analyze401K(c echo.Context) error {
	var req dto.Analyze401KRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request payload"})
	}

	companyName := strings.TrimSpace(req.CompanyName)
	if companyName == "" {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Company name is required"})
	}

	result, err := h.analyzerService.Analyze401K(c.Request().Context(), companyName)
	if err != nil {
		h.logger.Error("Failed to analyze 401k benefits", logger.StringField("company", companyName), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to analyze 401k benefits"})
	}

	h.results.SetDefault(fourOhOneKResultKey(companyName), result)

	return c.JSON(http.StatusOK, result)
}

// FourOhOneKReport godoc
// @Summary Download the latest 401k analysis as CSV
// @Description Serve a CSV report of the most recent 401k analysis for the company
// @Tags analysis
// @Produce  text/csv
// @Param   company  path    string true    "Company name"
// @Success 200 {string} string
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analysis/401k/{company}/report [get]
func (h *AnalyzerHandler) FourOhOneKReport(c echo.Context) error {
	companyName := strings.TrimSpace(c.Param("company"))

	cached, ok := h.results.Get(fourOhOneKResultKey(companyName))
	if !ok {
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "No analysis available for this company, run an analysis first"})
	}

	result, ok := cached.(*dto.FourOhOneKResult)
	if !ok {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build report"})
	}

	report, err := service.Build401KReportCSV(companyName, result)
	if err != nil {
		h.logger.Error("Failed to build 401k report", logger.StringField("company", companyName), logger.ErrorField(err))
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to build report"})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="401k_analysis.csv"`)
	return c.Blob(http.StatusOK, "text/csv", report)
}

func stockResultKey(symbol string) string {
	return "stock:" + symbol
}

func fourOhOneKResultKey(company string) string {
	return "401k:" + strings.ToLower(company)
}
