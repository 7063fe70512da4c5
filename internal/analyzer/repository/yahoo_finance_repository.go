package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang-ai-analyzer/internal/analyzer/config"
	"golang-ai-analyzer/internal/analyzer/dto"
	"golang-ai-analyzer/pkg/logger"

	"github.com/piquette/finance-go/quote"
	"golang.org/x/time/rate"
)

const yahooUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// yahooFinanceRepository is an implementation of MarketDataRepository backed
// by the public Yahoo Finance endpoints. Yahoo gates the quoteSummary
// endpoint behind a session cookie and a crumb token, both of which are
// fetched lazily and reused across calls.
type yahooFinanceRepository struct {
	client         *http.Client
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter

	mu    sync.Mutex
	crumb string
}

// NewYahooFinanceRepository creates a new instance of yahooFinanceRepository.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	jar, _ := cookiejar.New(nil)

	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &yahooFinanceRepository{
		client: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

// Get fetches the company profile and the daily price series for a symbol.
// An unknown or delisted symbol yields ErrSymbolNotFound.
func (r *yahooFinanceRepository) Get(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	symbol := strings.ToUpper(strings.TrimSpace(param.Symbol))
	if symbol == "" {
		return nil, ErrSymbolNotFound
	}

	// Cheap existence check before the cookie/crumb dance.
	if q, err := quote.Get(symbol); err != nil || q == nil {
		r.logger.Debug("Symbol failed quote precheck", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, ErrSymbolNotFound
	}

	info, statements, err := r.fetchQuoteSummary(ctx, symbol)
	if err != nil {
		return nil, err
	}

	prices, err := r.fetchChart(ctx, symbol, param.Range)
	if err != nil {
		return nil, err
	}

	return &dto.StockData{
		Info:                *info,
		Prices:              prices,
		QuarterlyFinancials: statements.income,
		BalanceSheet:        statements.balanceSheet,
		CashFlow:            statements.cashFlow,
	}, nil
}

// rawStatements carries the untyped quarterly statement blocks through to
// StockData.
type rawStatements struct {
	income       json.RawMessage
	balanceSheet json.RawMessage
	cashFlow     json.RawMessage
}

func (r *yahooFinanceRepository) fetchQuoteSummary(ctx context.Context, symbol string) (*dto.CompanyInfo, *rawStatements, error) {
	crumb, err := r.getCrumb(ctx)
	if err != nil {
		return nil, nil, err
	}

	endpoint := fmt.Sprintf("%s/v10/finance/quoteSummary/%s", r.cfg.YahooFinance.BaseURL, url.PathEscape(symbol))
	params := url.Values{}
	params.Set("modules", "assetProfile,price,summaryDetail,financialData,incomeStatementHistoryQuarterly,balanceSheetHistory,cashflowStatementHistory")
	params.Set("crumb", crumb)

	body, err := r.doGet(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, nil, err
	}

	var summary dto.YahooQuoteSummaryResponse
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, nil, fmt.Errorf("failed to decode quote summary: %w", err)
	}

	if summary.QuoteSummary.Error != nil {
		r.logger.Debug("Yahoo quote summary error",
			logger.StringField("symbol", symbol),
			logger.StringField("code", summary.QuoteSummary.Error.Code),
		)
		return nil, nil, ErrSymbolNotFound
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, nil, ErrSymbolNotFound
	}

	result := summary.QuoteSummary.Result[0]
	if result.Price == nil || result.Price.LongName == "" {
		return nil, nil, ErrSymbolNotFound
	}

	info := &dto.CompanyInfo{
		Symbol:       symbol,
		LongName:     result.Price.LongName,
		MarketCap:    result.Price.MarketCap.Raw,
		CurrentPrice: result.Price.RegularMarketPrice.Raw,
	}
	if result.AssetProfile != nil {
		info.Sector = result.AssetProfile.Sector
		info.Industry = result.AssetProfile.Industry
		info.LongBusinessSummary = result.AssetProfile.LongBusinessSummary
		info.Website = result.AssetProfile.Website
		info.Country = result.AssetProfile.Country
		info.FullTimeEmployees = result.AssetProfile.FullTimeEmployees
	}
	if result.FinancialData != nil {
		info.TotalRevenue = result.FinancialData.TotalRevenue.Raw
	}

	statements := &rawStatements{
		income:       result.IncomeStatementHistoryQuarterly,
		balanceSheet: result.BalanceSheetHistory,
		cashFlow:     result.CashflowStatementHistory,
	}

	return info, statements, nil
}

func (r *yahooFinanceRepository) fetchChart(ctx context.Context, symbol, dataRange string) ([]dto.PricePoint, error) {
	if dataRange == "" {
		dataRange = "1y"
	}

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", r.cfg.YahooFinance.BaseURL, url.PathEscape(symbol))
	params := url.Values{}
	params.Set("range", dataRange)
	params.Set("interval", "1d")

	body, err := r.doGet(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var chart dto.YahooChartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("failed to decode chart response: %w", err)
	}

	if chart.Chart.Error != nil || len(chart.Chart.Result) == 0 {
		return nil, ErrSymbolNotFound
	}

	result := chart.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, ErrSymbolNotFound
	}

	closes := result.Indicators.Quote[0].Close
	volumes := result.Indicators.Quote[0].Volume

	prices := make([]dto.PricePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == 0 {
			continue
		}
		point := dto.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Close: closes[i],
		}
		if i < len(volumes) {
			point.Volume = volumes[i]
		}
		prices = append(prices, point)
	}

	if len(prices) == 0 {
		return nil, ErrSymbolNotFound
	}

	return prices, nil
}

// getCrumb establishes a Yahoo session. Visiting the home page seeds the
// cookie jar, after which the crumb endpoint returns the token that the
// quoteSummary endpoint requires.
func (r *yahooFinanceRepository) getCrumb(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.crumb != "" {
		return r.crumb, nil
	}

	if _, err := r.doGet(ctx, r.cfg.YahooFinance.HomeURL); err != nil {
		return "", fmt.Errorf("failed to fetch yahoo session cookie: %w", err)
	}

	body, err := r.doGet(ctx, r.cfg.YahooFinance.BaseURL+"/v1/test/getcrumb")
	if err != nil {
		return "", fmt.Errorf("failed to fetch yahoo crumb: %w", err)
	}

	crumb := strings.TrimSpace(string(body))
	if crumb == "" {
		return "", fmt.Errorf("yahoo crumb endpoint returned empty body")
	}

	r.crumb = crumb
	return crumb, nil
}

func (r *yahooFinanceRepository) doGet(ctx context.Context, rawURL string) ([]byte, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUserAgent)
	req.Header.Set("Accept", "*/*")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Yahoo Finance: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		r.logger.Debug("Received non-OK response from Yahoo Finance", logger.IntField("status_code", resp.StatusCode), logger.StringField("url", rawURL))
		return nil, fmt.Errorf("received non-OK response from Yahoo Finance: %d", resp.StatusCode)
	}

	return body, nil
}
