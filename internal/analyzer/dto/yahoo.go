package dto

import "encoding/json"

// GetStockDataParam identifies one market-data fetch.
type GetStockDataParam struct {
	Symbol string
	Range  string
}

// CompanyInfo carries the descriptive company fields from the quote
// summary.
type CompanyInfo struct {
	Symbol              string  `json:"symbol"`
	LongName            string  `json:"long_name"`
	Sector              string  `json:"sector"`
	Industry            string  `json:"industry"`
	LongBusinessSummary string  `json:"long_business_summary"`
	MarketCap           float64 `json:"market_cap"`
	FullTimeEmployees   int64   `json:"full_time_employees"`
	TotalRevenue        float64 `json:"total_revenue"`
	Website             string  `json:"website"`
	Country             string  `json:"country"`
	CurrentPrice        float64 `json:"current_price"`
}

// PricePoint is one close/volume observation of the price series.
type PricePoint struct {
	Date   string  `json:"date"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// StockData aggregates everything the market data collaborator returns for
// one symbol. The financial statements are passed through untyped; only the
// info block and the price series are interpreted here.
type StockData struct {
	Info                CompanyInfo     `json:"info"`
	Prices              []PricePoint    `json:"price_data"`
	QuarterlyFinancials json.RawMessage `json:"quarterly_financials,omitempty"`
	BalanceSheet        json.RawMessage `json:"balance_sheet,omitempty"`
	CashFlow            json.RawMessage `json:"cash_flow,omitempty"`
}

// YahooChartResponse is the v8/finance/chart payload.
type YahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				RegularMarketTime  int64   `json:"regularMarketTime"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *YahooAPIError `json:"error"`
	} `json:"chart"`
}

// YahooAPIError is the error block Yahoo embeds in its envelopes.
type YahooAPIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooRawValue is Yahoo's {raw, fmt} number wrapper.
type YahooRawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

// YahooQuoteSummaryResponse is the v10/finance/quoteSummary payload for the
// assetProfile, price and financialData modules.
type YahooQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector              string `json:"sector"`
				Industry            string `json:"industry"`
				LongBusinessSummary string `json:"longBusinessSummary"`
				Website             string `json:"website"`
				Country             string `json:"country"`
				FullTimeEmployees   int64  `json:"fullTimeEmployees"`
			} `json:"assetProfile"`
			Price *struct {
				Symbol             string        `json:"symbol"`
				LongName           string        `json:"longName"`
				MarketCap          YahooRawValue `json:"marketCap"`
				RegularMarketPrice YahooRawValue `json:"regularMarketPrice"`
			} `json:"price"`
			FinancialData *struct {
				TotalRevenue YahooRawValue `json:"totalRevenue"`
			} `json:"financialData"`
			IncomeStatementHistoryQuarterly json.RawMessage `json:"incomeStatementHistoryQuarterly,omitempty"`
			BalanceSheetHistory             json.RawMessage `json:"balanceSheetHistory,omitempty"`
			CashflowStatementHistory        json.RawMessage `json:"cashflowStatementHistory,omitempty"`
		} `json:"result"`
		Error *YahooAPIError `json:"error"`
	} `json:"quoteSummary"`
}
