package dto

// Recommendation actions.
const (
	ActionBuy  = "BUY"
	ActionHold = "HOLD"
	ActionSell = "SELL"
)

// AnalyzeStockRequest is the request body for a stock analysis.
type AnalyzeStockRequest struct {
	Symbol string `json:"symbol"`
	Period string `json:"period"`
}

// Analyze401KRequest is the request body for a 401k analysis.
type Analyze401KRequest struct {
	CompanyName string `json:"company_name"`
}

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CompanyContext carries the sanitizable company fields extracted from raw
// market data for one analysis run. Missing text fields default to
// "Unknown", missing numerics to zero.
type CompanyContext struct {
	Symbol          string
	Name            string
	Sector          string
	Industry        string
	BusinessSummary string
	MarketCap       float64
	Employees       int64
	Revenue         float64
	Website         string
	Country         string
}

// AIStrategyAnalysis is the expected JSON structure of the AI-strategy
// stage.
type AIStrategyAnalysis struct {
	AIInitiatives         []string `json:"ai_initiatives"`
	CompetitiveAdvantages []string `json:"competitive_advantages"`
	RevenueStreams        []string `json:"revenue_streams"`
	Partnerships          []string `json:"partnerships"`
	Opportunities         []string `json:"opportunities"`
	Risks                 []string `json:"risks"`
	AIMaturityScore       float64  `json:"ai_maturity_score"`
	OverallAssessment     string   `json:"overall_assessment"`
}

// DefaultAIStrategyAnalysis is the AI-strategy stage fallback.
func DefaultAIStrategyAnalysis() AIStrategyAnalysis {
	return AIStrategyAnalysis{
		AIInitiatives:         []string{},
		CompetitiveAdvantages: []string{},
		RevenueStreams:        []string{},
		Partnerships:          []string{},
		Opportunities:         []string{},
		Risks:                 []string{},
		AIMaturityScore:       5,
		OverallAssessment:     "Unable to complete AI analysis at this time.",
	}
}

// InvestmentRecommendation is the expected JSON structure of the
// recommendation stage.
type InvestmentRecommendation struct {
	Action       string   `json:"action"`
	AIScore      float64  `json:"ai_score"`
	Reasoning    string   `json:"reasoning"`
	KeyCatalysts []string `json:"key_catalysts"`
	RiskFactors  []string `json:"risk_factors"`
}

// DefaultInvestmentRecommendation is the recommendation stage fallback.
func DefaultInvestmentRecommendation() InvestmentRecommendation {
	return InvestmentRecommendation{
		Action:       ActionHold,
		AIScore:      5,
		Reasoning:    "Unable to complete investment analysis at this time.",
		KeyCatalysts: []string{},
		RiskFactors:  []string{},
	}
}

// AIMetrics holds the locally derived metrics. No field is ever left
// undefined; the zeroed variant below covers whole-pipeline failure.
type AIMetrics struct {
	AIRevenueExposure float64 `json:"ai_revenue_exposure"`
	AIPartnerships    int     `json:"ai_partnerships"`
	AIPatents         int     `json:"ai_patents"`
	AIInvestmentScore float64 `json:"ai_investment_score"`
}

// DefaultAIMetrics is the whole-pipeline metrics fallback.
func DefaultAIMetrics() AIMetrics {
	return AIMetrics{AIInvestmentScore: 5}
}

// AIStory is the expected JSON structure of the story stage.
type AIStory struct {
	StrategySummary       string   `json:"strategy_summary"`
	UseCases              []string `json:"use_cases"`
	Opportunities         []string `json:"opportunities"`
	CompetitiveAdvantages []string `json:"competitive_advantages"`
}

// DefaultAIStory is the story stage fallback.
func DefaultAIStory() AIStory {
	return AIStory{
		StrategySummary:       "AI strategy analysis not available at this time.",
		UseCases:              []string{},
		Opportunities:         []string{},
		CompetitiveAdvantages: []string{},
	}
}

// AnalysisResult aggregates the stock-mode pipeline output.
type AnalysisResult struct {
	InvestmentRecommendation InvestmentRecommendation `json:"investment_recommendation"`
	AIMetrics                AIMetrics                `json:"ai_metrics"`
	AIStory                  AIStory                  `json:"ai_story"`
	AnalysisTimestamp        string                   `json:"analysis_timestamp"`
}

// DefaultAnalysisResult is the whole-result fallback returned when the
// pipeline fails outside the per-stage guards.
func DefaultAnalysisResult(timestamp string) *AnalysisResult {
	return &AnalysisResult{
		InvestmentRecommendation: InvestmentRecommendation{
			Action:       ActionHold,
			AIScore:      5,
			Reasoning:    "AI analysis not available at this time.",
			KeyCatalysts: []string{},
			RiskFactors:  []string{},
		},
		AIMetrics: DefaultAIMetrics(),
		AIStory: AIStory{
			StrategySummary:       "AI analysis not available.",
			UseCases:              []string{},
			Opportunities:         []string{},
			CompetitiveAdvantages: []string{},
		},
		AnalysisTimestamp: timestamp,
	}
}

// StockAnalysis is the full stock-mode response: company info, the price
// history used for charting, and the analysis itself.
type StockAnalysis struct {
	Company  CompanyInfo    `json:"company"`
	Prices   []PricePoint   `json:"price_history"`
	Analysis AnalysisResult `json:"analysis"`
}
