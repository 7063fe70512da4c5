package service

import (
	"context"
	"errors"
	"testing"

	"golang-ai-analyzer/internal/analyzer/config"
	"golang-ai-analyzer/internal/analyzer/dto"
	"golang-ai-analyzer/internal/analyzer/repository"
	"golang-ai-analyzer/pkg/logger"
	"golang-ai-analyzer/pkg/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAIRepository struct {
	calls     int
	responses []string
	err       error
}

func (f *fakeAIRepository) GenerateJSON(ctx context.Context, systemInstruction, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if len(f.responses) == 0 {
		return "{}", nil
	}
	resp := f.responses[0]
	if len(f.responses) > 1 {
		f.responses = f.responses[1:]
	}
	return resp, nil
}

type fakeMarketRepository struct {
	data *dto.StockData
	err  error
}

func (f *fakeMarketRepository) Get(ctx context.Context, param dto.GetStockDataParam) (*dto.StockData, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.data, nil
}

func testStockData() *dto.StockData {
	return &dto.StockData{
		Info: dto.CompanyInfo{
			Symbol:            "NVDA",
			LongName:          "NVIDIA Corporation",
			Sector:            "Technology",
			Industry:          "Semiconductors",
			MarketCap:         3.2e12,
			FullTimeEmployees: 29600,
		},
		Prices: []dto.PricePoint{{Date: "2026-08-28", Close: 181.5, Volume: 1000}},
	}
}

func newTestService(t *testing.T, aiRepo repository.AIRepository, marketRepo repository.MarketDataRepository) AnalyzerService {
	t.Helper()
	log, err := logger.New("error", "json")
	require.NoError(t, err)
	return NewAnalyzerService(&config.Config{}, log, aiRepo, marketRepo, telegram.NewNoopNotifier())
}

func TestAnalyzeStockHappyPath(t *testing.T) {
	aiRepo := &fakeAIRepository{responses: []string{
		`{"ai_initiatives":["gpu"],"competitive_advantages":["cuda"],"revenue_streams":["dc"],"partnerships":["msft"],"opportunities":["robotics"],"risks":["competition"],"ai_maturity_score":9,"overall_assessment":"leader"}`,
		`{"action":"BUY","ai_score":9,"reasoning":"dominant","key_catalysts":["blackwell"],"risk_factors":["valuation"]}`,
		`{"strategy_summary":"summary","use_cases":["training"],"opportunities":["inference"],"competitive_advantages":["software"]}`,
	}}

	svc := newTestService(t, aiRepo, &fakeMarketRepository{data: testStockData()})

	result, err := svc.AnalyzeStock(context.Background(), "NVDA", "1y")
	require.NoError(t, err)

	assert.Equal(t, 3, aiRepo.calls)
	assert.Equal(t, "NVIDIA Corporation", result.Company.LongName)
	assert.Len(t, result.Prices, 1)
	assert.Equal(t, dto.ActionBuy, result.Analysis.InvestmentRecommendation.Action)
	assert.Equal(t, 9.0, result.Analysis.InvestmentRecommendation.AIScore)
	assert.Equal(t, "summary", result.Analysis.AIStory.StrategySummary)
	// 1.5 * 9 * 2 + 1 * 5 = 32.0
	assert.Equal(t, 32.0, result.Analysis.AIMetrics.AIRevenueExposure)
	assert.Equal(t, 1, result.Analysis.AIMetrics.AIPartnerships)
	assert.NotEmpty(t, result.Analysis.AnalysisTimestamp)
}

func TestAnalyzeStockSymbolNotFound(t *testing.T) {
	aiRepo := &fakeAIRepository{}
	svc := newTestService(t, aiRepo, &fakeMarketRepository{err: repository.ErrSymbolNotFound})

	_, err := svc.AnalyzeStock(context.Background(), "NOPE", "1y")
	assert.ErrorIs(t, err, repository.ErrSymbolNotFound)
	// No model call is made for a bad symbol.
	assert.Zero(t, aiRepo.calls)
}

func TestAnalyzeStockAllStagesDegraded(t *testing.T) {
	aiRepo := &fakeAIRepository{err: errors.New("model unavailable")}
	svc := newTestService(t, aiRepo, &fakeMarketRepository{data: testStockData()})

	result, err := svc.AnalyzeStock(context.Background(), "NVDA", "1y")
	require.NoError(t, err)

	// Every stage fell back to its static default; the result is still
	// complete.
	assert.Equal(t, dto.ActionHold, result.Analysis.InvestmentRecommendation.Action)
	assert.Equal(t, 5.0, result.Analysis.InvestmentRecommendation.AIScore)
	assert.Equal(t, "Unable to complete investment analysis at this time.", result.Analysis.InvestmentRecommendation.Reasoning)
	assert.Equal(t, "AI strategy analysis not available at this time.", result.Analysis.AIStory.StrategySummary)
	assert.Equal(t, 5.0, result.Analysis.AIMetrics.AIInvestmentScore)
	// Default strategy: 1.5 * 5 * 2 + 0 = 15.0
	assert.Equal(t, 15.0, result.Analysis.AIMetrics.AIRevenueExposure)
	assert.NotEmpty(t, result.Analysis.AnalysisTimestamp)
}

func TestAnalyzeStockPartialRepliesKeepDefaults(t *testing.T) {
	aiRepo := &fakeAIRepository{responses: []string{
		`{"ai_initiatives":["a"]}`,
		`{"action":"BUY","reasoning":"r"}`,
		`{"use_cases":["u"]}`,
	}}

	svc := newTestService(t, aiRepo, &fakeMarketRepository{data: testStockData()})

	result, err := svc.AnalyzeStock(context.Background(), "NVDA", "1y")
	require.NoError(t, err)

	// Fields absent from a partial reply keep the stage defaults instead
	// of Go zero values.
	assert.Equal(t, dto.ActionBuy, result.Analysis.InvestmentRecommendation.Action)
	assert.Equal(t, 5.0, result.Analysis.InvestmentRecommendation.AIScore)
	assert.NotNil(t, result.Analysis.InvestmentRecommendation.KeyCatalysts)
	assert.Empty(t, result.Analysis.InvestmentRecommendation.KeyCatalysts)
	assert.NotNil(t, result.Analysis.InvestmentRecommendation.RiskFactors)
	// Default maturity 5: 1.5 * 5 * 2 + 1 * 5 = 20.0
	assert.Equal(t, 20.0, result.Analysis.AIMetrics.AIRevenueExposure)
	assert.Equal(t, 5.0, result.Analysis.AIMetrics.AIInvestmentScore)
	assert.Equal(t, []string{"u"}, result.Analysis.AIStory.UseCases)
	assert.Equal(t, "AI strategy analysis not available at this time.", result.Analysis.AIStory.StrategySummary)
}

type panickingAIRepository struct{}

func (panickingAIRepository) GenerateJSON(ctx context.Context, systemInstruction, prompt string) (string, error) {
	panic("model client blew up")
}

func TestAnalyzeStockPanicReturnsDefaultResult(t *testing.T) {
	svc := newTestService(t, panickingAIRepository{}, &fakeMarketRepository{data: testStockData()})

	result, err := svc.AnalyzeStock(context.Background(), "NVDA", "1y")
	require.NoError(t, err)

	assert.Equal(t, dto.ActionHold, result.Analysis.InvestmentRecommendation.Action)
	assert.Equal(t, 5.0, result.Analysis.InvestmentRecommendation.AIScore)
	assert.Equal(t, "AI analysis not available at this time.", result.Analysis.InvestmentRecommendation.Reasoning)
	assert.Equal(t, 5.0, result.Analysis.AIMetrics.AIInvestmentScore)
	assert.Equal(t, 0.0, result.Analysis.AIMetrics.AIRevenueExposure)
	assert.NotEmpty(t, result.Analysis.AnalysisTimestamp)
}

func TestBuildCompanyContextDefaults(t *testing.T) {
	cc := buildCompanyContext(dto.CompanyInfo{Symbol: "XYZ"})

	assert.Equal(t, "XYZ", cc.Name)
	assert.Equal(t, "Unknown", cc.Sector)
	assert.Equal(t, "Unknown", cc.Industry)
	assert.Equal(t, "Unknown", cc.Country)
	assert.Equal(t, "No business summary available.", cc.BusinessSummary)
	assert.Zero(t, cc.MarketCap)
	assert.Zero(t, cc.Employees)
}

func TestAnalyzeStockInvalidActionCoercedToHold(t *testing.T) {
	aiRepo := &fakeAIRepository{responses: []string{
		`{"ai_maturity_score":5}`,
		`{"action":"STRONG BUY","ai_score":8,"reasoning":"r"}`,
		`{"strategy_summary":"s"}`,
	}}

	svc := newTestService(t, aiRepo, &fakeMarketRepository{data: testStockData()})

	result, err := svc.AnalyzeStock(context.Background(), "NVDA", "1y")
	require.NoError(t, err)
	assert.Equal(t, dto.ActionHold, result.Analysis.InvestmentRecommendation.Action)
	assert.Equal(t, 8.0, result.Analysis.InvestmentRecommendation.AIScore)
}

func TestAnalyze401KHappyPath(t *testing.T) {
	aiRepo := &fakeAIRepository{responses: []string{
		`{
			"overview": {"match_percentage": 50, "max_match_salary_percent": 6, "vesting_period": "immediate", "roth_available": true, "company_size": "large enterprise", "industry_rating": "excellent"},
			"recommendation": {"optimization_score": 9, "primary_advice": "max the match", "key_actions": ["a1"], "urgency_level": "high"},
			"contribution_strategy": {"recommended_contribution_percent": 15, "annual_savings_potential": "$10,000 - $20,000", "tax_optimization": "t", "recommended_actions": ["r1"]},
			"roth_analysis": {"recommendation": "Roth", "reasoning": "young workforce", "age_considerations": "a", "tax_bracket_impact": "t"},
			"fund_options": {"fund_categories": ["Index"], "recommended_funds": ["f1"], "expense_ratio_analysis": "low", "diversification_advice": "d"},
			"additional_benefits": {"other_benefits": ["HSA"], "financial_wellness_perks": ["advisor"], "catch_up_contributions": "c", "loan_provisions": "l"}
		}`,
	}}

	svc := newTestService(t, aiRepo, &fakeMarketRepository{})

	result, err := svc.Analyze401K(context.Background(), "Acme Corp")
	require.NoError(t, err)

	assert.Equal(t, 50.0, result.Overview.MatchPercentage)
	assert.True(t, result.Overview.RothAvailable)
	assert.Equal(t, "Roth", result.RothAnalysis.Recommendation)
	assert.NotEmpty(t, result.AnalysisTimestamp)
}

func TestAnalyze401KMissingSectionDefaulted(t *testing.T) {
	aiRepo := &fakeAIRepository{responses: []string{
		`{
			"overview": {"match_percentage": 100, "vesting_period": "2 years", "roth_available": false},
			"recommendation": {"optimization_score": 7, "primary_advice": "contribute more"}
		}`,
	}}

	svc := newTestService(t, aiRepo, &fakeMarketRepository{})

	result, err := svc.Analyze401K(context.Background(), "Acme Corp")
	require.NoError(t, err)

	// Present sections pass through.
	assert.Equal(t, 100.0, result.Overview.MatchPercentage)
	assert.Equal(t, 7.0, result.Recommendation.OptimizationScore)
	// Absent sections are filled with their documented defaults.
	assert.Equal(t, "Traditional", result.RothAnalysis.Recommendation)
	assert.Equal(t, 10.0, result.ContributionStrategy.RecommendedContributionPercent)
	assert.Equal(t, "Available for employees 50 and older", result.AdditionalBenefits.CatchUpContributions)
}

func TestAnalyze401KModelFailureReturnsDefaultDocument(t *testing.T) {
	aiRepo := &fakeAIRepository{err: errors.New("model unavailable")}
	svc := newTestService(t, aiRepo, &fakeMarketRepository{})

	result, err := svc.Analyze401K(context.Background(), "Acme Corp")
	require.NoError(t, err)

	assert.Equal(t, "Unknown", result.Overview.VestingPeriod)
	assert.Equal(t, 5.0, result.Recommendation.OptimizationScore)
	assert.Equal(t, "401K analysis temporarily unavailable.", result.Recommendation.PrimaryAdvice)
	assert.NotEmpty(t, result.AnalysisTimestamp)
}

func TestAnalyze401KUndecodableReplyReturnsDefaultDocument(t *testing.T) {
	aiRepo := &fakeAIRepository{responses: []string{"I cannot answer that."}}
	svc := newTestService(t, aiRepo, &fakeMarketRepository{})

	result, err := svc.Analyze401K(context.Background(), "Acme Corp")
	require.NoError(t, err)
	assert.Equal(t, "Traditional", result.RothAnalysis.Recommendation)
}
