package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang-ai-analyzer/internal/analyzer/config"
	"golang-ai-analyzer/internal/analyzer/dto"
	"golang-ai-analyzer/internal/analyzer/repository"
	"golang-ai-analyzer/pkg/logger"
	"golang-ai-analyzer/pkg/telegram"
	"golang-ai-analyzer/pkg/utils"
)

// AnalyzerService runs the analysis pipelines. Stock mode never fails once
// market data is in hand; every model stage has a static fallback and the
// assembled result is always complete. 401k mode never fails at all.
type AnalyzerService interface {
	AnalyzeStock(ctx context.Context, symbol, period string) (*dto.StockAnalysis, error)
	Analyze401K(ctx context.Context, companyName string) (*dto.FourOhOneKResult, error)
}

type analyzerService struct {
	cfg        *config.Config
	logger     *logger.Logger
	aiRepo     repository.AIRepository
	marketRepo repository.MarketDataRepository
	notifier   telegram.Notifier
}

// NewAnalyzerService creates a new instance of analyzerService.
func NewAnalyzerService(
	cfg *config.Config,
	log *logger.Logger,
	aiRepo repository.AIRepository,
	marketRepo repository.MarketDataRepository,
	notifier telegram.Notifier,
) AnalyzerService {
	return &analyzerService{
		cfg:        cfg,
		logger:     log,
		aiRepo:     aiRepo,
		marketRepo: marketRepo,
		notifier:   notifier,
	}
}

// AnalyzeStock fetches market data for the symbol and runs the three model
// stages plus the local metrics over it. A bad symbol is the only error the
// caller ever sees; model failures degrade to static defaults instead.
func (s *analyzerService) AnalyzeStock(ctx context.Context, symbol, period string) (*dto.StockAnalysis, error) {
	stockData, err := s.marketRepo.Get(ctx, dto.GetStockDataParam{Symbol: symbol, Range: period})
	if err != nil {
		if errors.Is(err, repository.ErrSymbolNotFound) {
			return nil, err
		}
		s.logger.Error("failed to fetch market data", logger.StringField("symbol", symbol), logger.ErrorField(err))
		return nil, fmt.Errorf("failed to fetch market data: %w", err)
	}

	cc := buildCompanyContext(stockData.Info)
	analysis := s.runStockPipeline(ctx, cc)

	return &dto.StockAnalysis{
		Company:  stockData.Info,
		Prices:   stockData.Prices,
		Analysis: *analysis,
	}, nil
}

// runStockPipeline executes the model stages. The recover guard exists so a
// panic anywhere in stage handling still yields the documented whole-result
// default rather than a 500.
func (s *analyzerService) runStockPipeline(ctx context.Context, cc dto.CompanyContext) (result *dto.AnalysisResult) {
	degraded := false

	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("stock analysis pipeline panicked", logger.Field("panic", rec), logger.StringField("symbol", cc.Symbol))
			result = dto.DefaultAnalysisResult(utils.Timestamp())
			s.notifyDegraded("stock", cc.Symbol, fmt.Sprintf("pipeline panic: %v", rec))
		}
	}()

	strategy, ok := s.runStrategyStage(ctx, cc)
	degraded = degraded || !ok

	recommendation, ok := s.runRecommendationStage(ctx, cc, strategy)
	degraded = degraded || !ok

	story, ok := s.runStoryStage(ctx, cc, strategy)
	degraded = degraded || !ok

	metrics := CalculateAIMetrics(cc.Sector, strategy)

	if degraded {
		s.notifyDegraded("stock", cc.Symbol, "one or more analysis stages returned a static fallback")
	}

	return &dto.AnalysisResult{
		InvestmentRecommendation: recommendation,
		AIMetrics:                metrics,
		AIStory:                  story,
		AnalysisTimestamp:        utils.Timestamp(),
	}
}

func (s *analyzerService) runStrategyStage(ctx context.Context, cc dto.CompanyContext) (dto.AIStrategyAnalysis, bool) {
	prompt := repository.BuildAIStrategyPrompt(cc)

	content, err := s.aiRepo.GenerateJSON(ctx, repository.AIStrategySystemInstruction, prompt)
	if err != nil {
		s.logger.Error("strategy stage failed", logger.StringField("symbol", cc.Symbol), logger.ErrorField(err))
		return dto.DefaultAIStrategyAnalysis(), false
	}

	// Decoding starts from the stage default so fields absent from a
	// partial reply keep their documented values and empty collections.
	strategy := dto.DefaultAIStrategyAnalysis()
	if !repository.DecodeStagePayload(content, &strategy) {
		s.logger.Warn("strategy stage returned undecodable content", logger.StringField("symbol", cc.Symbol))
		return dto.DefaultAIStrategyAnalysis(), false
	}

	return strategy, true
}

func (s *analyzerService) runRecommendationStage(ctx context.Context, cc dto.CompanyContext, strategy dto.AIStrategyAnalysis) (dto.InvestmentRecommendation, bool) {
	prompt := repository.BuildRecommendationPrompt(cc, strategy)

	content, err := s.aiRepo.GenerateJSON(ctx, repository.RecommendationSystemInstruction, prompt)
	if err != nil {
		s.logger.Error("recommendation stage failed", logger.StringField("symbol", cc.Symbol), logger.ErrorField(err))
		return dto.DefaultInvestmentRecommendation(), false
	}

	rec := dto.DefaultInvestmentRecommendation()
	if !repository.DecodeStagePayload(content, &rec) {
		s.logger.Warn("recommendation stage returned undecodable content", logger.StringField("symbol", cc.Symbol))
		return dto.DefaultInvestmentRecommendation(), false
	}

	switch rec.Action {
	case dto.ActionBuy, dto.ActionHold, dto.ActionSell:
	default:
		rec.Action = dto.ActionHold
	}

	return rec, true
}

func (s *analyzerService) runStoryStage(ctx context.Context, cc dto.CompanyContext, strategy dto.AIStrategyAnalysis) (dto.AIStory, bool) {
	prompt := repository.BuildAIStoryPrompt(cc, strategy)

	content, err := s.aiRepo.GenerateJSON(ctx, repository.AIStorySystemInstruction, prompt)
	if err != nil {
		s.logger.Error("story stage failed", logger.StringField("symbol", cc.Symbol), logger.ErrorField(err))
		return dto.DefaultAIStory(), false
	}

	story := dto.DefaultAIStory()
	if !repository.DecodeStagePayload(content, &story) {
		s.logger.Warn("story stage returned undecodable content", logger.StringField("symbol", cc.Symbol))
		return dto.DefaultAIStory(), false
	}

	return story, true
}

// Analyze401K runs the single-stage 401k benefits analysis. Any failure,
// from the model call to decoding, degrades to the documented default
// document; the returned error is always nil.
func (s *analyzerService) Analyze401K(ctx context.Context, companyName string) (*dto.FourOhOneKResult, error) {
	prompt := repository.Build401KBenefitsPrompt(companyName)

	content, err := s.aiRepo.GenerateJSON(ctx, repository.FourOhOneKSystemInstruction, prompt)
	if err != nil {
		s.logger.Error("401k analysis failed", logger.StringField("company", companyName), logger.ErrorField(err))
		s.notifyDegraded("401k", companyName, "model call failed")
		return dto.Default401KResult(utils.Timestamp()), nil
	}

	var payload dto.FourOhOneKPayload
	if !repository.DecodeStagePayload(content, &payload) {
		s.logger.Warn("401k analysis returned undecodable content", logger.StringField("company", companyName))
		s.notifyDegraded("401k", companyName, "undecodable model reply")
		return dto.Default401KResult(utils.Timestamp()), nil
	}

	return payload.Materialize(utils.Timestamp()), nil
}

func (s *analyzerService) notifyDegraded(mode, subject, reason string) {
	msg := telegram.FormatDegradedAnalysisMessage(time.Now(), mode, subject, reason)
	if err := s.notifier.SendMessage(msg); err != nil {
		s.logger.Warn("failed to send degraded-analysis alert", logger.ErrorField(err))
	}
}

// buildCompanyContext normalizes the raw company info for prompt rendering.
// Missing text fields become "Unknown" so the templates never interpolate an
// empty string.
func buildCompanyContext(info dto.CompanyInfo) dto.CompanyContext {
	cc := dto.CompanyContext{
		Symbol:          info.Symbol,
		Name:            info.LongName,
		Sector:          info.Sector,
		Industry:        info.Industry,
		BusinessSummary: info.LongBusinessSummary,
		MarketCap:       info.MarketCap,
		Employees:       info.FullTimeEmployees,
		Revenue:         info.TotalRevenue,
		Website:         info.Website,
		Country:         info.Country,
	}
	if cc.Name == "" {
		cc.Name = info.Symbol
	}
	if cc.Sector == "" {
		cc.Sector = "Unknown"
	}
	if cc.Industry == "" {
		cc.Industry = "Unknown"
	}
	if cc.BusinessSummary == "" {
		cc.BusinessSummary = "No business summary available."
	}
	if cc.Country == "" {
		cc.Country = "Unknown"
	}
	return cc
}
