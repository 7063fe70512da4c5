package service

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"golang-ai-analyzer/internal/analyzer/dto"
)

var stockReportHeader = []string{
	"Company",
	"Symbol",
	"AI Investment Recommendation",
	"AI Score",
	"AI Revenue Exposure %",
	"AI Partnerships",
	"AI Patents",
	"AI Investment Score",
	"Analysis Date",
}

var fourOhOneKReportHeader = []string{
	"Company",
	"Match Percentage",
	"Vesting Period",
	"Roth Available",
	"Max Match Salary %",
	"Optimization Score",
	"Primary Recommendation",
	"Roth vs Traditional",
	"Annual Savings Potential",
	"Analysis Date",
}

// BuildStockReportCSV renders a one-row CSV report for a completed stock
// analysis.
func BuildStockReportCSV(analysis *dto.StockAnalysis) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(stockReportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	row := []string{
		analysis.Company.LongName,
		analysis.Company.Symbol,
		analysis.Analysis.InvestmentRecommendation.Action,
		fmt.Sprintf("%.1f", analysis.Analysis.InvestmentRecommendation.AIScore),
		fmt.Sprintf("%.1f", analysis.Analysis.AIMetrics.AIRevenueExposure),
		fmt.Sprintf("%d", analysis.Analysis.AIMetrics.AIPartnerships),
		fmt.Sprintf("%d", analysis.Analysis.AIMetrics.AIPatents),
		fmt.Sprintf("%.1f", analysis.Analysis.AIMetrics.AIInvestmentScore),
		analysis.Analysis.AnalysisTimestamp,
	}
	if err := w.Write(row); err != nil {
		return nil, fmt.Errorf("failed to write csv row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// Build401KReportCSV renders a one-row CSV report for a completed 401k
// analysis.
func Build401KReportCSV(companyName string, result *dto.FourOhOneKResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(fourOhOneKReportHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	rothAvailable := "No"
	if result.Overview.RothAvailable {
		rothAvailable = "Yes"
	}

	row := []string{
		companyName,
		fmt.Sprintf("%.1f", result.Overview.MatchPercentage),
		result.Overview.VestingPeriod,
		rothAvailable,
		fmt.Sprintf("%.1f", result.Overview.MaxMatchSalaryPercent),
		fmt.Sprintf("%.1f", result.Recommendation.OptimizationScore),
		result.Recommendation.PrimaryAdvice,
		result.RothAnalysis.Recommendation,
		result.ContributionStrategy.AnnualSavingsPotential,
		result.AnalysisTimestamp,
	}
	if err := w.Write(row); err != nil {
		return nil, fmt.Errorf("failed to write csv row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
