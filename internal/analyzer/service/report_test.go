package service

import (
	"encoding/csv"
	"strings"
	"testing"

	"golang-ai-analyzer/internal/analyzer/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStockReportCSV(t *testing.T) {
	analysis := &dto.StockAnalysis{
		Company: dto.CompanyInfo{Symbol: "NVDA", LongName: "NVIDIA Corporation"},
		Analysis: dto.AnalysisResult{
			InvestmentRecommendation: dto.InvestmentRecommendation{Action: dto.ActionBuy, AIScore: 9},
			AIMetrics: dto.AIMetrics{
				AIRevenueExposure: 32.0,
				AIPartnerships:    1,
				AIPatents:         95,
				AIInvestmentScore: 9,
			},
			AnalysisTimestamp: "2026-08-31T10:00:00Z",
		},
	}

	out, err := BuildStockReportCSV(analysis)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Company",
		"Symbol",
		"AI Investment Recommendation",
		"AI Score",
		"AI Revenue Exposure %",
		"AI Partnerships",
		"AI Patents",
		"AI Investment Score",
		"Analysis Date",
	}, records[0])

	assert.Equal(t, []string{
		"NVIDIA Corporation",
		"NVDA",
		"BUY",
		"9.0",
		"32.0",
		"1",
		"95",
		"9.0",
		"2026-08-31T10:00:00Z",
	}, records[1])
}

func TestBuild401KReportCSV(t *testing.T) {
	result := dto.Default401KResult("2026-08-31T10:00:00Z")
	result.Overview.MatchPercentage = 50
	result.Overview.MaxMatchSalaryPercent = 6
	result.Overview.VestingPeriod = "immediate"
	result.Overview.RothAvailable = true

	out, err := Build401KReportCSV("Acme Corp", result)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, []string{
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
	}, records[0])

	row := records[1]
	assert.Equal(t, "Acme Corp", row[0])
	assert.Equal(t, "50.0", row[1])
	assert.Equal(t, "immediate", row[2])
	assert.Equal(t, "Yes", row[3])
	assert.Equal(t, "6.0", row[4])
	assert.Equal(t, "5.0", row[5])
	assert.Equal(t, "Traditional", row[7])
	assert.Equal(t, "Not calculated", row[8])
	assert.Equal(t, "2026-08-31T10:00:00Z", row[9])
}
