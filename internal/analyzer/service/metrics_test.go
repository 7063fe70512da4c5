package service

import (
	"testing"

	"golang-ai-analyzer/internal/analyzer/dto"

	"github.com/stretchr/testify/assert"
)

func TestCalculateAIMetrics(t *testing.T) {
	strategy := dto.AIStrategyAnalysis{
		AIMaturityScore: 8,
		AIInitiatives:   []string{"a", "b", "c"},
		Partnerships:    []string{"p1", "p2"},
	}

	metrics := CalculateAIMetrics("Technology", strategy)

	// 1.5 * 8 * 2 + 3 * 5 = 39.0
	assert.Equal(t, 39.0, metrics.AIRevenueExposure)
	assert.Equal(t, 2, metrics.AIPartnerships)
	// round(8 * 10) + 2 * 5 = 90
	assert.Equal(t, 90, metrics.AIPatents)
	assert.Equal(t, 8.0, metrics.AIInvestmentScore)
}

func TestCalculateAIMetricsPatents(t *testing.T) {
	strategy := dto.AIStrategyAnalysis{
		AIMaturityScore: 6,
		Partnerships:    []string{"p1", "p2"},
	}

	metrics := CalculateAIMetrics("Healthcare", strategy)
	assert.Equal(t, 70, metrics.AIPatents)
}

func TestCalculateAIMetricsUnknownSector(t *testing.T) {
	strategy := dto.AIStrategyAnalysis{
		AIMaturityScore: 5,
	}

	metrics := CalculateAIMetrics("Utilities", strategy)

	// Default multiplier 0.8: 0.8 * 5 * 2 = 8.0
	assert.Equal(t, 8.0, metrics.AIRevenueExposure)
}

func TestCalculateAIMetricsExposureCapped(t *testing.T) {
	strategy := dto.AIStrategyAnalysis{
		AIMaturityScore: 10,
		AIInitiatives:   make([]string, 20),
	}

	metrics := CalculateAIMetrics("Technology", strategy)
	assert.Equal(t, 100.0, metrics.AIRevenueExposure)
}

func TestCalculateAIMetricsRounding(t *testing.T) {
	strategy := dto.AIStrategyAnalysis{
		AIMaturityScore: 3.33,
		AIInitiatives:   []string{"a"},
	}

	// 1.1 * 3.33 * 2 + 5 = 12.326 rounds to 12.3
	metrics := CalculateAIMetrics("Healthcare", strategy)
	assert.Equal(t, 12.3, metrics.AIRevenueExposure)
}
