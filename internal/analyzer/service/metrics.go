package service

import (
	"math"

	"golang-ai-analyzer/internal/analyzer/dto"
)

// sectorAIMultipliers weights the revenue-exposure estimate by how
// AI-saturated each sector is.
var sectorAIMultipliers = map[string]float64{
	"Technology":             1.5,
	"Communication Services": 1.2,
	"Consumer Cyclical":      1.0,
	"Healthcare":             1.1,
	"Financial Services":     1.1,
	"Industrials":            0.8,
	"Consumer Defensive":     0.7,
}

const defaultSectorMultiplier = 0.8

// CalculateAIMetrics derives the metrics block locally from the strategy
// stage output. No model call is involved, so these values are always
// available even when every stage degraded.
func CalculateAIMetrics(sector string, strategy dto.AIStrategyAnalysis) dto.AIMetrics {
	multiplier, ok := sectorAIMultipliers[sector]
	if !ok {
		multiplier = defaultSectorMultiplier
	}

	exposure := multiplier*strategy.AIMaturityScore*2 + float64(len(strategy.AIInitiatives))*5
	exposure = math.Min(100, exposure)
	exposure = math.Round(exposure*10) / 10

	patents := int(math.Round(strategy.AIMaturityScore*10)) + len(strategy.Partnerships)*5
	if patents < 0 {
		patents = 0
	}

	return dto.AIMetrics{
		AIRevenueExposure: exposure,
		AIPartnerships:    len(strategy.Partnerships),
		AIPatents:         patents,
		AIInvestmentScore: strategy.AIMaturityScore,
	}
}
