package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang-ai-analyzer/internal/analyzer/dto"
	"golang-ai-analyzer/pkg/sanitize"
	"golang-ai-analyzer/pkg/utils"
)

// Fixed system instructions, one per prompt template.
const (
	AIStrategySystemInstruction     = "You are an expert AI investment analyst with deep knowledge of technology companies and their AI strategies."
	RecommendationSystemInstruction = "You are a senior investment analyst specializing in AI and technology investments. Provide clear, actionable investment recommendations."
	AIStorySystemInstruction        = "You are an expert at creating compelling investment narratives focused on AI potential. Be specific and factual."
	FourOhOneKSystemInstruction     = "You are an expert financial advisor and benefits analyst specializing in 401K plans and retirement optimization. Provide detailed, practical advice based on current industry standards and best practices."
)

const businessSummaryMaxLen = 1000

// BuildAIStrategyPrompt renders the AI-strategy template from the sanitized
// company context.
func BuildAIStrategyPrompt(cc dto.CompanyContext) string {
	summary := sanitize.Text(cc.BusinessSummary)
	if len(summary) > businessSummaryMaxLen {
		summary = summary[:businessSummaryMaxLen]
	}

	prompt := fmt.Sprintf(`Analyze the AI strategy and potential of %s (%s).

Company Details:
- Sector: %s
- Industry: %s
- Business Summary: %s
- Market Cap: %s
- Employees: %s

Please provide a comprehensive analysis of:
1. Current AI initiatives and strategies
2. AI competitive advantages
3. Potential AI revenue streams
4. AI partnerships and collaborations
5. Future AI opportunities
6. AI-related risks and challenges

Respond in JSON format with the following structure:
{
    "ai_initiatives": ["initiative1", "initiative2"],
    "competitive_advantages": ["advantage1", "advantage2"],
    "revenue_streams": ["stream1", "stream2"],
    "partnerships": ["partner1", "partner2"],
    "opportunities": ["opportunity1", "opportunity2"],
    "risks": ["risk1", "risk2"],
    "ai_maturity_score": 0-10,
    "overall_assessment": "detailed assessment"
}`,
		sanitize.Text(cc.Name),
		sanitize.Text(cc.Symbol),
		sanitize.Text(cc.Sector),
		sanitize.Text(cc.Industry),
		summary,
		utils.FormatBillions(cc.MarketCap),
		utils.FormatCount(cc.Employees),
	)

	return sanitize.Text(prompt)
}

// BuildRecommendationPrompt renders the investment-recommendation template
// from the context and the AI-strategy stage output.
func BuildRecommendationPrompt(cc dto.CompanyContext, strategy dto.AIStrategyAnalysis) string {
	prompt := fmt.Sprintf(`Based on the AI analysis of %s (%s), provide an investment recommendation specifically focused on AI potential.

Company Context:
- Sector: %s
- Industry: %s
- Market Cap: %s

AI Analysis Summary:
- AI Maturity Score: %g/10
- Key AI Initiatives: %s
- Competitive Advantages: %s
- AI Opportunities: %s

Provide a clear investment recommendation (BUY/HOLD/SELL) based on AI potential with:
1. Clear reasoning focused on AI investment merits
2. AI potential score (0-10)
3. Specific AI-related catalysts or concerns

Respond in JSON format:
{
    "action": "BUY/HOLD/SELL",
    "ai_score": 0-10,
    "reasoning": "detailed reasoning focusing on AI investment potential",
    "key_catalysts": ["catalyst1", "catalyst2"],
    "risk_factors": ["risk1", "risk2"]
}`,
		sanitize.Text(cc.Name),
		sanitize.Text(cc.Symbol),
		sanitize.Text(cc.Sector),
		sanitize.Text(cc.Industry),
		utils.FormatBillions(cc.MarketCap),
		strategy.AIMaturityScore,
		joinTop(strategy.AIInitiatives, 3),
		joinTop(strategy.CompetitiveAdvantages, 3),
		joinTop(strategy.Opportunities, 3),
	)

	return sanitize.Text(prompt)
}

// BuildAIStoryPrompt renders the narrative-story template from the context
// and the AI-strategy stage output.
func BuildAIStoryPrompt(cc dto.CompanyContext, strategy dto.AIStrategyAnalysis) string {
	initiatives, _ := json.Marshal(strategy.AIInitiatives)
	advantages, _ := json.Marshal(strategy.CompetitiveAdvantages)
	opportunities, _ := json.Marshal(strategy.Opportunities)
	streams, _ := json.Marshal(strategy.RevenueStreams)

	prompt := fmt.Sprintf(`Create a compelling AI investment story for %s (%s).

Based on this AI analysis:
- AI Initiatives: %s
- Competitive Advantages: %s
- AI Opportunities: %s
- Revenue Streams: %s

Create an investment narrative that includes:
1. Strategic AI positioning summary
2. Specific AI use cases and applications
3. Future AI growth opportunities
4. Competitive AI advantages

Respond in JSON format:
{
    "strategy_summary": "2-3 sentence summary of AI strategy",
    "use_cases": ["specific use case 1", "specific use case 2", "specific use case 3"],
    "opportunities": ["growth opportunity 1", "growth opportunity 2"],
    "competitive_advantages": ["advantage 1", "advantage 2"]
}`,
		sanitize.Text(cc.Name),
		sanitize.Text(cc.Symbol),
		string(initiatives),
		string(advantages),
		string(opportunities),
		string(streams),
	)

	return sanitize.Text(prompt)
}

// Build401KBenefitsPrompt renders the 401k-benefits template from a company
// name.
func Build401KBenefitsPrompt(companyName string) string {
	prompt := fmt.Sprintf(`Analyze the 401K benefits and retirement plan for %s.

Please provide a comprehensive analysis including:
1. Company 401K match details (percentage and limits)
2. Vesting schedule and requirements
3. Available investment options and fund categories
4. Roth 401K availability and recommendations
5. Contribution strategies and optimization tips
6. Additional retirement benefits and perks
7. Comparison to industry standards
8. Personalized recommendations for maximizing benefits

Respond in JSON format with the following structure:
{
    "overview": {
        "match_percentage": 0-100,
        "max_match_salary_percent": 0-15,
        "vesting_period": "immediate/1 year/2 years/etc",
        "roth_available": true/false,
        "company_size": "startup/mid-size/large enterprise",
        "industry_rating": "below average/average/above average/excellent"
    },
    "recommendation": {
        "optimization_score": 0-10,
        "primary_advice": "main recommendation",
        "key_actions": ["action1", "action2", "action3"],
        "urgency_level": "low/medium/high"
    },
    "contribution_strategy": {
        "recommended_contribution_percent": 0-30,
        "annual_savings_potential": "$X,XXX - $XX,XXX",
        "tax_optimization": "details about tax benefits",
        "recommended_actions": ["specific action 1", "specific action 2"]
    },
    "roth_analysis": {
        "recommendation": "Roth/Traditional/Mix",
        "reasoning": "detailed explanation",
        "age_considerations": "advice based on career stage",
        "tax_bracket_impact": "current vs future tax considerations"
    },
    "fund_options": {
        "fund_categories": ["Large Cap", "International", "Bonds", "Target Date"],
        "recommended_funds": ["specific fund recommendation 1", "fund recommendation 2"],
        "expense_ratio_analysis": "low/medium/high cost funds available",
        "diversification_advice": "portfolio allocation recommendations"
    },
    "additional_benefits": {
        "other_benefits": ["pension", "stock options", "HSA", "etc"],
        "financial_wellness_perks": ["financial advisor access", "planning tools"],
        "catch_up_contributions": "available for 50+ employees",
        "loan_provisions": "details about 401k loans if available"
    }
}

Base your analysis on typical benefits for companies of this size and industry.
For well-known companies, use publicly available information about their actual benefits.
Provide specific, actionable recommendations.`,
		sanitize.Text(companyName),
	)

	return sanitize.Text(prompt)
}

func joinTop(items []string, n int) string {
	if len(items) > n {
		items = items[:n]
	}
	return strings.Join(items, ", ")
}
