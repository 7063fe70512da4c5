package dto

// Overview401K summarizes the plan's headline terms.
type Overview401K struct {
	MatchPercentage       float64 `json:"match_percentage"`
	MaxMatchSalaryPercent float64 `json:"max_match_salary_percent"`
	VestingPeriod         string  `json:"vesting_period"`
	RothAvailable         bool    `json:"roth_available"`
	CompanySize           string  `json:"company_size"`
	IndustryRating        string  `json:"industry_rating"`
}

// Recommendation401K is the optimization recommendation section.
type Recommendation401K struct {
	OptimizationScore float64  `json:"optimization_score"`
	PrimaryAdvice     string   `json:"primary_advice"`
	KeyActions        []string `json:"key_actions"`
	UrgencyLevel      string   `json:"urgency_level"`
}

// ContributionStrategy401K is the contribution strategy section.
type ContributionStrategy401K struct {
	RecommendedContributionPercent float64  `json:"recommended_contribution_percent"`
	AnnualSavingsPotential         string   `json:"annual_savings_potential"`
	TaxOptimization                string   `json:"tax_optimization"`
	RecommendedActions             []string `json:"recommended_actions"`
}

// RothAnalysis401K is the Roth-versus-Traditional section.
type RothAnalysis401K struct {
	Recommendation    string `json:"recommendation"`
	Reasoning         string `json:"reasoning"`
	AgeConsiderations string `json:"age_considerations"`
	TaxBracketImpact  string `json:"tax_bracket_impact"`
}

// FundOptions401K is the investment options section.
type FundOptions401K struct {
	FundCategories        []string `json:"fund_categories"`
	RecommendedFunds      []string `json:"recommended_funds"`
	ExpenseRatioAnalysis  string   `json:"expense_ratio_analysis"`
	DiversificationAdvice string   `json:"diversification_advice"`
}

// AdditionalBenefits401K is the additional benefits section.
type AdditionalBenefits401K struct {
	OtherBenefits          []string `json:"other_benefits"`
	FinancialWellnessPerks []string `json:"financial_wellness_perks"`
	CatchUpContributions   string   `json:"catch_up_contributions"`
	LoanProvisions         string   `json:"loan_provisions"`
}

// FourOhOneKPayload is the wire shape of the model's reply. Sections are
// pointers so an absent section is distinguishable from a present-but-empty
// one and can be defaulted independently.
type FourOhOneKPayload struct {
	Overview             *Overview401K             `json:"overview"`
	Recommendation       *Recommendation401K       `json:"recommendation"`
	ContributionStrategy *ContributionStrategy401K `json:"contribution_strategy"`
	RothAnalysis         *RothAnalysis401K         `json:"roth_analysis"`
	FundOptions          *FundOptions401K          `json:"fund_options"`
	AdditionalBenefits   *AdditionalBenefits401K   `json:"additional_benefits"`
}

// FourOhOneKResult is the assembled 401k analysis. Every section is always
// populated; absent sections are replaced by their documented defaults.
type FourOhOneKResult struct {
	Overview             Overview401K             `json:"overview"`
	Recommendation       Recommendation401K       `json:"recommendation"`
	ContributionStrategy ContributionStrategy401K `json:"contribution_strategy"`
	RothAnalysis         RothAnalysis401K         `json:"roth_analysis"`
	FundOptions          FundOptions401K          `json:"fund_options"`
	AdditionalBenefits   AdditionalBenefits401K   `json:"additional_benefits"`
	AnalysisTimestamp    string                   `json:"analysis_timestamp"`
}

// DefaultOverview401K is the overview fallback.
func DefaultOverview401K() Overview401K {
	return Overview401K{
		VestingPeriod:  "Unknown",
		CompanySize:    "Unknown",
		IndustryRating: "Unknown",
	}
}

// DefaultRecommendation401K is the recommendation fallback.
func DefaultRecommendation401K() Recommendation401K {
	return Recommendation401K{
		OptimizationScore: 5,
		PrimaryAdvice:     "401K analysis temporarily unavailable.",
		KeyActions:        []string{"Contribute at least enough to get company match", "Review plan documents"},
		UrgencyLevel:      "medium",
	}
}

// DefaultContributionStrategy401K is the contribution strategy fallback.
func DefaultContributionStrategy401K() ContributionStrategy401K {
	return ContributionStrategy401K{
		RecommendedContributionPercent: 10,
		AnnualSavingsPotential:         "Not calculated",
		TaxOptimization:                "Standard tax-deferred benefits apply",
		RecommendedActions:             []string{"Start with company match", "Increase contributions annually"},
	}
}

// DefaultRothAnalysis401K is the Roth analysis fallback.
func DefaultRothAnalysis401K() RothAnalysis401K {
	return RothAnalysis401K{
		Recommendation:    "Traditional",
		Reasoning:         "Default recommendation for tax-deferred savings",
		AgeConsiderations: "Younger employees may benefit from Roth options",
		TaxBracketImpact:  "Consider current vs expected future tax rates",
	}
}

// DefaultFundOptions401K is the fund options fallback.
func DefaultFundOptions401K() FundOptions401K {
	return FundOptions401K{
		FundCategories:        []string{"Target Date Funds", "Index Funds", "Bond Funds"},
		RecommendedFunds:      []string{"Low-cost index funds", "Target-date funds for simplicity"},
		ExpenseRatioAnalysis:  "Look for funds with expense ratios under 0.5%",
		DiversificationAdvice: "Mix of stocks, bonds, and international exposure",
	}
}

// DefaultAdditionalBenefits401K is the additional benefits fallback.
func DefaultAdditionalBenefits401K() AdditionalBenefits401K {
	return AdditionalBenefits401K{
		OtherBenefits:          []string{},
		FinancialWellnessPerks: []string{},
		CatchUpContributions:   "Available for employees 50 and older",
		LoanProvisions:         "Check with HR for loan availability",
	}
}

// Default401KResult is the whole-document fallback.
func Default401KResult(timestamp string) *FourOhOneKResult {
	return &FourOhOneKResult{
		Overview:             DefaultOverview401K(),
		Recommendation:       DefaultRecommendation401K(),
		ContributionStrategy: DefaultContributionStrategy401K(),
		RothAnalysis:         DefaultRothAnalysis401K(),
		FundOptions:          DefaultFundOptions401K(),
		AdditionalBenefits:   DefaultAdditionalBenefits401K(),
		AnalysisTimestamp:    timestamp,
	}
}

// Materialize converts the wire payload into a fully populated result,
// substituting the documented default for every absent section.
func (p *FourOhOneKPayload) Materialize(timestamp string) *FourOhOneKResult {
	result := Default401KResult(timestamp)
	if p == nil {
		return result
	}
	if p.Overview != nil {
		result.Overview = *p.Overview
	}
	if p.Recommendation != nil {
		result.Recommendation = *p.Recommendation
	}
	if p.ContributionStrategy != nil {
		result.ContributionStrategy = *p.ContributionStrategy
	}
	if p.RothAnalysis != nil {
		result.RothAnalysis = *p.RothAnalysis
	}
	if p.FundOptions != nil {
		result.FundOptions = *p.FundOptions
	}
	if p.AdditionalBenefits != nil {
		result.AdditionalBenefits = *p.AdditionalBenefits
	}
	return result
}
