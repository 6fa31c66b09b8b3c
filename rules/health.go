package rules

import "github.com/sahiti3636/finwise-ai/models"

// HealthScore rates financial health on a 0-100 scale across four equally
// weighted bands: emergency fund, savings rate, investment allocation and
// retirement savings. Each band contributes 25, 15 or 5 points.
func HealthScore(p *models.Profile) int {
	score := 0

	switch {
	case p.EmergencyFund >= p.Income*0.06:
		score += 25
	case p.EmergencyFund >= p.Income*0.03:
		score += 15
	default:
		score += 5
	}

	savingsRate := 0.0
	if p.Income > 0 {
		savingsRate = p.MonthlySavings / p.Income * 100
	}
	switch {
	case savingsRate >= 20:
		score += 25
	case savingsRate >= 10:
		score += 15
	default:
		score += 5
	}

	switch {
	case p.InvestmentAmount >= p.Income*0.1:
		score += 25
	case p.InvestmentAmount >= p.Income*0.05:
		score += 15
	default:
		score += 5
	}

	switch {
	case p.RetirementSavings >= p.Income*0.15:
		score += 25
	case p.RetirementSavings >= p.Income*0.1:
		score += 15
	default:
		score += 5
	}

	return score
}

// SavingsProgress reports progress toward the savings goal, capped at 100%.
// A zero goal reads as zero progress rather than an error.
type SavingsProgress struct {
	TotalSavings       float64 `json:"total_savings"`
	MonthlySavings     float64 `json:"monthly_savings"`
	SavingsGoal        float64 `json:"savings_goal"`
	ProgressPercentage float64 `json:"progress_percentage"`
}

func Progress(p *models.Profile) SavingsProgress {
	progress := 0.0
	if p.SavingsGoal > 0 {
		progress = p.TotalSavings / p.SavingsGoal * 100
	}
	if progress > 100 {
		progress = 100
	}
	return SavingsProgress{
		TotalSavings:       p.TotalSavings,
		MonthlySavings:     p.MonthlySavings,
		SavingsGoal:        p.SavingsGoal,
		ProgressPercentage: progress,
	}
}
