package rules

import (
	"fmt"

	"github.com/sahiti3636/finwise-ai/models"
)

// Assumed flat marginal tax rate used across the recommendation math. A proxy
// rather than real bracket computation; the score and saving figures depend
// on it staying fixed.
const assumedTaxRate = 0.3

// TaxPlan computes the structured tax recommendations and summary for a
// profile. Incomplete profiles short-circuit to a fixed onboarding plan.
func TaxPlan(p *models.Profile) *models.TaxPlan {
	if !p.IsComplete() {
		return onboardingPlan()
	}

	recs := []models.TaxRecommendation{}
	total := 0.0

	add := func(rec models.TaxRecommendation, countsTowardTotal bool) {
		recs = append(recs, rec)
		if countsTowardTotal {
			total += rec.PotentialSaving
		}
	}

	// Income bracket: highest matching rule wins.
	switch {
	case p.Income > 1000000:
		elssHeadroom := min(150000-p.InvestmentAmount, 50000)
		if elssHeadroom > 0 {
			add(models.TaxRecommendation{
				Title:           "Maximize ELSS Investment",
				Description:     fmt.Sprintf("Invest %s more in ELSS funds to reach the maximum limit.", models.FormatINR(elssHeadroom)),
				PotentialSaving: elssHeadroom * assumedTaxRate,
				Priority:        models.PriorityHigh,
				Category:        "80C",
				Action:          "Invest Now",
				Risk:            "High",
				Returns:         "12-15%",
				LockIn:          "3 years",
			}, true)
		}
		add(models.TaxRecommendation{
			Title:           "NPS Investment",
			Description:     "Invest in NPS under Section 80CCD(1B) for additional ₹50,000 deduction.",
			PotentialSaving: 50000 * assumedTaxRate,
			Priority:        models.PriorityMedium,
			Category:        "NPS",
			Action:          "Learn More",
			Risk:            "Medium",
			Returns:         "8-10%",
			LockIn:          "Till 60",
		}, true)

	case p.Income > 500000:
		ppfHeadroom := min(150000-p.TotalSavings, 50000)
		if ppfHeadroom > 0 {
			add(models.TaxRecommendation{
				Title:           "Start PPF Investment",
				Description:     fmt.Sprintf("Invest %s in PPF for tax-free returns and deductions.", models.FormatINR(ppfHeadroom)),
				PotentialSaving: ppfHeadroom * assumedTaxRate,
				Priority:        models.PriorityHigh,
				Category:        "80C",
				Action:          "Open PPF Account",
				Risk:            "Low",
				Returns:         "7-8%",
				LockIn:          "15 years",
			}, true)
		}

	default:
		basicSavings := min(50000, p.Income*0.1)
		if basicSavings > 0 {
			add(models.TaxRecommendation{
				Title:           "Start Basic Savings",
				Description:     fmt.Sprintf("Start with %s in basic savings instruments.", models.FormatINR(basicSavings)),
				PotentialSaving: basicSavings * 0.1, // lower effective rate at this income
				Priority:        models.PriorityMedium,
				Category:        "Basic Savings",
				Action:          "Start Saving",
				Risk:            "Low",
				Returns:         "4-6%",
				LockIn:          "Flexible",
			}, true)
		}
	}

	// Age: under 30 and over 50 get an entry, 30-50 inclusive none.
	if p.Age < 30 {
		add(models.TaxRecommendation{
			Title:           "Long-term Investment Strategy",
			Description:     "You're young! Focus on equity-based investments for long-term wealth creation.",
			PotentialSaving: 30000,
			Priority:        models.PriorityHigh,
			Category:        "Investment Strategy",
			Action:          "Plan Investments",
			Risk:            "High",
			Returns:         "12-18%",
			LockIn:          "5+ years",
		}, true)
	} else if p.Age > 50 {
		add(models.TaxRecommendation{
			Title:           "Conservative Investment Approach",
			Description:     "Focus on debt instruments and tax-saving bonds for stable returns.",
			PotentialSaving: 25000,
			Priority:        models.PriorityHigh,
			Category:        "Conservative",
			Action:          "Review Portfolio",
			Risk:            "Low",
			Returns:         "6-8%",
			LockIn:          "3-5 years",
		}, true)
	}

	if p.Dependents >= 2 {
		add(models.TaxRecommendation{
			Title:           "Health Insurance for Family",
			Description:     "Take health insurance for your family to claim deduction up to ₹25,000.",
			PotentialSaving: 25000 * assumedTaxRate,
			Priority:        models.PriorityHigh,
			Category:        "80D",
			Action:          "Get Quote",
			Risk:            "Low",
			Returns:         "Tax Benefit",
			LockIn:          "1 year",
		}, true)
	} else if p.Dependents == 1 {
		add(models.TaxRecommendation{
			Title:           "Individual Health Insurance",
			Description:     "Consider health insurance for yourself to claim deduction up to ₹15,000.",
			PotentialSaving: 15000 * assumedTaxRate,
			Priority:        models.PriorityMedium,
			Category:        "80D",
			Action:          "Get Quote",
			Risk:            "Low",
			Returns:         "Tax Benefit",
			LockIn:          "1 year",
		}, true)
	}

	// Emergency fund shortfall is informational: no tax saving contribution.
	if shortfall := p.Income*0.06 - p.EmergencyFund; shortfall > 0 {
		add(models.TaxRecommendation{
			Title:           "Build Emergency Fund",
			Description:     fmt.Sprintf("Build emergency fund of %s for financial security.", models.FormatINR(shortfall)),
			PotentialSaving: 0,
			Priority:        models.PriorityHigh,
			Category:        "Emergency Fund",
			Action:          "Start Saving",
			Risk:            "Low",
			Returns:         "4-6%",
			LockIn:          "Flexible",
		}, false)
	}

	if shortfall := p.Income*0.15 - p.RetirementSavings; shortfall > 0 {
		add(models.TaxRecommendation{
			Title:           "Retirement Planning",
			Description:     fmt.Sprintf("Allocate %s annually for retirement planning.", models.FormatINR(shortfall)),
			PotentialSaving: shortfall * assumedTaxRate,
			Priority:        models.PriorityMedium,
			Category:        "Retirement",
			Action:          "Plan Retirement",
			Risk:            "Medium",
			Returns:         "8-12%",
			LockIn:          "Long-term",
		}, true)
	}

	return &models.TaxPlan{
		Recommendations: recs,
		Summary: models.TaxSummary{
			TotalPotentialSavings: total,
			OptimizationScore:     optimizationScore(len(recs), true),
			CurrentTaxSaved:       p.TaxDeductions * assumedTaxRate,
		},
	}
}

func onboardingPlan() *models.TaxPlan {
	return &models.TaxPlan{
		Recommendations: []models.TaxRecommendation{
			{
				Title:           "Complete Your Profile",
				Description:     "Please update your profile with accurate financial information to receive personalized recommendations.",
				PotentialSaving: 0,
				Priority:        models.PriorityHigh,
				Category:        "Profile Setup",
				Action:          "Update Profile",
				Risk:            "None",
				Returns:         "Personalized Advice",
				LockIn:          "None",
			},
			{
				Title:           "Basic Tax Planning",
				Description:     "Start with basic tax-saving investments like PPF and ELSS once you have income details.",
				PotentialSaving: 45000, // 1.5L at the assumed rate
				Priority:        models.PriorityMedium,
				Category:        "80C",
				Action:          "Learn More",
				Risk:            "Low to Medium",
				Returns:         "7-15%",
				LockIn:          "3-15 years",
			},
		},
		Summary: models.TaxSummary{
			TotalPotentialSavings: 45000,
			OptimizationScore:     30,
			CurrentTaxSaved:       0,
		},
	}
}

// optimizationScore is bounded to [30, 95]: base 30, 15 per recommendation,
// 20 for a complete profile.
func optimizationScore(recommendations int, complete bool) int {
	score := 30 + recommendations*15
	if complete {
		score += 20
	}
	if score > 95 {
		return 95
	}
	return score
}
