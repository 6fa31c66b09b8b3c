// Package rules contains the deterministic recommendation engines. Every
// function here is a pure transform of a profile snapshot: no I/O, no
// randomness, stable output order.
package rules

import "github.com/sahiti3636/finwise-ai/models"

// tipRule pairs a guard with the tips it contributes. Rules are evaluated in
// declaration order and are not mutually exclusive.
type tipRule struct {
	applies func(*models.Profile) bool
	tips    []string
}

var taxTipRules = []tipRule{
	{
		applies: func(p *models.Profile) bool { return p.Income > 1000000 },
		tips: []string{
			"Invest in ELSS for tax deduction under 80C.",
			"Consider NPS for additional tax benefits.",
		},
	},
	{
		applies: func(p *models.Profile) bool { return p.Income > 500000 },
		tips:    []string{"Maximize 80C deductions with PPF and ELSS."},
	},
	{
		applies: func(p *models.Profile) bool { return p.Dependents >= 2 },
		tips: []string{
			"Claim deductions for dependent care under 80D.",
			"Consider health insurance for family tax benefits.",
		},
	},
	{
		applies: func(p *models.Profile) bool { return p.InvestmentAmount < p.Income*0.1 },
		tips:    []string{"Increase investment allocation to 10% of income."},
	},
	{
		applies: func(p *models.Profile) bool { return p.MonthlySavings < p.Income*0.2 },
		tips:    []string{"Aim to save at least 20% of your monthly income."},
	},
	{
		applies: func(p *models.Profile) bool { return p.EmergencyFund < p.Income*0.06 },
		tips:    []string{"Build emergency fund equivalent to 6 months of income."},
	},
	{
		applies: func(p *models.Profile) bool { return p.RetirementSavings < p.Income*0.15 },
		tips:    []string{"Allocate 15% of income for retirement planning."},
	},
}

// TaxTips returns the short tax tips whose guards hold for the profile, in
// fixed rule order.
func TaxTips(p *models.Profile) []string {
	tips := []string{}
	for _, rule := range taxTipRules {
		if rule.applies(p) {
			tips = append(tips, rule.tips...)
		}
	}
	return tips
}
