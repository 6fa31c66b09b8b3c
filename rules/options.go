package rules

import "github.com/sahiti3636/finwise-ai/models"

// TaxOptions builds the static deduction-section grid shown alongside the
// recommendation list. Invested amounts are rough allocations derived from
// the profile, not ledger data.
func TaxOptions(p *models.Profile) models.TaxOptions {
	return models.TaxOptions{
		"80C": {
			{
				Name:            "ELSS Mutual Funds",
				Limit:           150000,
				Invested:        min(p.InvestmentAmount, 150000),
				Returns:         "12-15%",
				Risk:            "High",
				LockIn:          "3 years",
				PotentialSaving: min(150000-p.InvestmentAmount, 50000) * assumedTaxRate,
			},
			{
				Name:            "PPF",
				Limit:           150000,
				Invested:        min(p.TotalSavings*0.3, 150000),
				Returns:         "7-8%",
				Risk:            "Low",
				LockIn:          "15 years",
				PotentialSaving: min(150000-p.TotalSavings*0.3, 50000) * assumedTaxRate,
			},
			{
				Name:            "NSC",
				Limit:           100000,
				Invested:        min(p.TotalSavings*0.2, 100000),
				Returns:         "6-7%",
				Risk:            "Low",
				LockIn:          "5 years",
				PotentialSaving: min(100000-p.TotalSavings*0.2, 30000) * assumedTaxRate,
			},
		},
		"80D": {
			{
				Name:            "Health Insurance Premium",
				Limit:           25000,
				Invested:        min(p.TaxDeductions, 25000),
				Returns:         "Tax Benefit",
				Risk:            "Low",
				LockIn:          "1 year",
				PotentialSaving: max(25000-p.TaxDeductions, 0) * assumedTaxRate,
			},
			{
				Name:            "Parents Health Insurance",
				Limit:           50000,
				Invested:        0,
				Returns:         "Tax Benefit",
				Risk:            "Low",
				LockIn:          "1 year",
				PotentialSaving: 50000 * assumedTaxRate,
			},
		},
		"80CCD": {
			{
				Name:            "NPS Investment",
				Limit:           50000,
				Invested:        0,
				Returns:         "8-10%",
				Risk:            "Medium",
				LockIn:          "Till 60",
				PotentialSaving: 50000 * assumedTaxRate,
			},
		},
	}
}
