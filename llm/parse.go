package llm

import (
	"encoding/json"
	"strings"

	"github.com/sahiti3636/finwise-ai/models"
)

// ParseTaxPlan extracts the first {...} span from generated text and decodes
// it as a tax plan. Text without a usable span degrades to a single synthetic
// recommendation carrying the first 200 characters; parsing never fails.
func ParseTaxPlan(text string) *models.TaxPlan {
	if span, ok := jsonSpan(text, '{', '}'); ok {
		var plan models.TaxPlan
		if err := json.Unmarshal([]byte(span), &plan); err == nil {
			return &plan
		}
	}

	return &models.TaxPlan{
		Recommendations: []models.TaxRecommendation{
			{
				Title:           "Tax Optimization",
				Description:     excerpt(text, 200),
				PotentialSaving: 1000,
				Priority:        models.PriorityHigh,
				Category:        "Tax Optimization",
				Action:          "Review Options",
				Risk:            "Low",
				Returns:         "Tax Savings",
				LockIn:          "1 year",
			},
		},
		Summary: models.TaxSummary{
			TotalPotentialSavings: 1000,
			OptimizationScore:     60,
			CurrentTaxSaved:       0,
		},
	}
}

// ParseBenefits extracts the first [...] span from generated text and decodes
// it as a benefit list, degrading to a single synthetic entry.
func ParseBenefits(text string) []models.BenefitEntry {
	if span, ok := jsonSpan(text, '[', ']'); ok {
		var benefits []models.BenefitEntry
		if err := json.Unmarshal([]byte(span), &benefits); err == nil {
			return benefits
		}
	}

	return []models.BenefitEntry{
		{
			Name:              "General Benefits",
			Description:       excerpt(text, 200),
			EligibilityReason: "Based on your profile",
			Link:              "https://www.india.gov.in/topics/benefits",
			Amount:            "₹500-1000",
			Category:          "General",
			EstimatedTime:     "15-30 days",
		},
	}
}

// jsonSpan locates the substring between the first open delimiter and the
// last close delimiter.
func jsonSpan(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func excerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
