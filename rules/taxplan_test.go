package rules

import (
	"testing"

	"github.com/sahiti3636/finwise-ai/models"
)

func completeProfile() *models.Profile {
	return &models.Profile{
		Name:   "Asha",
		Email:  "asha@example.com",
		Income: 1200000,
		Age:    25,
	}
}

func TestTaxPlanIncompleteProfile(t *testing.T) {
	plan := TaxPlan(&models.Profile{})

	if len(plan.Recommendations) != 2 {
		t.Fatalf("expected 2 onboarding recommendations, got %d", len(plan.Recommendations))
	}
	if plan.Recommendations[0].Title != "Complete Your Profile" {
		t.Errorf("unexpected first recommendation: %q", plan.Recommendations[0].Title)
	}
	if plan.Summary.TotalPotentialSavings != 45000 {
		t.Errorf("expected total 45000, got %v", plan.Summary.TotalPotentialSavings)
	}
	if plan.Summary.OptimizationScore != 30 {
		t.Errorf("expected score 30, got %d", plan.Summary.OptimizationScore)
	}
	if plan.Summary.CurrentTaxSaved != 0 {
		t.Errorf("expected current tax saved 0, got %v", plan.Summary.CurrentTaxSaved)
	}
}

func TestTaxPlanHighIncomeYoungProfile(t *testing.T) {
	p := completeProfile()
	p.Dependents = 2
	p.InvestmentAmount = 100000
	p.EmergencyFund = 100000 // above the 6% threshold
	p.RetirementSavings = 0

	plan := TaxPlan(p)

	// ELSS headroom 50,000 at 30%, NPS 15,000, young investor 30,000, family
	// health insurance 7,500, retirement shortfall 180,000 at 30%.
	want := 15000.0 + 15000 + 30000 + 7500 + 54000
	if plan.Summary.TotalPotentialSavings != want {
		t.Errorf("expected total %v, got %v", want, plan.Summary.TotalPotentialSavings)
	}

	titles := make([]string, len(plan.Recommendations))
	for i, rec := range plan.Recommendations {
		titles[i] = rec.Title
	}
	wantTitles := []string{
		"Maximize ELSS Investment",
		"NPS Investment",
		"Long-term Investment Strategy",
		"Health Insurance for Family",
		"Retirement Planning",
	}
	if len(titles) != len(wantTitles) {
		t.Fatalf("expected titles %v, got %v", wantTitles, titles)
	}
	for i := range wantTitles {
		if titles[i] != wantTitles[i] {
			t.Errorf("recommendation %d: expected %q, got %q", i, wantTitles[i], titles[i])
		}
	}

	if plan.Summary.OptimizationScore != 95 {
		t.Errorf("expected score capped at 95, got %d", plan.Summary.OptimizationScore)
	}
}

func TestTaxPlanEmergencyFundIsInformational(t *testing.T) {
	p := completeProfile()
	p.Age = 40
	p.InvestmentAmount = 150000 // no ELSS headroom
	p.RetirementSavings = 1000000
	p.EmergencyFund = 0

	plan := TaxPlan(p)

	var found *models.TaxRecommendation
	for i := range plan.Recommendations {
		if plan.Recommendations[i].Category == "Emergency Fund" {
			found = &plan.Recommendations[i]
		}
	}
	if found == nil {
		t.Fatal("expected an emergency fund recommendation")
	}
	if found.PotentialSaving != 0 {
		t.Errorf("emergency fund saving should be 0, got %v", found.PotentialSaving)
	}

	// Only NPS contributes to the total here.
	if plan.Summary.TotalPotentialSavings != 15000 {
		t.Errorf("expected total 15000, got %v", plan.Summary.TotalPotentialSavings)
	}
}

func TestTaxPlanMiddleIncomeBracket(t *testing.T) {
	p := completeProfile()
	p.Income = 800000
	p.Age = 35
	p.TotalSavings = 140000

	plan := TaxPlan(p)

	first := plan.Recommendations[0]
	if first.Title != "Start PPF Investment" {
		t.Fatalf("expected PPF recommendation first, got %q", first.Title)
	}
	// Headroom min(150000-140000, 50000) = 10000 at 30%.
	if first.PotentialSaving != 3000 {
		t.Errorf("expected PPF saving 3000, got %v", first.PotentialSaving)
	}
}

func TestTaxPlanLowIncomeBracket(t *testing.T) {
	p := completeProfile()
	p.Income = 300000
	p.Age = 35

	plan := TaxPlan(p)

	first := plan.Recommendations[0]
	if first.Category != "Basic Savings" {
		t.Fatalf("expected basic savings first, got %q", first.Category)
	}
	// min(50000, 30000) = 30000 at the 10% effective rate.
	if first.PotentialSaving != 3000 {
		t.Errorf("expected basic saving 3000, got %v", first.PotentialSaving)
	}
}

func TestTaxPlanCurrentTaxSaved(t *testing.T) {
	p := completeProfile()
	p.TaxDeductions = 100000

	plan := TaxPlan(p)
	if plan.Summary.CurrentTaxSaved != 30000 {
		t.Errorf("expected current tax saved 30000, got %v", plan.Summary.CurrentTaxSaved)
	}
}

func TestOptimizationScoreBounds(t *testing.T) {
	tests := []struct {
		recommendations int
		complete        bool
		want            int
	}{
		{0, false, 30},
		{2, false, 60},
		{2, true, 80},
		{3, true, 95},
		{10, true, 95},
	}
	for _, tt := range tests {
		if got := optimizationScore(tt.recommendations, tt.complete); got != tt.want {
			t.Errorf("optimizationScore(%d, %v) = %d, want %d", tt.recommendations, tt.complete, got, tt.want)
		}
	}
}
