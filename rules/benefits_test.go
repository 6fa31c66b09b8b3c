package rules

import (
	"testing"

	"github.com/sahiti3636/finwise-ai/models"
)

func benefitNames(benefits []models.BenefitEntry) []string {
	names := make([]string, len(benefits))
	for i, b := range benefits {
		names[i] = b.Name
	}
	return names
}

func TestEligibleBenefitsLowIncomeSenior(t *testing.T) {
	p := &models.Profile{
		Income:     400000,
		Age:        65,
		Dependents: 1,
	}

	want := []string{
		"PM-KISAN",
		"Ayushman Bharat",
		"Senior Citizen Savings Scheme (SCSS)",
		"Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)",
		"Pradhan Mantri Suraksha Bima Yojana (PMSBY)",
		"Public Provident Fund (PPF)",
		"Sukanya Samriddhi Yojana",
		"Pradhan Mantri Mudra Yojana",
		"Pradhan Mantri Awas Yojana (PMAY)",
	}
	got := benefitNames(EligibleBenefits(p))
	if len(got) != len(want) {
		t.Fatalf("expected %d benefits, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("benefit %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEligibleBenefitsHighIncome(t *testing.T) {
	p := &models.Profile{
		Income:           2000000,
		Age:              35,
		InvestmentAmount: 200000,
	}

	// Only the age-gated pension and the two universal schemes remain.
	want := []string{
		"Atal Pension Yojana (APY)",
		"Pradhan Mantri Jeevan Jyoti Bima Yojana (PMJJBY)",
		"Pradhan Mantri Suraksha Bima Yojana (PMSBY)",
	}
	got := benefitNames(EligibleBenefits(p))
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("benefit %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestEligibleBenefitsAgeBoundaries(t *testing.T) {
	tests := []struct {
		age      int
		wantAPY  bool
		wantSCSS bool
	}{
		{17, false, false},
		{18, true, false},
		{40, true, false},
		{41, false, false},
		{59, false, false},
		{60, false, true},
	}
	for _, tt := range tests {
		names := benefitNames(EligibleBenefits(&models.Profile{Income: 2000000, Age: tt.age, InvestmentAmount: 200000}))
		hasAPY, hasSCSS := false, false
		for _, n := range names {
			if n == "Atal Pension Yojana (APY)" {
				hasAPY = true
			}
			if n == "Senior Citizen Savings Scheme (SCSS)" {
				hasSCSS = true
			}
		}
		if hasAPY != tt.wantAPY {
			t.Errorf("age %d: APY eligibility = %v, want %v", tt.age, hasAPY, tt.wantAPY)
		}
		if hasSCSS != tt.wantSCSS {
			t.Errorf("age %d: SCSS eligibility = %v, want %v", tt.age, hasSCSS, tt.wantSCSS)
		}
	}
}
