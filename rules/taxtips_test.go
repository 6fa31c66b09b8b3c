package rules

import (
	"reflect"
	"testing"

	"github.com/sahiti3636/finwise-ai/models"
)

func TestTaxTipsHighIncomeFamily(t *testing.T) {
	p := &models.Profile{
		Income:            1500000,
		Dependents:        2,
		InvestmentAmount:  500000,
		MonthlySavings:    400000,
		EmergencyFund:     100000,
		RetirementSavings: 500000,
	}

	want := []string{
		"Invest in ELSS for tax deduction under 80C.",
		"Consider NPS for additional tax benefits.",
		"Maximize 80C deductions with PPF and ELSS.",
		"Claim deductions for dependent care under 80D.",
		"Consider health insurance for family tax benefits.",
	}
	got := TaxTips(p)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TaxTips() = %v, want %v", got, want)
	}
}

func TestTaxTipsZeroProfile(t *testing.T) {
	// A zero profile still trips the ratio guards: 0 < 0 is false, so only
	// the strict shortfall guards stay quiet.
	got := TaxTips(&models.Profile{})
	if len(got) != 0 {
		t.Errorf("expected no tips for zero profile, got %v", got)
	}
}

func TestTaxTipsDeterministic(t *testing.T) {
	p := &models.Profile{Income: 700000, Dependents: 3}
	first := TaxTips(p)
	for i := 0; i < 5; i++ {
		if got := TaxTips(p); !reflect.DeepEqual(got, first) {
			t.Fatalf("TaxTips not deterministic: %v vs %v", got, first)
		}
	}
}
