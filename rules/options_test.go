package rules

import (
	"testing"

	"github.com/sahiti3636/finwise-ai/models"
)

func TestTaxOptionsSections(t *testing.T) {
	opts := TaxOptions(&models.Profile{})

	if len(opts["80C"]) != 3 {
		t.Errorf("expected 3 options under 80C, got %d", len(opts["80C"]))
	}
	if len(opts["80D"]) != 2 {
		t.Errorf("expected 2 options under 80D, got %d", len(opts["80D"]))
	}
	if len(opts["80CCD"]) != 1 {
		t.Errorf("expected 1 option under 80CCD, got %d", len(opts["80CCD"]))
	}
}

func TestTaxOptionsELSSHeadroom(t *testing.T) {
	opts := TaxOptions(&models.Profile{InvestmentAmount: 120000})

	elss := opts["80C"][0]
	if elss.Invested != 120000 {
		t.Errorf("expected ELSS invested 120000, got %v", elss.Invested)
	}
	// Headroom min(30000, 50000) at the assumed rate.
	if elss.PotentialSaving != 9000 {
		t.Errorf("expected ELSS saving 9000, got %v", elss.PotentialSaving)
	}
}

func TestTaxOptionsHealthInsuranceClamped(t *testing.T) {
	opts := TaxOptions(&models.Profile{TaxDeductions: 40000})

	health := opts["80D"][0]
	if health.Invested != 25000 {
		t.Errorf("expected invested clamped to 25000, got %v", health.Invested)
	}
	if health.PotentialSaving != 0 {
		t.Errorf("expected no further saving past the limit, got %v", health.PotentialSaving)
	}
}
