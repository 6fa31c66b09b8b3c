package llm

import (
	"strings"
	"testing"
)

func TestParseTaxPlanValidJSON(t *testing.T) {
	text := `Here is your plan:
{"recommendations": [{"title": "ELSS", "potential_saving": 15000, "priority": "high"}],
 "summary": {"total_potential_savings": 15000, "optimization_score": 80, "current_tax_saved": 0}}
Hope this helps.`

	plan := ParseTaxPlan(text)
	if len(plan.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(plan.Recommendations))
	}
	if plan.Recommendations[0].Title != "ELSS" {
		t.Errorf("unexpected title %q", plan.Recommendations[0].Title)
	}
	if plan.Summary.OptimizationScore != 80 {
		t.Errorf("expected score 80, got %d", plan.Summary.OptimizationScore)
	}
}

func TestParseTaxPlanSyntheticFallback(t *testing.T) {
	plan := ParseTaxPlan("no structure here at all")

	if len(plan.Recommendations) != 1 {
		t.Fatalf("expected 1 synthetic recommendation, got %d", len(plan.Recommendations))
	}
	rec := plan.Recommendations[0]
	if rec.Title != "Tax Optimization" {
		t.Errorf("unexpected title %q", rec.Title)
	}
	if rec.Description != "no structure here at all" {
		t.Errorf("expected raw text as description, got %q", rec.Description)
	}
	if rec.PotentialSaving != 1000 {
		t.Errorf("expected saving 1000, got %v", rec.PotentialSaving)
	}
	if plan.Summary.OptimizationScore != 60 {
		t.Errorf("expected score 60, got %d", plan.Summary.OptimizationScore)
	}
}

func TestParseTaxPlanMalformedJSON(t *testing.T) {
	plan := ParseTaxPlan(`{"recommendations": [broken`)
	if plan.Recommendations[0].Title != "Tax Optimization" {
		t.Errorf("malformed JSON should degrade to synthetic plan, got %q", plan.Recommendations[0].Title)
	}
}

func TestParseTaxPlanLongTextExcerpt(t *testing.T) {
	long := strings.Repeat("x", 300)
	plan := ParseTaxPlan(long)
	desc := plan.Recommendations[0].Description
	if len(desc) != 203 {
		t.Errorf("expected 200 chars plus ellipsis, got %d", len(desc))
	}
	if !strings.HasSuffix(desc, "...") {
		t.Errorf("expected ellipsis suffix, got %q", desc[len(desc)-10:])
	}
}

func TestParseBenefitsValidJSON(t *testing.T) {
	text := `The schemes: [{"name": "PPF", "category": "Savings"}] apply to you.`

	benefits := ParseBenefits(text)
	if len(benefits) != 1 {
		t.Fatalf("expected 1 benefit, got %d", len(benefits))
	}
	if benefits[0].Name != "PPF" {
		t.Errorf("unexpected name %q", benefits[0].Name)
	}
}

func TestParseBenefitsSyntheticFallback(t *testing.T) {
	benefits := ParseBenefits("nothing useful")
	if len(benefits) != 1 {
		t.Fatalf("expected 1 synthetic benefit, got %d", len(benefits))
	}
	if benefits[0].Name != "General Benefits" {
		t.Errorf("unexpected name %q", benefits[0].Name)
	}
	if benefits[0].Description != "nothing useful" {
		t.Errorf("expected raw text as description, got %q", benefits[0].Description)
	}
}

func TestJSONSpan(t *testing.T) {
	tests := []struct {
		in     string
		open   byte
		close  byte
		want   string
		wantOK bool
	}{
		{`pre {"a": 1} post`, '{', '}', `{"a": 1}`, true},
		{`{"a": {"b": 2}}`, '{', '}', `{"a": {"b": 2}}`, true},
		{`no braces`, '{', '}', "", false},
		{`} reversed {`, '{', '}', "", false},
		{`[1, 2] and [3]`, '[', ']', `[1, 2] and [3]`, true},
	}
	for _, tt := range tests {
		got, ok := jsonSpan(tt.in, tt.open, tt.close)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("jsonSpan(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
